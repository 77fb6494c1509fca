package repository

import (
	"context"
	"fmt"

	"github.com/mwhite/chronoassist/internal/db"
	"github.com/mwhite/chronoassist/internal/domain"
)

// SQLiteProposedRepo implements ProposedRepo using a SQLite database.
//
// ReplaceAll is only atomic when the repo is built from a transaction-backed
// DBTX; use NewTxProposedRepo for the common case.
type SQLiteProposedRepo struct {
	db db.DBTX
}

// NewSQLiteProposedRepo creates a new SQLiteProposedRepo.
func NewSQLiteProposedRepo(conn db.DBTX) *SQLiteProposedRepo {
	return &SQLiteProposedRepo{db: conn}
}

func (r *SQLiteProposedRepo) List(ctx context.Context, userID string) ([]domain.TimeEntry, error) {
	query := `SELECT client_id, date, project, activity, work_item, hours, comment, submission_error
		FROM user_proposed_entries WHERE user_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing proposed entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Project, &e.Activity, &e.WorkItem, &e.Hours, &e.Comment, &e.SubmissionError); err != nil {
			return nil, fmt.Errorf("scanning proposed entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposed entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteProposedRepo) ReplaceAll(ctx context.Context, userID string, entries []domain.TimeEntry) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM user_proposed_entries WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing proposed entries: %w: %v", ErrPersistence, err)
	}

	insert := `INSERT INTO user_proposed_entries
		(user_id, client_id, date, project, activity, work_item, hours, comment, submission_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	for _, e := range entries {
		if _, err := r.db.ExecContext(ctx, insert,
			userID,
			e.ID,
			e.Date,
			e.Project,
			e.Activity,
			e.WorkItem,
			e.Hours,
			e.Comment,
			e.SubmissionError,
			now,
		); err != nil {
			return fmt.Errorf("inserting proposed entry %s: %w: %v", e.ID, ErrPersistence, err)
		}
	}
	return nil
}

func (r *SQLiteProposedRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM user_proposed_entries WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing proposed entries: %w: %v", ErrPersistence, err)
	}
	return nil
}

// TxProposedRepo wraps ReplaceAll in a UnitOfWork transaction so the
// delete-then-insert replace is a single atomic unit.
type TxProposedRepo struct {
	*SQLiteProposedRepo
	uow db.UnitOfWork
}

// NewTxProposedRepo creates a ProposedRepo whose ReplaceAll runs
// transactionally against the given database.
func NewTxProposedRepo(conn db.DBTX, uow db.UnitOfWork) *TxProposedRepo {
	return &TxProposedRepo{
		SQLiteProposedRepo: NewSQLiteProposedRepo(conn),
		uow:                uow,
	}
}

func (r *TxProposedRepo) ReplaceAll(ctx context.Context, userID string, entries []domain.TimeEntry) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteProposedRepo(tx).ReplaceAll(ctx, userID, entries)
	})
}
