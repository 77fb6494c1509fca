package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhite/chronoassist/internal/db"
	"github.com/mwhite/chronoassist/internal/domain"
)

// SQLiteHistoricalRepo implements HistoricalRepo using a SQLite database.
//
// AddAll is only atomic when the repo is built from a transaction-backed
// DBTX; use NewTxHistoricalRepo for the common case.
type SQLiteHistoricalRepo struct {
	db db.DBTX
}

// NewSQLiteHistoricalRepo creates a new SQLiteHistoricalRepo.
func NewSQLiteHistoricalRepo(conn db.DBTX) *SQLiteHistoricalRepo {
	return &SQLiteHistoricalRepo{db: conn}
}

func (r *SQLiteHistoricalRepo) List(ctx context.Context, userID string, windowMonths *int) ([]domain.TimeEntry, error) {
	query := `SELECT id, client_id, date, project, activity, work_item, hours, comment
		FROM user_historical_entries WHERE user_id = ?`
	args := []any{userID}

	if windowMonths != nil && *windowMonths > 0 {
		since := time.Now().UTC().AddDate(0, -*windowMonths, 0).Format(domain.DateLayout)
		query += ` AND date >= ?`
		args = append(args, since)
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing historical entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var pk int64
		var clientID string
		var e domain.TimeEntry
		if err := rows.Scan(&pk, &clientID, &e.Date, &e.Project, &e.Activity, &e.WorkItem, &e.Hours, &e.Comment); err != nil {
			return nil, fmt.Errorf("scanning historical entry: %w", err)
		}
		// Rows imported before a client id existed fall back to a synthetic
		// id derived from the primary key.
		e.ID = clientID
		if e.ID == "" {
			e.ID = fmt.Sprintf("hist_%d", pk)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating historical entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteHistoricalRepo) AddAll(ctx context.Context, userID string, entries []domain.TimeEntry) (int, error) {
	query := `INSERT INTO user_historical_entries
		(user_id, client_id, date, project, activity, work_item, hours, comment, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, fingerprint) DO NOTHING`

	inserted := 0
	now := nowUTC()
	for _, e := range entries {
		res, err := r.db.ExecContext(ctx, query,
			userID,
			e.ID,
			e.Date,
			e.Project,
			e.Activity,
			e.WorkItem,
			e.Hours,
			e.Comment,
			e.Fingerprint(),
			now,
		)
		if err != nil {
			return inserted, fmt.Errorf("inserting historical entry: %w: %v", ErrPersistence, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("counting inserted rows: %w", err)
		}
		inserted += int(n)
	}
	return inserted, nil
}

func (r *SQLiteHistoricalRepo) LatestImportedAt(ctx context.Context, userID string) (*time.Time, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(created_at) FROM user_historical_entries WHERE user_id = ?`, userID,
	).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("reading latest import timestamp: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw.String)
	if err != nil {
		return nil, fmt.Errorf("parsing latest import timestamp: %w", err)
	}
	return &t, nil
}

// TxHistoricalRepo wraps AddAll in a UnitOfWork transaction so a batch
// import lands all-or-nothing.
type TxHistoricalRepo struct {
	*SQLiteHistoricalRepo
	uow db.UnitOfWork
}

// NewTxHistoricalRepo creates a HistoricalRepo whose AddAll runs
// transactionally against the given database.
func NewTxHistoricalRepo(conn db.DBTX, uow db.UnitOfWork) *TxHistoricalRepo {
	return &TxHistoricalRepo{
		SQLiteHistoricalRepo: NewSQLiteHistoricalRepo(conn),
		uow:                  uow,
	}
}

func (r *TxHistoricalRepo) AddAll(ctx context.Context, userID string, entries []domain.TimeEntry) (int, error) {
	inserted := 0
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, txErr := NewSQLiteHistoricalRepo(tx).AddAll(ctx, userID, entries)
		inserted = n
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
