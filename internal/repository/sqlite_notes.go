package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwhite/chronoassist/internal/db"
)

// SQLiteNotesRepo implements NotesRepo using a SQLite database.
type SQLiteNotesRepo struct {
	db db.DBTX
}

// NewSQLiteNotesRepo creates a new SQLiteNotesRepo.
func NewSQLiteNotesRepo(conn db.DBTX) *SQLiteNotesRepo {
	return &SQLiteNotesRepo{db: conn}
}

func (r *SQLiteNotesRepo) GetShorthand(ctx context.Context, userID string) (string, error) {
	return r.getText(ctx, `SELECT shorthand_text FROM user_shorthand WHERE user_id = ?`, userID)
}

func (r *SQLiteNotesRepo) SaveShorthand(ctx context.Context, userID, text string) error {
	query := `INSERT INTO user_shorthand (user_id, shorthand_text, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			shorthand_text = excluded.shorthand_text,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, userID, text, nowUTC()); err != nil {
		return fmt.Errorf("saving shorthand: %w: %v", ErrPersistence, err)
	}
	return nil
}

func (r *SQLiteNotesRepo) GetMainNotes(ctx context.Context, userID string) (string, error) {
	return r.getText(ctx, `SELECT notes_text FROM user_main_notes WHERE user_id = ?`, userID)
}

func (r *SQLiteNotesRepo) SaveMainNotes(ctx context.Context, userID, text string) error {
	query := `INSERT INTO user_main_notes (user_id, notes_text, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			notes_text = excluded.notes_text,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, userID, text, nowUTC()); err != nil {
		return fmt.Errorf("saving main notes: %w: %v", ErrPersistence, err)
	}
	return nil
}

// getText reads a single text column, mapping a missing row to "".
func (r *SQLiteNotesRepo) getText(ctx context.Context, query, userID string) (string, error) {
	var text string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("scanning text document: %w", err)
	}
	return text, nil
}
