package repository

import (
	"context"
	"fmt"

	"github.com/mwhite/chronoassist/internal/db"
	"github.com/mwhite/chronoassist/internal/domain"
)

// ProvisionRepo seeds the per-user rows a fresh user needs.
type ProvisionRepo interface {
	// EnsureUser inserts empty notes/shorthand rows and default settings for
	// the user if they do not exist yet. Existing rows are left untouched.
	EnsureUser(ctx context.Context, userID string) error
}

type SQLiteProvisionRepo struct {
	db db.DBTX
}

func NewSQLiteProvisionRepo(dbtx db.DBTX) *SQLiteProvisionRepo {
	return &SQLiteProvisionRepo{db: dbtx}
}

func (r *SQLiteProvisionRepo) EnsureUser(ctx context.Context, userID string) error {
	now := nowUTC()
	defaults := domain.DefaultSettings()

	stmts := []struct {
		query string
		args  []any
	}{
		{
			`INSERT INTO user_shorthand (user_id, shorthand_text, updated_at) VALUES (?, '', ?)
			 ON CONFLICT(user_id) DO NOTHING`,
			[]any{userID, now},
		},
		{
			`INSERT INTO user_main_notes (user_id, notes_text, updated_at) VALUES (?, '', ?)
			 ON CONFLICT(user_id) DO NOTHING`,
			[]any{userID, now},
		},
		{
			`INSERT INTO user_settings (user_id, historical_data_days, prompt_override, updated_at)
			 VALUES (?, ?, NULL, ?)
			 ON CONFLICT(user_id) DO NOTHING`,
			[]any{userID, defaults.HistoricalDataDays, now},
		},
	}

	for _, s := range stmts {
		if _, err := r.db.ExecContext(ctx, s.query, s.args...); err != nil {
			return fmt.Errorf("%w: provisioning user: %v", ErrPersistence, err)
		}
	}
	return nil
}
