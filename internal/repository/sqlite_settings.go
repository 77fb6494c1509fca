package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwhite/chronoassist/internal/db"
	"github.com/mwhite/chronoassist/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `SELECT historical_data_days, prompt_override
		FROM user_settings WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var s domain.UserSettings
	var override sql.NullString
	err := row.Scan(&s.HistoricalDataDays, &override)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user settings: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user settings: %w", err)
	}
	s.PromptOverride = stringPtrFromNull(override)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, userID string, s domain.UserSettings) error {
	query := `INSERT INTO user_settings (user_id, historical_data_days, prompt_override, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			historical_data_days = excluded.historical_data_days,
			prompt_override = excluded.prompt_override,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		userID,
		s.HistoricalDataDays,
		nullableString(s.PromptOverride),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting user settings: %w: %v", ErrPersistence, err)
	}
	return nil
}
