package repository

import (
	"database/sql"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullableString converts a *string to a driver value, mapping nil to SQL
// NULL. The settings prompt override relies on NULL and '' staying distinct.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtrFromNull converts a scanned sql.NullString back to *string.
func stringPtrFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
