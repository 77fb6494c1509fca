// Package identity provides the anonymous local user id. All data is keyed
// by this id, so it must stay stable across runs: it is generated once and
// persisted next to the database.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const fileName = "user_id"

// Load returns the persisted user id under dataDir, creating one on first
// run.
func Load(dataDir string) (string, error) {
	path := filepath.Join(dataDir, fileName)

	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading user id: %w", err)
	}

	id := "anon_" + uuid.NewString()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persisting user id: %w", err)
	}
	return id, nil
}
