// Package storage persists the cross-session high score, and optionally a
// history of finished games. Two backends exist: a single-line text file and
// a SQLite database using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Default locations, relative to the user's home directory.
const (
	DefaultFilePath   = "~/.snake90/highscore.dat"
	DefaultSQLitePath = "~/.snake90/scores.db"
)

// Backend stores a single high score value.
type Backend interface {
	Load() (int, error)
	Save(score int) error
	Reset() error
	Close() error
}

// Open opens the named backend at path. An empty path selects the backend's
// default location.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case BackendFile, "":
		if path == "" {
			path = DefaultFilePath
		}
		return NewFileStore(path)
	case BackendSQLite:
		if path == "" {
			path = DefaultSQLitePath
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// expandPath expands a leading ~ and creates the parent directories.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
