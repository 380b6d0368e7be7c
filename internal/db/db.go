package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get when nothing has been stored under a key yet
var ErrNotFound = errors.New("slot not found")

// Slot is a durable key-value store holding whole serialized values.
// Implementations are not required to be safe for concurrent use.
type Slot interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Supported backends
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open opens the slot store for the given backend.
// An empty path selects the backend's default location under ~/.safehours.
func Open(backend, path string, logger *slog.Logger) (Slot, error) {
	switch strings.ToLower(backend) {
	case "", BackendSQLite:
		if path == "" {
			p, err := DefaultPath("safehours.db")
			if err != nil {
				return nil, fmt.Errorf("failed to get database path: %w", err)
			}
			path = p
		}
		return OpenSQLite(path)

	case BackendBadger:
		if path == "" {
			p, err := DefaultPath("badger")
			if err != nil {
				return nil, fmt.Errorf("failed to get database path: %w", err)
			}
			path = p
		}
		cfg := DefaultBadgerConfig()
		cfg.Path = path
		cfg.Logger = logger
		return OpenBadger(cfg)

	case BackendMemory:
		return NewMemorySlot(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// DefaultPath returns name inside the safehours data directory
func DefaultPath(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".safehours", name), nil
}
