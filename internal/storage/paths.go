// Package storage provides persistent storage for user preferences and game statistics.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

const appName = "chessrules"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chessrules/
// - Linux: ~/.local/share/chessrules/
// - Windows: %APPDATA%/chessrules/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "home directory")
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", errors.Wrap(err, "home directory")
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", errors.Wrap(err, "home directory")
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", errors.Wrapf(err, "create %s", dataDir)
	}

	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
// An empty base selects the platform data directory.
func GetDatabaseDir(base string) (string, error) {
	if base == "" {
		var err error
		if base, err = GetDataDir(); err != nil {
			return "", err
		}
	}

	dbDir := filepath.Join(base, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", errors.Wrapf(err, "create %s", dbDir)
	}

	log.Printf("Database directory: %s", dbDir)

	return dbDir, nil
}
