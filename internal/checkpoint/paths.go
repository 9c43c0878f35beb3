package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "eternity"

// DataDir returns the platform-specific data directory for the solver:
//   - macOS:   ~/Library/Application Support/eternity/
//   - Windows: %APPDATA%/eternity/
//   - other:   $XDG_DATA_HOME/eternity/, falling back to ~/.local/share/eternity/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// PuzzleDir returns the checkpoint directory for one puzzle, keyed by its
// tile set digest so two different puzzles never collide on the same
// Badger store. digest is formatted as hex to keep the directory name
// filesystem-safe on every platform this resolves for.
func PuzzleDir(digest uint64) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(dataDir, "checkpoints", fmt.Sprintf("%016x", digest))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
