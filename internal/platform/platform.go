// Package platform provides OS-aware path helpers.
// All code that needs to behave differently per OS must use this package.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultWorkDir returns the OS-appropriate data directory for the service.
//
//	Linux:   ~/.local/share/ai-tokenizer
//	macOS:   ~/Library/Application Support/AI Tokenizer
//	Windows: %APPDATA%\AI Tokenizer
//
// If WORK_DIR env var is set, that takes priority (used in Docker).
func DefaultWorkDir() string {
	if env := os.Getenv("WORK_DIR"); env != "" {
		return env
	}
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "AI Tokenizer")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "AI Tokenizer")
	default: // linux
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "ai-tokenizer")
	}
}

// DataPath returns a path inside the work directory.
func DataPath(parts ...string) string {
	base := DefaultWorkDir()
	return filepath.Join(append([]string{base}, parts...)...)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
