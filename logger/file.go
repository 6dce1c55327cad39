package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MaxFileSize is the size above which an existing log file is rotated on open
const MaxFileSize = 10 * 1024 * 1024

// OpenFile opens path for appending, creating its directory. A file already
// larger than MaxFileSize is renamed with a timestamp suffix first
// The terminal UI owns stdout, so the dashboard only ever logs to a file
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		ext := filepath.Ext(path)
		base := path[:len(path)-len(ext)]
		rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
