package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveDir moves dir to <parent>/archive/<name>-<timestamp> and returns
// the new location. It is used to keep earlier batch results around before
// a new run writes to the same output directory.
func ArchiveDir(dir string) (string, error) {
	return archiveAt(dir, time.Now())
}

func archiveAt(dir string, now time.Time) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", dir)
	}

	dir = filepath.Clean(dir)
	archiveDir := filepath.Join(filepath.Dir(dir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := filepath.Base(dir)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, now.Format("20060102-150405")))

	// Two archives within the same second get microseconds appended
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, now.Format("20060102-150405.000000")))
	}

	if err := os.Rename(dir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive directory: %w", err)
	}

	return archivePath, nil
}
