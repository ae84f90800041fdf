package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveWords moves the directory of saved words into an archive
// directory next to it, named after the current time. It returns the
// path the words were moved to.
func ArchiveWords(wordsDir string) (string, error) {
	// Check if words directory exists
	if _, err := os.Stat(wordsDir); os.IsNotExist(err) {
		return "", fmt.Errorf("words directory does not exist: %s", wordsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(wordsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(wordsDir)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405")))

	// Two archives within the same second
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405.000000")))
	}

	if err := os.Rename(wordsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive words directory: %w", err)
	}

	return archivePath, nil
}
