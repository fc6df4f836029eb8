package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store keeps uploaded files on the local filesystem for the duration of one
// request. Callers are responsible for removing the file when done; the
// Sweeper catches anything left behind.
type Store struct {
	basePath string
}

// NewStore creates the upload directory if it doesn't exist
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// SaveMultipart writes a multipart file to the store under a unique name and
// returns its path.
func (s *Store) SaveMultipart(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("image-%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)
	path := filepath.Join(s.basePath, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored file. Missing files are not an error: the sweeper
// may have gotten there first.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SweepOlderThan removes files whose modification time is older than maxAge
// and returns how many were deleted.
func (s *Store) SweepOlderThan(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.basePath, entry.Name())); err == nil {
				removed++
			}
		}
	}

	return removed, nil
}

// BasePath returns the store directory
func (s *Store) BasePath() string {
	return s.basePath
}
