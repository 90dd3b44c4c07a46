// Package storage writes export files and reads drafts from disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Storage struct {
	Dir string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	Path      string
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes content to name inside Dir, creating Dir if needed. The
// file is written to a temporary name first and renamed into place.
func (s *Storage) SaveFile(name string, content []byte) (*FileStats, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}

	return s.GetFileStats(path)
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}

// GetFileStats returns metadata about a file using os.Stat.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		Path:      filePath,
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
