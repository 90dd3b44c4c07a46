// Package caching keeps fetched drafts on disk for a limited time.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/contentgen/pkg/clock"
)

// Cache is a file-based cache keyed by URL with a TTL. A TTL of zero or less
// disables it.
type Cache struct {
	path  string
	ttl   time.Duration
	clock clock.Clock
}

// NewCache creates the cache directory if it doesn't exist.
func NewCache(path string, ttl time.Duration, clk clock.Clock) (*Cache, error) {
	if clk == nil {
		clk = clock.System{}
	}
	c := &Cache{path: path, ttl: ttl, clock: clk}
	if !c.Enabled() {
		return c, nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return c, nil
}

// DefaultDir is contentgen/ under the user cache directory.
func DefaultDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "contentgen")
	}
	return filepath.Join(dir, "contentgen")
}

func (c *Cache) Enabled() bool {
	return c.ttl > 0
}

func (c *Cache) key(url string) string {
	return fmt.Sprintf("%x.html", sha256.Sum256([]byte(url)))
}

// Get returns the cached body for url when present and younger than the TTL.
func (c *Cache) Get(url string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	filePath := filepath.Join(c.path, c.key(url))
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if c.clock.Now().Sub(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(url string, data []byte) error {
	if !c.Enabled() {
		return nil
	}
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
