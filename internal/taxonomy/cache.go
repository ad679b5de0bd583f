package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileCache stores a taxonomy as a pretty-printed JSON object on disk.
type FileCache struct {
	Path string
}

// NewFileCache returns a cache backed by the file at path.
func NewFileCache(path string) *FileCache {
	return &FileCache{Path: path}
}

// Load reads the cached taxonomy. A missing file yields an empty taxonomy and no error.
func (c *FileCache) Load() (*Taxonomy, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading taxonomy cache: %w", err)
	}

	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing taxonomy cache: %w", err)
	}
	return &t, nil
}

// Save replaces the cache file with t. The file is written to a temporary
// sibling first and renamed, so readers never observe a half-written cache.
func (c *FileCache) Save(t *Taxonomy) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding taxonomy cache: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Path), ".taxonomy-*.json")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing taxonomy cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing taxonomy cache: %w", err)
	}
	if err := os.Rename(tmpName, c.Path); err != nil {
		return fmt.Errorf("replacing taxonomy cache: %w", err)
	}
	return nil
}
