package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileCache stores one JSON file per entry under dir, named <key>.json.
type FileCache struct {
	dir string
}

// NewFileCache creates a FileCache rooted at dir. The directory is created on
// first write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get implements Cache. A missing file is a miss; an unreadable or corrupt
// file is an error.
func (c *FileCache) Get(_ context.Context, key string) (*Entry, error) {
	data, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &CacheError{Op: "get", Key: key, Cause: err}
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, &CacheError{Op: "get", Key: key, Cause: fmt.Errorf("corrupt entry: %w", err)}
	}
	if len(entry.Vector) == 0 {
		return nil, &CacheError{Op: "get", Key: key, Cause: errors.New("corrupt entry: empty vector")}
	}
	return &entry, nil
}

// Put implements Cache. The entry is written to a temp file and renamed into
// place so concurrent readers never see a partial file.
func (c *FileCache) Put(_ context.Context, key string, entry Entry) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}

	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	if err := os.Rename(tmpName, c.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return &CacheError{Op: "put", Key: key, Cause: err}
	}
	return nil
}
