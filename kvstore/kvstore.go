// Package kvstore is a file-backed key-value blob store, the local-storage
// analog the dashboard persists its snapshot into. Each key maps to one file
// under a data directory; writes are atomic (temp file then rename) so an
// interrupted write never corrupts the previous blob.
package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// KV is a blob store rooted at a directory.
type KV struct {
	dir string
}

// Open returns a KV rooted at dir, creating the directory if needed.
func Open(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data dir %q: %w", dir, err)
	}
	return &KV{dir: dir}, nil
}

// path maps a key to its backing file. Keys are escaped so arbitrary keys
// cannot traverse out of the data dir.
func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, url.PathEscape(key)+".json")
}

// Get returns the blob stored under key. The second result is false when the
// key has never been written.
func (kv *KV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, true, nil
}

// Put stores the blob under key, atomically replacing any previous value.
func (kv *KV) Put(key string, data []byte) error {
	target := kv.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("cannot replace key %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting an absent key is a no-op.
func (kv *KV) Delete(key string) error {
	err := os.Remove(kv.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
