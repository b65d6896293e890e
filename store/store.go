// SPDX-License-Identifier: MIT
// Package: rgodd/store
//
// store.go: Store interface with file and in-memory backends.
//
// FileStore contract:
//   • Save writes <Dir>/<ID><ext>; the file is closed on every path and a
//     close error is joined into the result.
//   • A failed write removes the partial file.
//   • Load accepts either the path returned by Save or a bare ID.

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/rgodd/dfaconfig"
)

// Store keeps DFAConfig records under a reference.
type Store interface {
	Save(ctx context.Context, c *dfaconfig.DFAConfig) (string, error)
	Load(ctx context.Context, ref string) (*dfaconfig.DFAConfig, error)
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// FileStore writes one file per record into Dir.
type FileStore struct {
	Dir   string
	Codec Codec
}

// NewFileStore returns a FileStore over dir; a nil codec means YAML.
func NewFileStore(dir string, codec Codec) *FileStore {
	if codec == nil {
		codec = YAML
	}

	return &FileStore{Dir: dir, Codec: codec}
}

// Path returns the file that holds the record with the given ID.
func (s *FileStore) Path(id string) string {
	return filepath.Join(s.Dir, id+s.Codec.Ext())
}

// Save encodes c into Dir and returns the file path.
func (s *FileStore) Save(ctx context.Context, c *dfaconfig.DFAConfig) (path string, err error) {
	if err = ctx.Err(); err != nil {
		return "", err
	}
	if c == nil || c.ID == "" {
		return "", ErrNoID
	}
	if err = os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	path = s.Path(c.ID)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("Save: close %s: %w", path, cerr))
		}
		if err != nil {
			_ = os.Remove(path)
			path = ""
		}
	}()

	if err = s.Codec.Encode(f, c); err != nil {
		return path, fmt.Errorf("Save: %s: %w: %w", path, ErrEncode, err)
	}

	return path, nil
}

// Load reads the record stored under ref (a path or an ID).
func (s *FileStore) Load(ctx context.Context, ref string) (*dfaconfig.DFAConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := ref
	if _, err := os.Stat(path); err != nil {
		path = s.Path(ref)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Load: %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	c, err := s.Codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w: %w", path, ErrDecode, err)
	}

	return c, nil
}

// LoadFile decodes a file whose codec is chosen by CodecFor.
func LoadFile(path string) (*dfaconfig.DFAConfig, error) {
	codec, err := CodecFor(path)
	if err != nil {
		return nil, err
	}

	return NewFileStore(filepath.Dir(path), codec).Load(context.Background(), path)
}

// MemoryStore keeps encoded records in memory, keyed by ID.
type MemoryStore struct {
	mu    sync.RWMutex
	codec Codec
	data  map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore; a nil codec means YAML.
func NewMemoryStore(codec Codec) *MemoryStore {
	if codec == nil {
		codec = YAML
	}

	return &MemoryStore{codec: codec, data: make(map[string][]byte)}
}

// Save encodes c and returns its ID as the reference.
func (m *MemoryStore) Save(ctx context.Context, c *dfaconfig.DFAConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c == nil || c.ID == "" {
		return "", ErrNoID
	}
	var buf bytes.Buffer
	if err := m.codec.Encode(&buf, c); err != nil {
		return "", fmt.Errorf("Save: %w: %w", ErrEncode, err)
	}
	m.mu.Lock()
	m.data[c.ID] = buf.Bytes()
	m.mu.Unlock()

	return c.ID, nil
}

// Load decodes the record saved under ref.
func (m *MemoryStore) Load(ctx context.Context, ref string) (*dfaconfig.DFAConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data, ok := m.data[ref]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Load: %s: %w", ref, ErrNotFound)
	}
	c, err := m.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w: %w", ref, ErrDecode, err)
	}

	return c, nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
