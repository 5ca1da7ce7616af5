package blobstore

import (
	"context"
	"path/filepath"

	"github.com/hupe1980/lemmais/internal/mmap"
)

// LocalStore implements BlobStore over a directory on the local filesystem.
// Blobs are memory-mapped, so uncompressed dictionaries are used zero-copy.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	return &localBlob{m: m}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) Size() int64 { return b.m.Size() }

func (b *localBlob) ReadAll(_ context.Context) ([]byte, error) {
	data := b.m.Bytes()
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Bytes returns the mapped file contents without a copy.
func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Bytes(), nil
}

func (b *localBlob) Close() error { return b.m.Close() }
