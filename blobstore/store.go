// Package blobstore abstracts access to dictionary blobs.
//
// A lemmatizer dictionary is a single immutable binary file that is read whole
// exactly once per process. BlobStore decouples the engine from where that
// file lives: the local filesystem (memory-mapped), S3, MinIO, or memory for
// tests.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore opens immutable data blobs by name.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadAll reads the entire blob into memory.
	ReadAll(ctx context.Context) ([]byte, error)
}

// Mappable is an optional interface for Blobs that expose their contents
// without a copy. The returned slice is valid until the Blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}
