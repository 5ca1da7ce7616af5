package dict

import (
	"context"

	"github.com/hupe1980/lemmais/blobstore"
)

// Open reads the named dictionary blob from store and loads it, transparently
// decompressing zstd, lz4 and gzip containers.
//
// Blobs that support zero-copy access (local memory-mapped files) and are not
// compressed are parsed in place; the blob stays open for the lifetime of the
// Dict and is released by (*Dict).Close. All other blobs are read into memory
// and closed before Open returns.
func Open(ctx context.Context, store blobstore.BlobStore, name string) (*Dict, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	var data []byte
	mapped := false
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err = m.Bytes()
		mapped = true
	} else {
		data, err = blob.ReadAll(ctx)
	}
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	data, compressed, err := decompress(data)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	d, err := Load(data)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	if mapped && !compressed {
		d.closer = blob
	} else {
		_ = blob.Close()
	}
	return d, nil
}
