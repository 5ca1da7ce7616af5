package dict

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression container magics. Dictionary blobs may be shipped compressed;
// the container is sniffed here so callers never have to declare it.
var (
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
	magicGzip = []byte{0x1F, 0x8B}
)

// decompress returns the raw dictionary bytes. Blobs that do not start with a
// known compression magic pass through untouched (compressed=false), which
// keeps memory-mapped dictionaries zero-copy.
func decompress(data []byte) (out []byte, compressed bool, err error) {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, false, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, false, fmt.Errorf("dict: zstd decode: %w", err)
		}
		return out, true, nil

	case bytes.HasPrefix(data, magicLZ4):
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, false, fmt.Errorf("dict: lz4 decode: %w", err)
		}
		return out, true, nil

	case bytes.HasPrefix(data, magicGzip):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, false, fmt.Errorf("dict: gzip decode: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, false, fmt.Errorf("dict: gzip decode: %w", err)
		}
		return out, true, nil

	default:
		return data, false, nil
	}
}
