package dict

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressZstd(t *testing.T) {
	raw := buildFixture(t, 2)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	packed := enc.EncodeAll(raw, nil)
	require.NoError(t, enc.Close())

	out, compressed, err := decompress(packed)
	require.NoError(t, err)
	assert.True(t, compressed)
	assert.Equal(t, raw, out)
}

func TestDecompressGzip(t *testing.T) {
	raw := buildFixture(t, 1)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, compressed, err := decompress(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, compressed)
	assert.Equal(t, raw, out)
}

func TestDecompressLZ4(t *testing.T) {
	raw := buildFixture(t, 1)

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, compressed, err := decompress(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, compressed)
	assert.Equal(t, raw, out)
}

func TestDecompressPassthrough(t *testing.T) {
	raw := buildFixture(t, 1)

	out, compressed, err := decompress(raw)
	require.NoError(t, err)
	assert.False(t, compressed)
	assert.Equal(t, raw, out)
}

func TestDecompressCorruptContainer(t *testing.T) {
	packed := append([]byte{0x28, 0xB5, 0x2F, 0xFD}, 0xFF, 0xFF, 0xFF)

	_, _, err := decompress(packed)
	assert.Error(t, err)
}
