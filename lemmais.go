package lemmais

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hupe1980/lemmais/blobstore"
	"github.com/hupe1980/lemmais/dict"
	"github.com/hupe1980/lemmais/stopwords"
)

// DefaultDictName is the conventional file name of the Icelandic dictionary
// blob under an installation's data directory.
const DefaultDictName = "icelandic_fts.core.bin"

// Lemmatizer resolves Icelandic surface word forms to their dictionary base
// forms. It is immutable after construction and safe for concurrent use; all
// operations are pure functions over the loaded dictionary.
type Lemmatizer struct {
	dict   *dict.Dict
	stop   *stopwords.Filter
	logger *Logger

	maxConcurrency int
}

// New wraps an already-loaded dictionary.
func New(d *dict.Dict, opts ...Option) *Lemmatizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Lemmatizer{
		dict:           d,
		stop:           o.stopwords,
		logger:         o.logger,
		maxConcurrency: o.maxConcurrency,
	}
}

// Open loads the named dictionary blob from store and wraps it.
func Open(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*Lemmatizer, error) {
	if name == "" {
		name = DefaultDictName
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d, err := dict.Open(ctx, store, name)
	if err != nil {
		o.logger.LogLoad(name, 0, 0, 0, err)
		return nil, err
	}
	o.logger.LogLoad(name, d.WordCount(), d.LemmaCount(), d.BigramCount(), nil)

	return &Lemmatizer{
		dict:           d,
		stop:           o.stopwords,
		logger:         o.logger,
		maxConcurrency: o.maxConcurrency,
	}, nil
}

// OpenFile loads a dictionary from the local filesystem. A path containing a
// separator is used as-is; a bare name is resolved in the current directory.
func OpenFile(ctx context.Context, path string, opts ...Option) (*Lemmatizer, error) {
	dir, name := ".", path
	if strings.ContainsRune(path, filepath.Separator) {
		dir, name = filepath.Split(path)
	}
	return Open(ctx, blobstore.NewLocalStore(dir), name, opts...)
}

// Dict exposes the loaded dictionary.
func (l *Lemmatizer) Dict() *dict.Dict { return l.dict }

// Close releases the underlying dictionary storage.
func (l *Lemmatizer) Close() error { return l.dict.Close() }
