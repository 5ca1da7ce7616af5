package lemmais

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/lemmais/blobstore"
)

// Manager caches lemmatizers per dictionary name on top of a blob store.
// Concurrent Get calls for the same name share a single load.
type Manager struct {
	store blobstore.BlobStore
	opts  []Option

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*Lemmatizer
}

// NewManager creates a manager that loads dictionaries from store. The given
// options are applied to every lemmatizer it creates.
func NewManager(store blobstore.BlobStore, opts ...Option) *Manager {
	return &Manager{
		store: store,
		opts:  opts,
		cache: make(map[string]*Lemmatizer),
	}
}

// Get returns the lemmatizer for the named dictionary, loading it on first
// use. An empty name selects DefaultDictName.
func (m *Manager) Get(ctx context.Context, name string) (*Lemmatizer, error) {
	if name == "" {
		name = DefaultDictName
	}

	m.mu.RLock()
	l, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return l, nil
	}

	v, err, _ := m.group.Do(name, func() (any, error) {
		m.mu.RLock()
		l, ok := m.cache[name]
		m.mu.RUnlock()
		if ok {
			return l, nil
		}

		l, err := Open(ctx, m.store, name, m.opts...)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %q: %w", name, err)
		}

		m.mu.Lock()
		m.cache[name] = l
		m.mu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Lemmatizer), nil
}

// Close closes all cached lemmatizers and empties the cache.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, l := range m.cache {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close dictionary %q: %w", name, err)
		}
		delete(m.cache, name)
	}
	return firstErr
}
