package lemmais

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lemmais/blobstore"
)

func TestManagerGet(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put(DefaultDictName, testDictBytes(t))
	store.Put("alt.bin", testDictBytes(t))

	m := NewManager(store)
	defer m.Close()

	l1, err := m.Get(context.Background(), "")
	require.NoError(t, err)
	l2, err := m.Get(context.Background(), DefaultDictName)
	require.NoError(t, err)
	assert.Same(t, l1, l2)

	alt, err := m.Get(context.Background(), "alt.bin")
	require.NoError(t, err)
	assert.NotSame(t, l1, alt)
}

func TestManagerGetMissing(t *testing.T) {
	m := NewManager(blobstore.NewMemoryStore())
	defer m.Close()

	_, err := m.Get(context.Background(), "nope.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestManagerConcurrentGet(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put(DefaultDictName, testDictBytes(t))

	m := NewManager(store)
	defer m.Close()

	var wg sync.WaitGroup
	results := make([]*Lemmatizer, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := m.Get(context.Background(), "")
			assert.NoError(t, err)
			results[i] = l
		}()
	}
	wg.Wait()

	for _, l := range results[1:] {
		assert.Same(t, results[0], l)
	}
}

func TestManagerClose(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put(DefaultDictName, testDictBytes(t))

	m := NewManager(store)
	_, err := m.Get(context.Background(), "")
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}
