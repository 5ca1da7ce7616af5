package lemmais

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lemmais/blobstore"
	"github.com/hupe1980/lemmais/dict"
	"github.com/hupe1980/lemmais/stopwords"
)

// testDictBytes builds a small dictionary with ambiguous forms and one bigram
// pair, shared by the engine tests.
func testDictBytes(t *testing.T) []byte {
	t.Helper()

	w, err := dict.NewWriter(1)
	require.NoError(t, err)

	require.NoError(t, w.Add("þetta", "þetta", dict.Pronoun, 0, 0, 0))
	require.NoError(t, w.Add("er", "vera", dict.Verb, 0, 0, 0))
	require.NoError(t, w.Add("er", "er", dict.Conjunction, 0, 0, 0))
	require.NoError(t, w.Add("gott", "góður", dict.Adjective, 0, 0, 0))
	require.NoError(t, w.Add("fara", "fara", dict.Verb, 0, 0, 0))
	require.NoError(t, w.Add("fara", "far", dict.Noun, 0, 0, 0))
	require.NoError(t, w.Add("hestur", "hestur", dict.Noun, 0, 0, 0))
	require.NoError(t, w.Add("stór", "stór", dict.Adjective, 0, 0, 0))
	require.NoError(t, w.AddBigram("vera", "góður", 10))

	data, err := w.Bytes()
	require.NoError(t, err)
	return data
}

func newTestLemmatizer(t *testing.T, opts ...Option) *Lemmatizer {
	t.Helper()

	d, err := dict.Load(testDictBytes(t))
	require.NoError(t, err)

	if len(opts) == 0 {
		opts = []Option{WithStopwords(stopwords.None())}
	}
	return New(d, opts...)
}

func TestOpenFromStore(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put(DefaultDictName, testDictBytes(t))

	l, err := Open(context.Background(), store, "")
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, 6, l.Dict().WordCount())
}

func TestOpenMissingBlob(t *testing.T) {
	_, err := Open(context.Background(), blobstore.NewMemoryStore(), "nope.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icelandic.bin")
	require.NoError(t, os.WriteFile(path, testDictBytes(t), 0o600))

	l, err := OpenFile(context.Background(), path)
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, []string{"hestur"}, l.LemmatizeWord("Hestur"))
}

func TestLemmatizeWord(t *testing.T) {
	l := newTestLemmatizer(t)

	assert.Equal(t, []string{"vera", "er"}, l.LemmatizeWord("er"))
	assert.Equal(t, []string{"fara", "far"}, l.LemmatizeWord("fara"))
	assert.Equal(t, []string{"hestur"}, l.LemmatizeWord("hestur"))

	// Unknown words fall back to their lowercased form.
	assert.Equal(t, []string{"tölvuleikur"}, l.LemmatizeWord("Tölvuleikur"))
}

func TestLemmatizeText(t *testing.T) {
	l := newTestLemmatizer(t)

	assert.Equal(t, []string{"þetta", "vera", "er", "góður"}, l.LemmatizeText("Þetta er gott"))
	assert.Nil(t, l.LemmatizeText(""))
	assert.Nil(t, l.LemmatizeText("123 456"))
}

func TestLemmatizeTextDeduplicates(t *testing.T) {
	l := newTestLemmatizer(t)

	got := l.LemmatizeText("hestur hestur stór hestur")
	assert.Equal(t, []string{"hestur", "stór"}, got)
}

func TestLemmatizeTextDeduplicatesAcrossForms(t *testing.T) {
	w, err := dict.NewWriter(1)
	require.NoError(t, err)
	require.NoError(t, w.Add("hestur", "hestur", dict.Noun, 0, 0, 0))
	require.NoError(t, w.Add("hestar", "hestur", dict.Noun, 0, 0, 0))
	require.NoError(t, w.Add("hestarnir", "hestur", dict.Noun, 0, 0, 0))
	data, err := w.Bytes()
	require.NoError(t, err)
	d, err := dict.Load(data)
	require.NoError(t, err)
	l := New(d, WithStopwords(stopwords.None()))

	// Different inflections of the same lemma collapse on the lemma id.
	got := l.LemmatizeText("hestur hestar hestarnir")
	assert.Equal(t, []string{"hestur"}, got)
}

func TestLemmatizeTextDeduplicatesFallbacks(t *testing.T) {
	l := newTestLemmatizer(t)

	// Unknown tokens dedup on their fallback string.
	got := l.LemmatizeText("kýr kýr kýr")
	assert.Equal(t, []string{"kýr"}, got)

	// "far" is a known lemma of "fara" but not a surface form; the
	// identity fallback for the bare token must not emit it twice.
	got = l.LemmatizeText("fara far")
	assert.Equal(t, []string{"fara", "far"}, got)
}

func TestLemmatizeTextIdempotent(t *testing.T) {
	l := newTestLemmatizer(t)

	first := l.LemmatizeText("Þetta er gott")
	second := l.LemmatizeText("Þetta er gott")
	assert.Equal(t, first, second)
}

func TestLemmatizeTextStopwords(t *testing.T) {
	filter := stopwords.New([]string{"vera"}, nil)
	l := newTestLemmatizer(t, WithStopwords(filter))

	// "er" resolves to vera (verb) and er (conjunction); the bigram
	// (vera, góður) selects vera, and only that reading is filtered.
	got := l.LemmatizeText("Þetta er gott")
	assert.Equal(t, []string{"þetta", "er", "góður"}, got)

	// Without bigram evidence nothing is filtered.
	got = l.LemmatizeText("er")
	assert.Equal(t, []string{"vera", "er"}, got)
}

func TestLemmatizeTextFiltersUnambiguousStopword(t *testing.T) {
	w, err := dict.NewWriter(1)
	require.NoError(t, err)
	require.NoError(t, w.Add("hestur", "hestur", dict.Noun, 0, 0, 0))
	require.NoError(t, w.Add("og", "og", dict.Conjunction, 0, 0, 0))
	require.NoError(t, w.AddBigram("hestur", "og", 50))
	data, err := w.Bytes()
	require.NoError(t, err)
	d, err := dict.Load(data)
	require.NoError(t, err)
	l := New(d)

	// Bigram evidence backs the single reading of "og", so the default
	// stopword tables apply to it.
	assert.Equal(t, []string{"hestur", "kýr"}, l.LemmatizeText("hestur og kýr"))
}

func TestLemmatizeTexts(t *testing.T) {
	l := newTestLemmatizer(t)

	texts := []string{"Þetta er gott", "", "hestur stór", "fara"}
	got, err := l.LemmatizeTexts(context.Background(), texts)
	require.NoError(t, err)

	require.Len(t, got, len(texts))
	assert.Equal(t, []string{"þetta", "vera", "er", "góður"}, got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, []string{"hestur", "stór"}, got[2])
	assert.Equal(t, []string{"fara", "far"}, got[3])
}

func TestLemmatizeTextsCancelled(t *testing.T) {
	l := newTestLemmatizer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	texts := make([]string, 100)
	for i := range texts {
		texts[i] = "Þetta er gott"
	}
	_, err := l.LemmatizeTexts(ctx, texts)
	assert.ErrorIs(t, err, context.Canceled)
}
