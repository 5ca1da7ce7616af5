package lemmais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lemmais/dict"
)

func TestCandidatesKnownWord(t *testing.T) {
	l := newTestLemmatizer(t)

	cands := l.Candidates("er")
	require.Len(t, cands, 2)
	assert.Equal(t, "vera", cands[0].Lemma)
	assert.Equal(t, dict.Verb, cands[0].POS)
	assert.Equal(t, "er", cands[1].Lemma)
	assert.Equal(t, dict.Conjunction, cands[1].POS)
}

func TestCandidatesLowercasesInput(t *testing.T) {
	l := newTestLemmatizer(t)

	assert.Equal(t, l.Candidates("hestur"), l.Candidates("HESTUR"))
	assert.Equal(t, l.Candidates("þetta"), l.Candidates("ÞETTA"))
}

func TestCandidatesUnknownWord(t *testing.T) {
	l := newTestLemmatizer(t)

	cands := l.Candidates("Reykjavíkurborg")
	require.Len(t, cands, 1)
	assert.Equal(t, "reykjavíkurborg", cands[0].Lemma)
	assert.Equal(t, dict.Noun, cands[0].POS)
	assert.False(t, cands[0].known)
}

func TestCandidatesDedup(t *testing.T) {
	w, err := dict.NewWriter(2)
	require.NoError(t, err)

	// Same lemma and POS in several morphological readings collapses to
	// one candidate.
	require.NoError(t, w.Add("hestinum", "hestur", dict.Noun, 3, 1, 0))
	require.NoError(t, w.Add("hestinum", "hestur", dict.Noun, 2, 1, 0))
	data, err := w.Bytes()
	require.NoError(t, err)
	d, err := dict.Load(data)
	require.NoError(t, err)

	l := New(d)
	cands := l.Candidates("hestinum")
	require.Len(t, cands, 1)
	assert.Equal(t, "hestur", cands[0].Lemma)
	assert.Equal(t, uint8(3), cands[0].Case)
}
