// Package stopwords decides whether a disambiguated (lemma, part-of-speech)
// pair should be excluded from search output.
//
// Two tables feed the decision: a plain sorted lemma list, and a contextual
// table mapping a lemma to a bitmask of the parts of speech in which it acts
// as a stopword. The contextual table lets the same lemma be filler in one
// grammatical role and contentful in another — "á" is noise as a preposition
// but a real content word as the noun for "river".
package stopwords

import (
	"sort"

	"github.com/hupe1980/lemmais/dict"
)

// PosMask is a bitmask over part-of-speech tags.
type PosMask uint16

// MaskOf builds a PosMask from the given tags.
func MaskOf(tags ...dict.POS) PosMask {
	var m PosMask
	for _, t := range tags {
		m |= 1 << uint(t)
	}
	return m
}

// Has reports whether the mask covers pos.
func (m PosMask) Has(pos dict.POS) bool {
	return m&(1<<uint(pos)) != 0
}

// Filter is an immutable stopword table set, safe for concurrent use.
type Filter struct {
	plain []string

	ctxLemmas []string
	ctxMasks  []PosMask
}

// New builds a Filter from a plain lemma list and a contextual lemma→mask
// table. Either may be empty. Inputs are copied and sorted.
func New(plain []string, contextual map[string]PosMask) *Filter {
	f := &Filter{}

	f.plain = append([]string(nil), plain...)
	sort.Strings(f.plain)

	f.ctxLemmas = make([]string, 0, len(contextual))
	for lemma := range contextual {
		f.ctxLemmas = append(f.ctxLemmas, lemma)
	}
	sort.Strings(f.ctxLemmas)
	f.ctxMasks = make([]PosMask, len(f.ctxLemmas))
	for i, lemma := range f.ctxLemmas {
		f.ctxMasks[i] = contextual[lemma]
	}

	return f
}

func (f *Filter) plainContains(lemma string) bool {
	if len(f.plain) == 0 {
		return false
	}
	i := sort.SearchStrings(f.plain, lemma)
	return i < len(f.plain) && f.plain[i] == lemma
}

// IsStopword reports whether lemma should be excluded when it was
// disambiguated to pos. When the contextual table knows the lemma, its mask
// alone decides; otherwise membership in the plain list decides.
func (f *Filter) IsStopword(lemma string, pos dict.POS) bool {
	if len(f.ctxLemmas) > 0 {
		i := sort.SearchStrings(f.ctxLemmas, lemma)
		if i < len(f.ctxLemmas) && f.ctxLemmas[i] == lemma {
			return f.ctxMasks[i].Has(pos)
		}
	}
	return f.plainContains(lemma)
}
