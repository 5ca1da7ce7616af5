package lemmais

import "github.com/hupe1980/lemmais/dict"

// Candidate is one possible (lemma, part-of-speech, morphology) reading of a
// surface word. Case, Gender and Number are zero (unspecified) for version 1
// dictionaries and for identity fallbacks.
type Candidate struct {
	Lemma  string
	POS    dict.POS
	Case   uint8
	Gender uint8
	Number uint8

	// Dense lemma id; only meaningful when known is true. Identity
	// fallbacks for out-of-dictionary words have no id.
	lemmaID uint32
	known   bool
}

func identityCandidate(lower string) Candidate {
	return Candidate{Lemma: lower, POS: dict.Noun}
}

// Candidates resolves a surface word to its deduplicated readings. The input
// is lowercased with Icelandic case folding before lookup. Unknown words and
// words with no usable entries resolve to a single identity candidate; the
// engine never fails on input text.
func (l *Lemmatizer) Candidates(word string) []Candidate {
	lower := lowercase(word)

	idx, ok := l.dict.FindWord([]byte(lower))
	if !ok {
		return []Candidate{identityCandidate(lower)}
	}

	start, end := l.dict.EntryRange(idx)
	candidates := make([]Candidate, 0, end-start)
	for i := start; i < end; i++ {
		e := l.dict.Entry(i)
		c := Candidate{
			Lemma:   l.dict.Lemma(e.LemmaID),
			POS:     e.POS,
			Case:    e.Case,
			Gender:  e.Gender,
			Number:  e.Number,
			lemmaID: e.LemmaID,
			known:   true,
		}

		// Dedup by (lemma, POS), first reading wins.
		seen := false
		for _, prev := range candidates {
			if prev.POS == c.POS && prev.Lemma == c.Lemma {
				seen = true
				break
			}
		}
		if !seen {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return []Candidate{identityCandidate(lower)}
	}
	return candidates
}
