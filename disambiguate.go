package lemmais

import (
	"math"

	"github.com/hupe1980/lemmais/dict"
)

// Disambiguation is the outcome of picking one reading of an ambiguous word
// using bigram frequencies of the surrounding lemmas.
type Disambiguation struct {
	Lemma string
	POS   dict.POS

	// Confidence is the softmax share of the winning score over all
	// candidate scores. It is zero when no bigram evidence was found.
	Confidence float64

	// ByBigram reports whether bigram evidence actually informed the
	// choice. When false the first candidate was taken as-is.
	ByBigram bool
}

// Disambiguate picks one candidate reading using the lemmas of the
// neighbouring words as bigram context. prev and next may be nil at text
// boundaries. The second return value is false only when cands is empty.
func (l *Lemmatizer) Disambiguate(cands, prev, next []Candidate) (Disambiguation, bool) {
	if len(cands) == 0 {
		return Disambiguation{}, false
	}

	// Single-candidate tokens are scored too: bigram evidence still decides
	// whether the stopword filter may apply to the chosen reading.
	scores := make([]float64, len(cands))
	best := 0
	bestScore := 0.0

	for i, c := range cands {
		score := 0.0
		for _, p := range prev {
			if f := l.dict.BigramFreq(p.Lemma, c.Lemma); f > 0 {
				score += math.Log(float64(f) + 1)
			}
		}
		for _, n := range next {
			if f := l.dict.BigramFreq(c.Lemma, n.Lemma); f > 0 {
				score += math.Log(float64(f) + 1)
			}
		}
		scores[i] = score

		// Strict greater-than keeps the first candidate on ties.
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	win := cands[best]
	d := Disambiguation{Lemma: win.Lemma, POS: win.POS}

	if bestScore > 0 {
		d.ByBigram = true
		d.Confidence = softmaxShare(scores, best)
	}
	return d, true
}

func softmaxShare(scores []float64, winner int) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += math.Exp(s)
	}
	if sum <= 0 {
		return 0.5
	}
	return math.Exp(scores[winner]) / sum
}
