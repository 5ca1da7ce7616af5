package lemmais

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lemmais/tokenizer"
)

// LemmatizeWord returns the distinct lemmas of a single word, without any
// sentence context or stopword filtering. Unknown words lemmatize to their
// lowercased form.
func (l *Lemmatizer) LemmatizeWord(word string) []string {
	cands := l.Candidates(word)

	lemmas := make([]string, 0, len(cands))
	for _, c := range cands {
		if !containsString(lemmas, c.Lemma) {
			lemmas = append(lemmas, c.Lemma)
		}
	}
	return lemmas
}

// LemmatizeText tokenizes text and returns the distinct lemmas of all tokens
// in first-occurrence order. Each token is disambiguated against its
// neighbours; when bigram evidence selects a lemma, that lemma is dropped if
// the stopword filter matches it. Alternative readings of a token are always
// kept.
func (l *Lemmatizer) LemmatizeText(text string) []string {
	tokens := tokenizer.Words(text)
	if len(tokens) == 0 {
		return nil
	}

	perToken := make([][]Candidate, len(tokens))
	for i, tok := range tokens {
		perToken[i] = l.Candidates(tok)
	}

	var (
		out     []string
		seenIDs = roaring.New()
		seen    map[string]struct{}
	)
	// Known lemmas dedup on their dense id in the bitmap; repeats never
	// touch the string set. The set holds each emitted string once, so the
	// first occurrence of an id and every identity fallback can still catch
	// a collision with a lemma emitted under the other origin.
	emit := func(c Candidate) {
		if c.known {
			if seenIDs.Contains(c.lemmaID) {
				return
			}
			seenIDs.Add(c.lemmaID)
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		if _, dup := seen[c.Lemma]; dup {
			return
		}
		seen[c.Lemma] = struct{}{}
		out = append(out, c.Lemma)
	}

	for i := range perToken {
		var prev, next []Candidate
		if i > 0 {
			prev = perToken[i-1]
		}
		if i < len(perToken)-1 {
			next = perToken[i+1]
		}
		for _, c := range l.tokenLemmas(perToken[i], prev, next) {
			emit(c)
		}
	}
	return out
}

// tokenLemmas returns the candidates of one token deduplicated by lemma, with
// the bigram-selected lemma removed when the stopword filter matches it.
func (l *Lemmatizer) tokenLemmas(cands, prev, next []Candidate) []Candidate {
	d, ok := l.Disambiguate(cands, prev, next)
	if !ok {
		return nil
	}

	kept := make([]Candidate, 0, len(cands))
	var lemmas []string
	for _, c := range cands {
		if containsString(lemmas, c.Lemma) {
			continue
		}
		if d.ByBigram && c.Lemma == d.Lemma && l.stop.IsStopword(d.Lemma, d.POS) {
			continue
		}
		lemmas = append(lemmas, c.Lemma)
		kept = append(kept, c)
	}
	return kept
}

// LemmatizeTexts lemmatizes several texts concurrently and returns the
// results in input order. Concurrency is bounded by WithMaxConcurrency.
func (l *Lemmatizer) LemmatizeTexts(ctx context.Context, texts []string) ([][]string, error) {
	results := make([][]string, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxConcurrency)

	for i, text := range texts {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = l.LemmatizeText(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
