package lemmais

import (
	"strings"

	"github.com/hupe1980/lemmais/tokenizer"
)

// BuildQuery turns free text into a boolean query string. Every token becomes
// one conjunct; tokens with several distinct lemmas become a parenthesized
// disjunction. Tokens that lemmatize to nothing are skipped, and empty input
// yields an empty query.
//
//	"stór hestur"  ->  "stór & hestur"
//	"fara"         ->  "(fara | far)"
func (l *Lemmatizer) BuildQuery(text string) string {
	tokens := tokenizer.Words(text)
	if len(tokens) == 0 {
		return ""
	}

	perToken := make([][]Candidate, len(tokens))
	for i, tok := range tokens {
		perToken[i] = l.Candidates(tok)
	}

	var b strings.Builder
	for i := range perToken {
		var prev, next []Candidate
		if i > 0 {
			prev = perToken[i-1]
		}
		if i < len(perToken)-1 {
			next = perToken[i+1]
		}

		kept := l.tokenLemmas(perToken[i], prev, next)
		if len(kept) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString(" & ")
		}
		if len(kept) == 1 {
			b.WriteString(kept[0].Lemma)
			continue
		}
		b.WriteByte('(')
		for j, c := range kept {
			if j > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(c.Lemma)
		}
		b.WriteByte(')')
	}
	return b.String()
}
