// Package tokenizer segments raw text into alphabetic word tokens using
// Icelandic-aware rules.
//
// A token is a maximal run of alphabetic codepoints. A single embedded joiner
// (apostrophe, right single quotation mark, hyphen, en dash, em dash) is
// consumed into the token only when an alphabetic codepoint follows it
// immediately, so "o'fáanlegt" is one token while a trailing "orð-" stops at
// the hyphen. Everything else is skipped between tokens.
package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

func isJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-', '–', '—':
		return true
	}
	return false
}

// Scanner is a lazy, one-pass word scanner over a string. The zero value is
// not usable; create one with NewScanner.
type Scanner struct {
	s   string
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{s: s}
}

// Next returns the next word token, or ok=false when the input is exhausted.
func (sc *Scanner) Next() (token string, ok bool) {
	for sc.pos < len(sc.s) {
		r, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
		if !unicode.IsLetter(r) {
			sc.pos += size
			continue
		}

		start := sc.pos
		sc.pos += size

		for sc.pos < len(sc.s) {
			r, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
			if unicode.IsLetter(r) {
				sc.pos += size
				continue
			}
			if isJoiner(r) {
				// Joiner lookahead: consume only when a letter follows.
				after := sc.pos + size
				if after < len(sc.s) {
					next, _ := utf8.DecodeRuneInString(sc.s[after:])
					if unicode.IsLetter(next) {
						sc.pos += size
						continue
					}
				}
			}
			break
		}

		return sc.s[start:sc.pos], true
	}
	return "", false
}

// Words tokenizes s in one pass and returns the tokens in order.
func Words(s string) []string {
	var out []string
	sc := NewScanner(s)
	for {
		tok, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
