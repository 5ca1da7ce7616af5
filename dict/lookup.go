package dict

import (
	"bytes"
	"encoding/binary"
)

// compareKey orders stored bytes against a query key: byte-wise comparison
// over the common prefix, then length as tie-break (a stored string that is a
// strict prefix of the query sorts first). This is the order the word and
// bigram tables are built in.
func compareKey(stored, query []byte) int {
	n := len(stored)
	if len(query) < n {
		n = len(query)
	}
	if c := bytes.Compare(stored[:n], query[:n]); c != 0 {
		return c
	}
	return len(stored) - len(query)
}

// FindWord binary-searches the word index for the exact surface form and
// returns its index, or ok=false when the form is not present.
func (d *Dict) FindWord(word []byte) (idx int, ok bool) {
	lo, hi := 0, int(d.wordCount)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := compareKey(d.wordBytes(mid), word)
		if c == 0 {
			return mid, true
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return 0, false
}

func (d *Dict) compareBigram(i int, w1, w2 []byte) int {
	off := binary.LittleEndian.Uint32(d.bigramW1Offsets[i*4:])
	stored := d.stringPool[off : off+uint32(d.bigramW1Lengths[i])]
	if c := compareKey(stored, w1); c != 0 {
		return c
	}
	off = binary.LittleEndian.Uint32(d.bigramW2Offsets[i*4:])
	stored = d.stringPool[off : off+uint32(d.bigramW2Lengths[i])]
	return compareKey(stored, w2)
}

// BigramFreq returns the observed co-occurrence count for the ordered lemma
// pair (w1, w2), or 0 when the pair is absent or the dictionary carries no
// bigram index. It never fails.
func (d *Dict) BigramFreq(w1, w2 string) uint32 {
	if d.bigramCount == 0 {
		return 0
	}
	b1, b2 := []byte(w1), []byte(w2)
	lo, hi := 0, int(d.bigramCount)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := d.compareBigram(mid, b1, b2)
		if c == 0 {
			return binary.LittleEndian.Uint32(d.bigramFreqs[mid*4:])
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return 0
}
