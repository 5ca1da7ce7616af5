package dict

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// Writer assembles a dictionary blob in the on-disk layout understood by
// Load. It exists for offline build tooling and test fixtures; it does not
// derive linguistic data, it only serializes what it is given.
//
// Surface forms and lemmas are expected to be lowercased already; the Writer
// stores bytes verbatim.
type Writer struct {
	version uint32

	formIdx map[string]int
	words   []writerWord

	lemmaID map[string]uint32
	lemmas  []string

	bigramIdx map[[2]string]int
	bigrams   []writerBigram
}

type writerWord struct {
	form   string
	packed []uint32
}

type writerBigram struct {
	w1, w2 string
	freq   uint32
}

// Max dense lemma id per version, bounded by the packed-entry layout.
const (
	maxLemmaIDV1 = 1<<28 - 1
	maxLemmaIDV2 = 1<<22 - 1
)

// NewWriter creates a Writer for the given format version (1 or 2).
func NewWriter(version uint32) (*Writer, error) {
	if version != 1 && version != 2 {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedVersion, version)
	}
	return &Writer{
		version:   version,
		formIdx:   make(map[string]int),
		lemmaID:   make(map[string]uint32),
		bigramIdx: make(map[[2]string]int),
	}, nil
}

func checkString(kind, s string) error {
	if s == "" {
		return fmt.Errorf("dict: empty %s", kind)
	}
	if len(s) > 255 {
		return fmt.Errorf("dict: %s %q exceeds 255 bytes", kind, s)
	}
	return nil
}

// Add records one morphological reading for a surface form. Exact duplicate
// readings of the same form are collapsed. Version 1 dictionaries cannot
// carry morphology; passing a non-zero case, gender or number for a version 1
// Writer is an error rather than a silent drop.
func (w *Writer) Add(form, lemma string, pos POS, caseCode, gender, number uint8) error {
	if err := checkString("surface form", form); err != nil {
		return err
	}
	if err := checkString("lemma", lemma); err != nil {
		return err
	}
	if pos >= numPOS {
		return fmt.Errorf("dict: invalid part-of-speech code %d", pos)
	}

	id, ok := w.lemmaID[lemma]
	if !ok {
		id = uint32(len(w.lemmas))
		maxID := uint32(maxLemmaIDV1)
		if w.version == 2 {
			maxID = maxLemmaIDV2
		}
		if id > maxID {
			return fmt.Errorf("dict: lemma id %d exceeds version %d limit", id, w.version)
		}
		w.lemmaID[lemma] = id
		w.lemmas = append(w.lemmas, lemma)
	}

	var packed uint32
	switch w.version {
	case 1:
		if caseCode != 0 || gender != 0 || number != 0 {
			return fmt.Errorf("dict: version 1 entries cannot encode morphology")
		}
		packed = id<<4 | uint32(pos)
	default:
		if caseCode > 7 || gender > 3 || number > 1 {
			return fmt.Errorf("dict: morphology out of range (case=%d gender=%d number=%d)", caseCode, gender, number)
		}
		packed = id<<10 | uint32(number)<<9 | uint32(gender)<<7 | uint32(caseCode)<<4 | uint32(pos)
	}

	i, ok := w.formIdx[form]
	if !ok {
		i = len(w.words)
		w.formIdx[form] = i
		w.words = append(w.words, writerWord{form: form})
	}
	for _, p := range w.words[i].packed {
		if p == packed {
			return nil
		}
	}
	w.words[i].packed = append(w.words[i].packed, packed)
	return nil
}

// AddBigram records the co-occurrence frequency for the ordered lemma pair
// (w1, w2). Recording the same pair again replaces the frequency.
func (w *Writer) AddBigram(w1, w2 string, freq uint32) error {
	if err := checkString("bigram word", w1); err != nil {
		return err
	}
	if err := checkString("bigram word", w2); err != nil {
		return err
	}
	key := [2]string{w1, w2}
	if i, ok := w.bigramIdx[key]; ok {
		w.bigrams[i].freq = freq
		return nil
	}
	w.bigramIdx[key] = len(w.bigrams)
	w.bigrams = append(w.bigrams, writerBigram{w1: w1, w2: w2, freq: freq})
	return nil
}

// Bytes serializes the dictionary. The output is deterministic for a given
// set of Add/AddBigram calls.
func (w *Writer) Bytes() ([]byte, error) {
	words := make([]writerWord, len(w.words))
	copy(words, w.words)
	sort.Slice(words, func(i, j int) bool {
		return compareKey([]byte(words[i].form), []byte(words[j].form)) < 0
	})

	bigrams := make([]writerBigram, len(w.bigrams))
	copy(bigrams, w.bigrams)
	sort.Slice(bigrams, func(i, j int) bool {
		if c := compareKey([]byte(bigrams[i].w1), []byte(bigrams[j].w1)); c != 0 {
			return c < 0
		}
		return compareKey([]byte(bigrams[i].w2), []byte(bigrams[j].w2)) < 0
	})

	// String pool with interning: lemmas first (dense id order), then word
	// forms and bigram words that are not already pooled.
	var pool bytes.Buffer
	poolOff := make(map[string]uint32)
	intern := func(s string) uint32 {
		if off, ok := poolOff[s]; ok {
			return off
		}
		off := uint32(pool.Len())
		poolOff[s] = off
		pool.WriteString(s)
		return off
	}
	for _, l := range w.lemmas {
		intern(l)
	}
	for _, ww := range words {
		intern(ww.form)
	}
	for _, bg := range bigrams {
		intern(bg.w1)
		intern(bg.w2)
	}

	entryCount := 0
	for _, ww := range words {
		entryCount += len(ww.packed)
	}

	var out bytes.Buffer
	u32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out.Write(b[:])
	}
	align4 := func() {
		for out.Len()&3 != 0 {
			out.WriteByte(0)
		}
	}
	writeStringTable := func(get func(i int) string, n int) {
		for i := 0; i < n; i++ {
			u32(poolOff[get(i)])
		}
		for i := 0; i < n; i++ {
			out.WriteByte(byte(len(get(i))))
		}
		align4()
	}

	u32(Magic)
	u32(w.version)
	u32(uint32(pool.Len()))
	u32(uint32(len(w.lemmas)))
	u32(uint32(len(words)))
	u32(uint32(entryCount))
	u32(uint32(len(bigrams)))
	u32(0) // reserved

	out.Write(pool.Bytes())

	writeStringTable(func(i int) string { return w.lemmas[i] }, len(w.lemmas))
	writeStringTable(func(i int) string { return words[i].form }, len(words))

	next := uint32(0)
	for _, ww := range words {
		u32(next)
		next += uint32(len(ww.packed))
	}
	u32(next)
	for _, ww := range words {
		for _, p := range ww.packed {
			u32(p)
		}
	}

	if len(bigrams) > 0 {
		align4()
		writeStringTable(func(i int) string { return bigrams[i].w1 }, len(bigrams))
		writeStringTable(func(i int) string { return bigrams[i].w2 }, len(bigrams))
		for _, bg := range bigrams {
			u32(bg.freq)
		}
	}

	return out.Bytes(), nil
}

// WriteTo serializes the dictionary to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	b, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(b)
	return int64(n), err
}
