// Package dict implements the binary dictionary format of the Icelandic
// lemmatizer: a single little-endian blob holding a shared string pool, a
// lemma table, a sorted surface-word index with packed morphological entries,
// and an optional sorted bigram-frequency index.
//
// The format is designed for zero-copy use: every string is an (offset,length)
// view into the pool, and Load validates every region boundary once so that no
// lookup after a successful Load can fail or read out of bounds.
//
// File layout (32-byte header, then five regions, each padded to 4 bytes):
//
//	magic (0x4C454D41 "LEMA") | version | stringPoolSize | lemmaCount |
//	wordCount | entryCount | bigramCount | reserved
//	string pool
//	lemma offsets (u32 × lemmaCount) + lemma lengths (u8 × lemmaCount)
//	word offsets (u32 × wordCount) + word lengths (u8 × wordCount)
//	entry ranges (u32 × wordCount+1) + packed entries (u32 × entryCount)
//	bigram word1/word2 offsets+lengths + frequencies (only if bigramCount > 0)
package dict

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic identifies a lemmatizer dictionary blob ("LEMA" as little-endian bytes).
const Magic = 0x4C454D41

const headerSize = 32

// Dict is an immutable, loaded dictionary. Once Load returns, a Dict is never
// mutated and may be shared by any number of goroutines without locking.
type Dict struct {
	data    []byte
	version uint32

	lemmaCount  uint32
	wordCount   uint32
	entryCount  uint32
	bigramCount uint32

	stringPool   []byte
	lemmaOffsets []byte
	lemmaLengths []byte
	wordOffsets  []byte
	wordLengths  []byte
	entryRanges  []byte
	entries      []byte

	bigramW1Offsets []byte
	bigramW1Lengths []byte
	bigramW2Offsets []byte
	bigramW2Lengths []byte
	bigramFreqs     []byte

	// Selected once at load time based on the format version.
	decodeEntry func(uint32) Entry

	closer io.Closer
}

// regionReader slices successive regions out of a buffer, failing with a
// CorruptError as soon as a declared region would extend past the end.
type regionReader struct {
	data []byte
	off  int
}

func (r *regionReader) take(n int, region string) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.off {
		return nil, &CorruptError{Region: region}
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *regionReader) align4(region string) error {
	pad := (4 - r.off&3) & 3
	_, err := r.take(pad, region)
	return err
}

// Load parses and validates a dictionary blob. The returned Dict retains data
// and takes zero-copy views into it; the caller must not mutate the buffer
// afterwards. Load never returns a partially constructed Dict.
func Load(data []byte) (*Dict, error) {
	if len(data) < headerSize {
		return nil, &CorruptError{Region: "header"}
	}

	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		return nil, ErrBadMagic
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	if version != 1 && version != 2 {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedVersion, version)
	}

	d := &Dict{
		data:        data,
		version:     version,
		lemmaCount:  binary.LittleEndian.Uint32(data[12:16]),
		wordCount:   binary.LittleEndian.Uint32(data[16:20]),
		entryCount:  binary.LittleEndian.Uint32(data[20:24]),
		bigramCount: binary.LittleEndian.Uint32(data[24:28]),
	}
	stringPoolSize := binary.LittleEndian.Uint32(data[8:12])

	if version == 1 {
		d.decodeEntry = decodeEntryV1
	} else {
		d.decodeEntry = decodeEntryV2
	}

	r := &regionReader{data: data, off: headerSize}

	var err error
	if d.stringPool, err = r.take(int(stringPoolSize), "string pool"); err != nil {
		return nil, err
	}

	if d.lemmaOffsets, err = r.take(int(d.lemmaCount)*4, "lemma offsets"); err != nil {
		return nil, err
	}
	if d.lemmaLengths, err = r.take(int(d.lemmaCount), "lemma lengths"); err != nil {
		return nil, err
	}
	if err = r.align4("lemma table"); err != nil {
		return nil, err
	}

	if d.wordOffsets, err = r.take(int(d.wordCount)*4, "word offsets"); err != nil {
		return nil, err
	}
	if d.wordLengths, err = r.take(int(d.wordCount), "word lengths"); err != nil {
		return nil, err
	}
	if err = r.align4("word table"); err != nil {
		return nil, err
	}

	if d.entryRanges, err = r.take((int(d.wordCount)+1)*4, "entry ranges"); err != nil {
		return nil, err
	}
	if d.entries, err = r.take(int(d.entryCount)*4, "entries"); err != nil {
		return nil, err
	}

	if d.bigramCount > 0 {
		if err = r.align4("bigram table"); err != nil {
			return nil, err
		}
		if d.bigramW1Offsets, err = r.take(int(d.bigramCount)*4, "bigram word1 offsets"); err != nil {
			return nil, err
		}
		if d.bigramW1Lengths, err = r.take(int(d.bigramCount), "bigram word1 lengths"); err != nil {
			return nil, err
		}
		if err = r.align4("bigram word1 table"); err != nil {
			return nil, err
		}
		if d.bigramW2Offsets, err = r.take(int(d.bigramCount)*4, "bigram word2 offsets"); err != nil {
			return nil, err
		}
		if d.bigramW2Lengths, err = r.take(int(d.bigramCount), "bigram word2 lengths"); err != nil {
			return nil, err
		}
		if err = r.align4("bigram word2 table"); err != nil {
			return nil, err
		}
		if d.bigramFreqs, err = r.take(int(d.bigramCount)*4, "bigram frequencies"); err != nil {
			return nil, err
		}
	}

	if err := d.validateViews(); err != nil {
		return nil, err
	}
	return d, nil
}

// validateViews checks every (offset,length) view and every entry's lemma id
// once, so that accessors can index without bounds checks of their own.
func (d *Dict) validateViews() error {
	pool := uint32(len(d.stringPool))

	checkTable := func(offsets, lengths []byte, n uint32, region string) error {
		for i := uint32(0); i < n; i++ {
			off := binary.LittleEndian.Uint32(offsets[i*4:])
			l := uint32(lengths[i])
			if off > pool || l > pool-off {
				return &CorruptError{Region: region}
			}
		}
		return nil
	}

	if err := checkTable(d.lemmaOffsets, d.lemmaLengths, d.lemmaCount, "lemma strings"); err != nil {
		return err
	}
	if err := checkTable(d.wordOffsets, d.wordLengths, d.wordCount, "word strings"); err != nil {
		return err
	}
	if d.bigramCount > 0 {
		if err := checkTable(d.bigramW1Offsets, d.bigramW1Lengths, d.bigramCount, "bigram word1 strings"); err != nil {
			return err
		}
		if err := checkTable(d.bigramW2Offsets, d.bigramW2Lengths, d.bigramCount, "bigram word2 strings"); err != nil {
			return err
		}
	}

	for i := uint32(0); i <= d.wordCount; i++ {
		if binary.LittleEndian.Uint32(d.entryRanges[i*4:]) > d.entryCount {
			return &CorruptError{Region: "entry ranges"}
		}
	}

	for i := uint32(0); i < d.entryCount; i++ {
		packed := binary.LittleEndian.Uint32(d.entries[i*4:])
		if d.decodeEntry(packed).LemmaID >= d.lemmaCount {
			return &CorruptError{Region: "entry lemma ids"}
		}
	}
	return nil
}

// Version reports the format version (1 or 2).
func (d *Dict) Version() uint32 { return d.version }

// LemmaCount reports the number of lemmas in the lemma table.
func (d *Dict) LemmaCount() int { return int(d.lemmaCount) }

// WordCount reports the number of surface word forms in the word index.
func (d *Dict) WordCount() int { return int(d.wordCount) }

// EntryCount reports the total number of packed morphological entries.
func (d *Dict) EntryCount() int { return int(d.entryCount) }

// BigramCount reports the number of bigram statistics; zero means the
// dictionary was built without a bigram index.
func (d *Dict) BigramCount() int { return int(d.bigramCount) }

// Lemma returns the lemma string with the given dense id.
func (d *Dict) Lemma(id uint32) string {
	return string(d.lemmaBytes(id))
}

func (d *Dict) lemmaBytes(id uint32) []byte {
	off := binary.LittleEndian.Uint32(d.lemmaOffsets[id*4:])
	return d.stringPool[off : off+uint32(d.lemmaLengths[id])]
}

// Word returns the surface word form at index i of the sorted word index.
func (d *Dict) Word(i int) string {
	return string(d.wordBytes(i))
}

func (d *Dict) wordBytes(i int) []byte {
	off := binary.LittleEndian.Uint32(d.wordOffsets[i*4:])
	return d.stringPool[off : off+uint32(d.wordLengths[i])]
}

// EntryRange returns the half-open entry index range belonging to word i.
// An inverted range in the blob is reported as empty.
func (d *Dict) EntryRange(i int) (start, end uint32) {
	start = binary.LittleEndian.Uint32(d.entryRanges[i*4:])
	end = binary.LittleEndian.Uint32(d.entryRanges[(i+1)*4:])
	if end < start {
		end = start
	}
	return start, end
}

// Entry decodes the packed morphological entry at index i.
func (d *Dict) Entry(i uint32) Entry {
	return d.decodeEntry(binary.LittleEndian.Uint32(d.entries[i*4:]))
}

// Close releases the underlying storage (for memory-mapped dictionaries).
// After Close, the Dict must not be used. Close on a heap-backed Dict is a
// no-op and Close is safe to call more than once.
func (d *Dict) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	return c.Close()
}
