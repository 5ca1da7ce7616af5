package dict

import "fmt"

// POS is a part-of-speech tag. The ten codes match the on-disk entry encoding;
// unrecognized codes decode as Noun.
type POS uint8

const (
	Noun         POS = iota // no
	Verb                    // so
	Adjective               // lo
	Adverb                  // ao
	Preposition             // fs
	Pronoun                 // fn
	Conjunction             // st
	Numeral                 // to
	Article                 // gr
	Interjection            // uh

	numPOS = 10
)

// String returns the traditional Icelandic tag for the part of speech.
func (p POS) String() string {
	switch p {
	case Noun:
		return "no"
	case Verb:
		return "so"
	case Adjective:
		return "lo"
	case Adverb:
		return "ao"
	case Preposition:
		return "fs"
	case Pronoun:
		return "fn"
	case Conjunction:
		return "st"
	case Numeral:
		return "to"
	case Article:
		return "gr"
	case Interjection:
		return "uh"
	default:
		return fmt.Sprintf("POS(%d)", uint8(p))
	}
}

func posFromCode(code uint32) POS {
	if code < numPOS {
		return POS(code)
	}
	return Noun
}

// Entry is one decoded morphological reading of a surface word form.
//
// Case, Gender and Number are only populated by version 2 dictionaries;
// version 1 entries always carry zero (unspecified) morphology.
type Entry struct {
	LemmaID uint32
	POS     POS
	Case    uint8
	Gender  uint8
	Number  uint8
}

// Version 1 packs lemmaID:28 | pos:4.
func decodeEntryV1(packed uint32) Entry {
	return Entry{
		LemmaID: packed >> 4,
		POS:     posFromCode(packed & 0xF),
	}
}

// Version 2 packs lemmaID:22 | number:1 | gender:2 | case:3 | pos:4.
func decodeEntryV2(packed uint32) Entry {
	return Entry{
		LemmaID: packed >> 10,
		POS:     posFromCode(packed & 0xF),
		Case:    uint8((packed >> 4) & 0x7),
		Gender:  uint8((packed >> 7) & 0x3),
		Number:  uint8((packed >> 9) & 0x1),
	}
}
