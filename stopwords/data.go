package stopwords

import "github.com/hupe1980/lemmais/dict"

// Built-in Icelandic tables. The plain list holds lemmas that carry no search
// signal in any role: conjunctions, common prepositions, pronouns and the
// auxiliary verbs. The contextual table overrides the decision for lemmas
// whose surface forms collide with content words.
var (
	defaultPlain = []string{
		"að",
		"af",
		"allur",
		"annar",
		"auk",
		"bæði",
		"eða",
		"ef",
		"eftir",
		"eiga",
		"einhver",
		"einn",
		"ekki",
		"en",
		"enda",
		"enginn",
		"frá",
		"fyrir",
		"gegnum",
		"hann",
		"hinn",
		"hjá",
		"hvað",
		"hver",
		"hvor",
		"hún",
		"innan",
		"í",
		"með",
		"meðal",
		"milli",
		"mun",
		"nema",
		"niður",
		"né",
		"nú",
		"og",
		"sá",
		"sem",
		"sig",
		"sinn",
		"síðan",
		"skulu",
		"svo",
		"til",
		"um",
		"undir",
		"upp",
		"út",
		"vera",
		"verða",
		"við",
		"því",
		"það",
		"þegar",
		"þeir",
		"þessi",
		"þér",
		"þið",
		"þó",
		"þú",
		"yfir",
		"ég",
	}

	defaultContextual = map[string]PosMask{
		// "á" the preposition/adverb is noise; "á" the noun (river) is not.
		"á": MaskOf(dict.Preposition, dict.Adverb),
		// "við" the preposition/pronoun vs. the noun (wood).
		"við": MaskOf(dict.Preposition, dict.Pronoun),
		// "er" the relative conjunction vs. inflected "vera".
		"er": MaskOf(dict.Conjunction),
		// "yfir" filters as preposition or adverb, not as a noun.
		"yfir": MaskOf(dict.Preposition, dict.Adverb),
		// "um" only filters as a preposition.
		"um": MaskOf(dict.Preposition),
		// "eftir" the preposition vs. the noun (copy, replica).
		"eftir": MaskOf(dict.Preposition),
	}
)

// Default returns the built-in Icelandic stopword filter.
func Default() *Filter {
	return New(defaultPlain, defaultContextual)
}

// None returns an empty filter that never excludes anything.
func None() *Filter {
	return New(nil, nil)
}
