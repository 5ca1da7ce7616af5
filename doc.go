// Package lemmais is a morphological lemmatizer for Icelandic text.
//
// Given surface word forms, it resolves each to its dictionary base form
// (lemma), disambiguating among multiple morphological readings with local
// bigram statistics, and produces output usable by a full-text-search layer:
// flat lemma sets or a boolean lemma query expression.
//
// # Quick Start
//
// Local dictionary file:
//
//	ctx := context.Background()
//	lz, _ := lemmais.OpenFile(ctx, "/usr/share/fts/icelandic_fts.core.bin")
//	defer lz.Close()
//
//	lemmas := lz.LemmatizeText("Hestarnir hlupu yfir ána")
//	query := lz.BuildQuery("stór hestur")   // "stór & hestur"
//
// Cloud-hosted dictionary:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("dicts/"))
//	lz, _ := lemmais.Open(ctx, store, lemmais.DefaultDictName)
//
// # Dictionary
//
// The dictionary is a pre-built binary blob (see package dict for the format).
// It is loaded once, is immutable afterwards, and may be shared by any number
// of goroutines. Compressed blobs (zstd, lz4, gzip) are detected and unpacked
// transparently; uncompressed local files are memory-mapped and parsed
// zero-copy.
//
// # Disambiguation
//
// Each token is scored against the full candidate sets of its immediate
// neighbors using bigram co-occurrence counts. When bigram evidence exists,
// the best reading also gets a softmax confidence, and contextual stopword
// filtering applies to the chosen reading only. Unknown words never fail:
// they degrade to identity lemmatization of the lowercased form.
package lemmais
