package lemmais_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/lemmais"
	"github.com/hupe1980/lemmais/dict"
	"github.com/hupe1980/lemmais/stopwords"
)

func buildExampleDict() *dict.Dict {
	w, err := dict.NewWriter(1)
	if err != nil {
		log.Fatal(err)
	}
	_ = w.Add("hestur", "hestur", dict.Noun, 0, 0, 0)
	_ = w.Add("hestar", "hestur", dict.Noun, 0, 0, 0)
	_ = w.Add("fara", "fara", dict.Verb, 0, 0, 0)
	_ = w.Add("fara", "far", dict.Noun, 0, 0, 0)
	data, err := w.Bytes()
	if err != nil {
		log.Fatal(err)
	}
	d, err := dict.Load(data)
	if err != nil {
		log.Fatal(err)
	}
	return d
}

// Example_lemmatizeWord resolves inflected forms to their base forms.
func Example_lemmatizeWord() {
	l := lemmais.New(buildExampleDict(), lemmais.WithStopwords(stopwords.None()))
	defer l.Close()

	fmt.Println(l.LemmatizeWord("hestar"))
	fmt.Println(l.LemmatizeWord("fara"))
	// Output:
	// [hestur]
	// [fara far]
}

// Example_buildQuery turns free text into a boolean search query.
func Example_buildQuery() {
	l := lemmais.New(buildExampleDict(), lemmais.WithStopwords(stopwords.None()))
	defer l.Close()

	fmt.Println(l.BuildQuery("hestar fara"))
	// Output: hestur & (fara | far)
}
