package lemmais

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful and not safe for concurrent use, so they are pooled.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Icelandic)
		return &c
	},
}

// lowercase folds s with locale-correct Icelandic casing.
func lowercase(s string) string {
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(s)
}
