package lemmais

import "github.com/hupe1980/lemmais/stopwords"

type options struct {
	logger         *Logger
	stopwords      *stopwords.Filter
	maxConcurrency int
}

func defaultOptions() options {
	return options{
		logger:         NoopLogger(),
		stopwords:      stopwords.Default(),
		maxConcurrency: 4,
	}
}

// Option configures a Lemmatizer.
type Option func(*options)

// WithLogger sets the logger. Nil restores the silent default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithStopwords replaces the built-in Icelandic stopword tables.
// Use stopwords.None() to disable filtering entirely.
func WithStopwords(f *stopwords.Filter) Option {
	return func(o *options) {
		if f == nil {
			f = stopwords.None()
		}
		o.stopwords = f
	}
}

// WithMaxConcurrency bounds the number of texts LemmatizeTexts processes in
// parallel. Values below 1 are treated as 1.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.maxConcurrency = n
	}
}
