package lemmais

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lemmatizer-specific field helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output. It is the default for
// library use.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithDict adds the dictionary blob name to the logger.
func (l *Logger) WithDict(name string) *Logger {
	return &Logger{Logger: l.Logger.With("dict", name)}
}

// LogLoad logs a dictionary load.
func (l *Logger) LogLoad(name string, words, lemmas, bigrams int, err error) {
	if err != nil {
		l.Error("dictionary load failed",
			"dict", name,
			"error", err,
		)
		return
	}
	l.Info("dictionary loaded",
		"dict", name,
		"words", words,
		"lemmas", lemmas,
		"bigrams", bigrams,
	)
}
