package dict

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the buffer does not start with the LEMA magic.
	// It indicates the wrong file was supplied, not a truncated one.
	ErrBadMagic = errors.New("dict: invalid binary format (bad magic)")

	// ErrUnsupportedVersion is returned for format versions other than 1 and 2.
	ErrUnsupportedVersion = errors.New("dict: unsupported binary version")
)

// CorruptError indicates that a declared region extends past the end of the
// buffer, or that a table references string-pool bytes that do not exist.
// It always points at a truncated or hand-edited file.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type CorruptError struct {
	Region string
	cause  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("dict: corrupted binary (%s out of bounds)", e.Region)
}

func (e *CorruptError) Unwrap() error { return e.cause }
