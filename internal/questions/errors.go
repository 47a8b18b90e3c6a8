package questions

import (
	"errors"
	"fmt"
)

var (
	ErrNullRecord      = errors.New("record is null")
	ErrMissingField    = errors.New("missing field")
	ErrMalformedAnswer = errors.New(`correct_answer has "Option " prefix but no letter`)
)

// RecordError ties a failure to the zero-based position of the input
// record that caused it.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ErrInvalidFormat indicates a file that does not conform to the
// converted question schema.
type ErrInvalidFormat struct {
	Err error
}

func (e *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid question file: %v", e.Err)
}

func (e *ErrInvalidFormat) Unwrap() error { return e.Err }
