package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized reports a leading byte that matches no message family.
	// The caller usually skips the byte and resynchronizes.
	ErrUnrecognized = errors.New("unrecognized status byte")
	// ErrMalformed reports a message whose family was recognized but whose
	// structure within that family is invalid.
	ErrMalformed = errors.New("malformed message")

	// ErrNoMatch is returned by the family decoders when the status byte
	// belongs to another family. Classify never returns it.
	ErrNoMatch = errors.New("no match")
)

type DecodeError struct {
	Status byte
	Err    error
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s - status %#02x", e.Err, e.Status)
	}
	return fmt.Sprintf("%s - status %#02x: %s", e.Err, e.Status, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func malformed(status byte, format string, args ...interface{}) error {
	return &DecodeError{Status: status, Err: ErrMalformed, Reason: fmt.Sprintf(format, args...)}
}

func unrecognized(status byte) error {
	return &DecodeError{Status: status, Err: ErrUnrecognized}
}

func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

func IsUnrecognized(err error) bool {
	return errors.Is(err, ErrUnrecognized)
}
