package decoding

import "fmt"

// UnsupportedFormatError indicates no decoder is registered for a format
// tag.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no decoder registered for format %q", e.Format)
}

// DecodeError indicates a decoder failed on a payload it should handle.
type DecodeError struct {
	Format  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error (%s): %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
