package deckcode

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBase64 reports input that is not valid standard-alphabet base64.
	ErrMalformedBase64 = errors.New("deck code is not valid base64")

	// ErrTruncated reports a buffer that ended mid-field.
	ErrTruncated = errors.New("deck code is truncated")

	// ErrOverflow reports a varint too large for the field it was read into.
	ErrOverflow = errors.New("varint overflows field width")
)

// UnsupportedFormatError reports a format code outside the known table.
// Unknown codes are rejected rather than defaulted to Standard: a decode
// that silently mislabels a deck's format is worse than one that fails.
type UnsupportedFormatError struct {
	Code uint64
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported deck format code %d", e.Code)
}
