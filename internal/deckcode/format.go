package deckcode

import "strings"

// Format is a deck game mode. The four wire formats have constants; any
// other value is a custom mode carried through from a user override
// (Twist seasons, Tavern Brawl, Duels).
type Format string

const (
	FormatStandard Format = "standard"
	FormatWild     Format = "wild"
	FormatClassic  Format = "classic"
	FormatTwist    Format = "twist"
)

// formatCodes is the wire table. Codes outside it fail decoding with
// UnsupportedFormatError; they are never defaulted.
var formatCodes = map[uint64]Format{
	1: FormatWild,
	2: FormatStandard,
	3: FormatClassic,
	4: FormatTwist,
}

func formatFromCode(code uint64) (Format, bool) {
	f, ok := formatCodes[code]
	return f, ok
}

// Code returns the wire code for f. Custom formats have none.
func (f Format) Code() (uint64, bool) {
	for code, known := range formatCodes {
		if known == f {
			return code, true
		}
	}
	return 0, false
}

// Custom reports whether f is outside the wire table.
func (f Format) Custom() bool {
	_, ok := f.Code()
	return !ok
}

// ParseFormat maps a user-supplied mode string to a Format. Unrecognized
// strings become custom formats rather than errors so overrides like
// "duels" or "tavernbrawl" pass through.
func ParseFormat(s string) Format {
	return Format(strings.ToLower(strings.TrimSpace(s)))
}
