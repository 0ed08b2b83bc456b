package deckcode

import "strings"

// Deck codes start with two reserved bytes; in standard base64 the 0x00
// header renders as "AA", which makes codes recognizable inside pasted text.
const codePrefix = "AA"

// ExtractTitleAndCode isolates the deck code and an optional title from
// clipboard text. The title is the text between a "### " marker and the next
// "# " comment line; the single space matters so titles like "#1 Legend"
// are not cut short. The code is the first whitespace-delimited token with
// the code prefix, falling back to the whole trimmed input. Never fails;
// malformed input surfaces later in Decode.
func ExtractTitleAndCode(text string) (title, code string) {
	if _, after, found := strings.Cut(text, "###"); found {
		t := after
		if i := strings.Index(t, "# "); i >= 0 {
			t = t[:i]
		} else if i := strings.IndexByte(t, '\n'); i >= 0 {
			t = t[:i]
		}
		title = strings.TrimSpace(t)
	}

	code = strings.TrimSpace(text)
	for _, tok := range strings.Fields(text) {
		if strings.HasPrefix(tok, codePrefix) {
			code = tok
			break
		}
	}
	return title, code
}
