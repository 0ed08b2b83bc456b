package deck

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Difference is the multiset comparison of two decks: cards both run, and
// each side's exclusives (including count surpluses of shared cards).
type Difference struct {
	Shared []Entry `json:"shared"`

	LeftCode string  `json:"left_code"`
	LeftOnly []Entry `json:"left_only"`

	RightCode string  `json:"right_code"`
	RightOnly []Entry `json:"right_only"`
}

// Compare diffs two hydrated decks by card id.
func Compare(left, right Deck) Difference {
	diff := Difference{LeftCode: left.Code, RightCode: right.Code}

	rightCounts := make(map[uint64]int)
	for _, e := range right.Cards {
		rightCounts[e.Card.ID] = e.Count
	}

	seen := make(map[uint64]bool)
	for _, e := range left.Cards {
		seen[e.Card.ID] = true
		shared := min(e.Count, rightCounts[e.Card.ID])
		if shared > 0 {
			diff.Shared = append(diff.Shared, Entry{Card: e.Card, Count: shared})
		}
		if extra := e.Count - shared; extra > 0 {
			diff.LeftOnly = append(diff.LeftOnly, Entry{Card: e.Card, Count: extra})
		}
	}
	for _, e := range right.Cards {
		shared := 0
		if seen[e.Card.ID] {
			for _, l := range left.Cards {
				if l.Card.ID == e.Card.ID {
					shared = min(l.Count, e.Count)
					break
				}
			}
		}
		if extra := e.Count - shared; extra > 0 {
			diff.RightOnly = append(diff.RightOnly, Entry{Card: e.Card, Count: extra})
		}
	}

	return diff
}

// RenderDifference prints shared cards, then each deck's exclusives with
// +/- markers.
func RenderDifference(w io.Writer, diff Difference) {
	for _, e := range sortedEntries(diff.Shared) {
		fmt.Fprintln(w, entryLine(e))
	}

	fmt.Fprintf(w, "\n%s\n", diff.LeftCode)
	for _, e := range sortedEntries(diff.LeftOnly) {
		fmt.Fprintf(w, "%s%s\n", color.GreenString("+"), entryLine(e))
	}

	fmt.Fprintf(w, "\n%s\n", diff.RightCode)
	for _, e := range sortedEntries(diff.RightOnly) {
		fmt.Fprintf(w, "%s%s\n", color.RedString("-"), entryLine(e))
	}
}
