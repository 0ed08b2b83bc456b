package deck

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/youruser/hearthdeck/internal/cards"
)

// Render writes the deck list in the familiar layout: a format/class
// header, count-prefixed card lines sorted by cost then name, sideboard
// blocks, and the code on the last line.
func Render(w io.Writer, d Deck) {
	bold := color.New(color.Bold)

	if d.Title != "" {
		bold.Fprintln(w, d.Title)
	}
	class := string(d.Class)
	if class == "" {
		class = "Unknown"
	}
	fmt.Fprintf(w, "%10s %s deck.\n",
		bold.Sprint(strings.ToUpper(string(d.Format))), bold.Sprint(class))

	for _, e := range sortedEntries(d.Cards) {
		fmt.Fprintln(w, entryLine(e))
	}

	for _, sb := range d.Sideboards {
		fmt.Fprintf(w, "Sideboard of %s:\n", sb.Owner.Name)
		for _, e := range sortedEntries(sb.Cards) {
			fmt.Fprintln(w, entryLine(e))
		}
	}

	if len(d.UnknownIDs) > 0 {
		fmt.Fprintf(w, "Unresolved card ids: %v\n", d.UnknownIDs)
	}
	fmt.Fprintln(w, d.Code)
}

func entryLine(e Entry) string {
	count := ""
	if e.Count > 1 {
		count = fmt.Sprintf("%dx", e.Count)
	}
	return fmt.Sprintf("%4s (%d) %s", count, e.Card.Cost, rarityColor(e.Card.Rarity).Sprint(e.Card.Name))
}

func rarityColor(r cards.Rarity) *color.Color {
	switch r {
	case cards.RarityLegendary:
		return color.New(color.FgYellow)
	case cards.RarityEpic:
		return color.New(color.FgMagenta)
	case cards.RarityRare:
		return color.New(color.FgBlue)
	default:
		return color.New(color.Reset)
	}
}

func sortedEntries(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Card.Cost != out[j].Card.Cost {
			return out[i].Card.Cost < out[j].Card.Cost
		}
		return out[i].Card.Name < out[j].Card.Name
	})
	return out
}
