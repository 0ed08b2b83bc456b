// Package deck assembles decoded deck skeletons into displayable decks by
// resolving card ids against the catalog.
package deck

import (
	"github.com/youruser/hearthdeck/internal/cards"
	"github.com/youruser/hearthdeck/internal/deckcode"
)

// Entry is a card with its copy count.
type Entry struct {
	Card  cards.Card `json:"card"`
	Count int        `json:"count"`
}

// Sideboard is the pool of cards tied to one main-deck card.
type Sideboard struct {
	Owner cards.Card `json:"owner"`
	Cards []Entry    `json:"cards"`
}

type Deck struct {
	Code       string          `json:"code"`
	Title      string          `json:"title,omitempty"`
	Format     deckcode.Format `json:"format"`
	Hero       cards.Card      `json:"hero"`
	Class      cards.Class     `json:"class"`
	Cards      []Entry         `json:"cards"`
	Sideboards []Sideboard     `json:"sideboards,omitempty"`

	// UnknownIDs are ids the catalog could not resolve, kept so callers
	// can report them instead of silently shrinking the deck.
	UnknownIDs []uint64 `json:"unknown_ids,omitempty"`
}

// Build hydrates a decoded skeleton against the card table. Ids are
// normalized before lookup so reprints collapse onto one entry; entries
// keep first-seen order.
func Build(code string, raw deckcode.RawDeck, tbl cards.Table) Deck {
	d := Deck{Code: code, Format: raw.Format}

	if hero, ok := lookup(tbl, raw.HeroID); ok {
		d.Hero = hero
		d.Class = hero.Class
	} else {
		d.Hero = cards.Card{ID: raw.HeroID}
		d.UnknownIDs = append(d.UnknownIDs, raw.HeroID)
	}

	index := make(map[uint64]int)
	for _, rawID := range raw.CardIDs {
		id := cards.Normalize(rawID, tbl)
		if i, ok := index[id]; ok {
			d.Cards[i].Count++
			continue
		}
		c, ok := lookup(tbl, id)
		if !ok {
			d.UnknownIDs = append(d.UnknownIDs, rawID)
			continue
		}
		index[id] = len(d.Cards)
		d.Cards = append(d.Cards, Entry{Card: c, Count: 1})
	}

	sbIndex := make(map[uint64]int)
	for _, sb := range raw.Sideboard {
		gi, ok := sbIndex[sb.OwnerID]
		if !ok {
			owner, found := lookup(tbl, sb.OwnerID)
			if !found {
				owner = cards.Card{ID: sb.OwnerID}
				d.UnknownIDs = append(d.UnknownIDs, sb.OwnerID)
			}
			gi = len(d.Sideboards)
			sbIndex[sb.OwnerID] = gi
			d.Sideboards = append(d.Sideboards, Sideboard{Owner: owner})
		}
		id := cards.Normalize(sb.CardID, tbl)
		c, found := lookup(tbl, id)
		if !found {
			d.UnknownIDs = append(d.UnknownIDs, sb.CardID)
			continue
		}
		group := &d.Sideboards[gi]
		merged := false
		for i := range group.Cards {
			if group.Cards[i].Card.ID == c.ID {
				group.Cards[i].Count++
				merged = true
				break
			}
		}
		if !merged {
			group.Cards = append(group.Cards, Entry{Card: c, Count: 1})
		}
	}

	return d
}

// FromPasted runs the whole pipeline on clipboard text: title/code
// extraction, decoding, optional format override, hydration.
func FromPasted(text, modeOverride string, tbl cards.Table) (Deck, error) {
	title, code := deckcode.ExtractTitleAndCode(text)
	raw, err := deckcode.Decode(code)
	if err != nil {
		return Deck{}, err
	}
	if modeOverride != "" {
		raw.Format = deckcode.ParseFormat(modeOverride)
	}
	d := Build(code, raw, tbl)
	d.Title = title
	return d, nil
}

func lookup(tbl cards.Table, id uint64) (cards.Card, bool) {
	if tbl == nil {
		return cards.Card{}, false
	}
	return tbl.Lookup(id)
}
