package deckcode

import (
	"encoding/base64"
	"fmt"
	"math"
)

// Encode is the inverse of Decode. The card list is regrouped into the
// single/double/N-copy sections by multiplicity, keeping first-seen order
// within each section; sideboard entries are grouped by owner. An empty
// sideboard omits the trailing section entirely.
func Encode(d RawDeck) (string, error) {
	formatCode, ok := d.Format.Code()
	if !ok {
		return "", fmt.Errorf("format %q has no wire code", d.Format)
	}

	counts := make(map[uint64]int)
	var order []uint64
	for _, id := range d.CardIDs {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var singles, doubles []uint64
	type multi struct {
		id     uint64
		copies int
	}
	var many []multi
	for _, id := range order {
		switch n := counts[id]; n {
		case 1:
			singles = append(singles, id)
		case 2:
			doubles = append(doubles, id)
		default:
			if n > math.MaxUint8 {
				return "", fmt.Errorf("%w: %d copies of card %d", ErrOverflow, n, id)
			}
			many = append(many, multi{id: id, copies: n})
		}
	}

	buf := []byte{0x00, deckstringVersion}
	buf = appendUvarint(buf, formatCode)
	buf = appendUvarint(buf, 1) // hero slot, single entry
	buf = appendUvarint(buf, d.HeroID)

	for _, group := range [][]uint64{singles, doubles} {
		if len(group) > math.MaxUint8 {
			return "", fmt.Errorf("%w: %d cards in copy group", ErrOverflow, len(group))
		}
		buf = appendUvarint(buf, uint64(len(group)))
		for _, id := range group {
			buf = appendUvarint(buf, id)
		}
	}
	if len(many) > math.MaxUint8 {
		return "", fmt.Errorf("%w: %d cards in copy group", ErrOverflow, len(many))
	}
	buf = appendUvarint(buf, uint64(len(many)))
	for _, m := range many {
		buf = appendUvarint(buf, m.id)
		buf = appendUvarint(buf, uint64(m.copies))
	}

	if len(d.Sideboard) > 0 {
		byOwner := make(map[uint64][]SideboardCard)
		var owners []uint64
		for _, sb := range d.Sideboard {
			if len(byOwner[sb.OwnerID]) == 0 {
				owners = append(owners, sb.OwnerID)
			}
			byOwner[sb.OwnerID] = append(byOwner[sb.OwnerID], sb)
		}
		buf = appendUvarint(buf, uint64(len(owners)))
		for _, owner := range owners {
			group := byOwner[owner]
			buf = appendUvarint(buf, uint64(len(group)))
			for _, sb := range group {
				buf = appendUvarint(buf, sb.CardID)
				buf = appendUvarint(buf, sb.OwnerID)
			}
		}
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}
