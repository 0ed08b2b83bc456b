// Package deckcode implements the deck code wire format: a base64 blob
// holding a varint-encoded deck layout (format, hero, card multiplicities,
// sideboards). Decoding is a pure transform; card names and metadata are a
// separate concern.
package deckcode

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// The layout reserves two header bytes and a one-byte slot between the
// format and hero fields. Offsets 2 and 4 are fixed by the upstream format:
// the preceding fields are exactly one byte each in practice, so these are
// protocol constants, not derivable from the stream.
const (
	formatOffset = 2
	heroOffset   = 4

	// minDecodedLen is the shortest prefix that can hold the header,
	// format, and hero fields.
	minDecodedLen = 5

	deckstringVersion = 1
)

// SideboardCard ties one card to the main-deck card that owns its
// sideboard.
type SideboardCard struct {
	CardID  uint64 `json:"card_id"`
	OwnerID uint64 `json:"owner_id"`
}

// RawDeck is the decoded skeleton of a deck code: ids only, duplicates in
// CardIDs represent copies. Hydration against card metadata happens
// elsewhere.
type RawDeck struct {
	Format    Format          `json:"format"`
	HeroID    uint64          `json:"hero_id"`
	CardIDs   []uint64        `json:"card_ids"`
	Sideboard []SideboardCard `json:"sideboard,omitempty"`
}

// Decode parses a deck code. Padding is optional on the base64 input. A
// missing sideboard section is equivalent to an empty one.
func Decode(code string) (RawDeck, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(code), "=")
	raw, err := base64.RawStdEncoding.DecodeString(trimmed)
	if err != nil {
		return RawDeck{}, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	if len(raw) < minDecodedLen {
		return RawDeck{}, ErrTruncated
	}
	cur := &cursor{buf: raw}

	cur.seek(formatOffset)
	formatCode, err := cur.readUvarint()
	if err != nil {
		return RawDeck{}, err
	}
	format, ok := formatFromCode(formatCode)
	if !ok {
		return RawDeck{}, &UnsupportedFormatError{Code: formatCode}
	}

	cur.seek(heroOffset)
	heroID, err := cur.readUvarint()
	if err != nil {
		return RawDeck{}, err
	}

	deck := RawDeck{Format: format, HeroID: heroID}

	// Single-copy section.
	n, err := cur.readCount()
	if err != nil {
		return RawDeck{}, err
	}
	for i := 0; i < n; i++ {
		id, err := cur.readUvarint()
		if err != nil {
			return RawDeck{}, err
		}
		deck.CardIDs = append(deck.CardIDs, id)
	}

	// Double-copy section.
	n, err = cur.readCount()
	if err != nil {
		return RawDeck{}, err
	}
	for i := 0; i < n; i++ {
		id, err := cur.readUvarint()
		if err != nil {
			return RawDeck{}, err
		}
		deck.CardIDs = append(deck.CardIDs, id, id)
	}

	// N-copy section: (card id, copy count) pairs.
	n, err = cur.readCount()
	if err != nil {
		return RawDeck{}, err
	}
	for i := 0; i < n; i++ {
		id, err := cur.readUvarint()
		if err != nil {
			return RawDeck{}, err
		}
		copies, err := cur.readCount()
		if err != nil {
			return RawDeck{}, err
		}
		for j := 0; j < copies; j++ {
			deck.CardIDs = append(deck.CardIDs, id)
		}
	}

	// Optional trailing sideboard section.
	if cur.remaining() > 0 {
		groups, err := cur.readCount()
		if err != nil {
			return RawDeck{}, err
		}
		for g := 0; g < groups; g++ {
			members, err := cur.readCount()
			if err != nil {
				return RawDeck{}, err
			}
			for m := 0; m < members; m++ {
				cardID, err := cur.readUvarint()
				if err != nil {
					return RawDeck{}, err
				}
				ownerID, err := cur.readUvarint()
				if err != nil {
					return RawDeck{}, err
				}
				deck.Sideboard = append(deck.Sideboard, SideboardCard{CardID: cardID, OwnerID: ownerID})
			}
		}
	}

	return deck, nil
}
