package deck

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/hearthdeck/internal/cards"
	"github.com/youruser/hearthdeck/internal/deckcode"
)

func testTable() cards.Static {
	return cards.Static{
		930: {ID: 930, Name: "Valeera Sanguinar", Class: cards.ClassRogue, Type: "Hero"},
		100: {ID: 100, Name: "Backstab", Class: cards.ClassRogue, Cost: 0, Rarity: cards.RarityFree},
		200: {ID: 200, Name: "Shiv", Class: cards.ClassRogue, Cost: 2, Rarity: cards.RarityCommon},
		201: {ID: 201, Name: "Shiv (Core)", Class: cards.ClassRogue, Cost: 2, CanonicalID: 200},
		300: {ID: 300, Name: "E.T.C., Band Manager", Class: cards.ClassNeutral, Cost: 4, Rarity: cards.RarityLegendary},
		301: {ID: 301, Name: "Lor'themar Theron", Class: cards.ClassNeutral, Cost: 7, Rarity: cards.RarityLegendary},
	}
}

func TestBuildHydratesAndMergesReprints(t *testing.T) {
	raw := deckcode.RawDeck{
		Format:  deckcode.FormatWild,
		HeroID:  930,
		CardIDs: []uint64{100, 200, 201, 777},
		Sideboard: []deckcode.SideboardCard{
			{CardID: 301, OwnerID: 300},
		},
	}
	d := Build("AAEC", raw, testTable())

	assert.Equal(t, deckcode.FormatWild, d.Format)
	assert.Equal(t, "Valeera Sanguinar", d.Hero.Name)
	assert.Equal(t, cards.ClassRogue, d.Class)

	// 201 counts as a copy of 200, so the two merge into one entry.
	require.Len(t, d.Cards, 2)
	assert.Equal(t, "Backstab", d.Cards[0].Card.Name)
	assert.Equal(t, 1, d.Cards[0].Count)
	assert.Equal(t, "Shiv", d.Cards[1].Card.Name)
	assert.Equal(t, 2, d.Cards[1].Count)

	// Id 777 has no metadata and is reported, not dropped silently.
	assert.Equal(t, []uint64{777}, d.UnknownIDs)

	require.Len(t, d.Sideboards, 1)
	assert.Equal(t, "E.T.C., Band Manager", d.Sideboards[0].Owner.Name)
	require.Len(t, d.Sideboards[0].Cards, 1)
	assert.Equal(t, "Lor'themar Theron", d.Sideboards[0].Cards[0].Card.Name)
}

func TestBuildUnknownHero(t *testing.T) {
	d := Build("AAEC", deckcode.RawDeck{Format: deckcode.FormatStandard, HeroID: 5}, testTable())
	assert.Equal(t, uint64(5), d.Hero.ID)
	assert.Equal(t, cards.Class(""), d.Class)
	assert.Equal(t, []uint64{5}, d.UnknownIDs)
}

func TestFromPasted(t *testing.T) {
	code, err := deckcode.Encode(deckcode.RawDeck{
		Format:  deckcode.FormatStandard,
		HeroID:  930,
		CardIDs: []uint64{100, 200, 200},
	})
	require.NoError(t, err)

	text := "### Tempo Rogue\n# Class: Rogue\n" + code + "\n# comment"
	d, err := FromPasted(text, "", testTable())
	require.NoError(t, err)
	assert.Equal(t, "Tempo Rogue", d.Title)
	assert.Equal(t, deckcode.FormatStandard, d.Format)
	assert.Equal(t, code, d.Code)
	require.Len(t, d.Cards, 2)

	// Mode override replaces the decoded format, including custom modes.
	d, err = FromPasted(text, "Twist", testTable())
	require.NoError(t, err)
	assert.Equal(t, deckcode.FormatTwist, d.Format)

	d, err = FromPasted(text, "duels", testTable())
	require.NoError(t, err)
	assert.True(t, d.Format.Custom())
}

func TestFromPastedDecodeFailure(t *testing.T) {
	_, err := FromPasted("not a deck at all", "", testTable())
	assert.ErrorIs(t, err, deckcode.ErrMalformedBase64)
}

func TestRender(t *testing.T) {
	raw := deckcode.RawDeck{
		Format:  deckcode.FormatWild,
		HeroID:  930,
		CardIDs: []uint64{200, 200, 100},
		Sideboard: []deckcode.SideboardCard{
			{CardID: 301, OwnerID: 300},
		},
	}
	d := Build("AAECmock", raw, testTable())
	d.Title = "Test Deck"

	var buf bytes.Buffer
	Render(&buf, d)
	out := buf.String()

	assert.Contains(t, out, "Test Deck")
	assert.Contains(t, out, "WILD")
	assert.Contains(t, out, "Rogue deck.")
	assert.Contains(t, out, "Backstab")
	assert.Contains(t, out, "2x")
	assert.Contains(t, out, "Sideboard of E.T.C., Band Manager:")
	assert.Contains(t, out, "AAECmock")

	// Cost order: Backstab (0) before Shiv (2).
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Backstab")), bytes.Index(buf.Bytes(), []byte("Shiv")))
}
