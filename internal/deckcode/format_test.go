package deckcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCodes(t *testing.T) {
	for code, format := range formatCodes {
		got, ok := format.Code()
		require.True(t, ok, "format %q", format)
		assert.Equal(t, code, got)
		assert.False(t, format.Custom())
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatStandard, ParseFormat(" Standard "))
	assert.Equal(t, FormatTwist, ParseFormat("TWIST"))

	custom := ParseFormat("Tavern Brawl")
	assert.Equal(t, Format("tavern brawl"), custom)
	assert.True(t, custom.Custom())
	_, ok := custom.Code()
	assert.False(t, ok)
}
