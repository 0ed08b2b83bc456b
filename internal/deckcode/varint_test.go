package deckcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	for v := uint64(0); v < 1<<21; v++ {
		cur := &cursor{buf: appendUvarint(nil, v)}
		got, err := cur.readUvarint()
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d, got %d", v, got)
		}
		if cur.remaining() != 0 {
			t.Fatalf("decode %d left %d bytes", v, cur.remaining())
		}
	}
}

func TestUvarintBoundaries(t *testing.T) {
	for _, v := range []uint64{127, 128, 16383, 16384, 1<<63 - 1, 1 << 63, ^uint64(0)} {
		cur := &cursor{buf: appendUvarint(nil, v)}
		got, err := cur.readUvarint()
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got)
	}
}

func TestUvarintTruncated(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x80}, {0xff, 0xff}} {
		cur := &cursor{buf: buf}
		_, err := cur.readUvarint()
		assert.ErrorIs(t, err, ErrTruncated, "buf %v", buf)
	}
}

func TestUvarintOverflow(t *testing.T) {
	// Eleven continuation bytes push past 64 bits.
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	cur := &cursor{buf: buf}
	_, err := cur.readUvarint()
	assert.ErrorIs(t, err, ErrOverflow)

	// Ten bytes whose final group exceeds the top bit also overflow.
	buf = []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	cur = &cursor{buf: buf}
	_, err = cur.readUvarint()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestReadCount(t *testing.T) {
	cur := &cursor{buf: appendUvarint(nil, 255)}
	n, err := cur.readCount()
	require.NoError(t, err)
	assert.Equal(t, 255, n)

	cur = &cursor{buf: appendUvarint(nil, 256)}
	_, err = cur.readCount()
	assert.True(t, errors.Is(err, ErrOverflow))
}
