package deckcode

import "math"

// cursor is a read offset over a decoded deck code buffer. Reads advance the
// offset; seek repositions it absolutely for the fixed header slots.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) seek(off int) { c.off = off }

func (c *cursor) remaining() int { return len(c.buf) - c.off }

// readUvarint decodes one unsigned base-128 varint: the low 7 bits of each
// byte are data, the high bit flags continuation, least significant group
// first. Returns ErrTruncated if the buffer ends before a terminating byte.
func (c *cursor) readUvarint() (uint64, error) {
	var v uint64
	var shift uint
	for {
		if c.off >= len(c.buf) {
			return 0, ErrTruncated
		}
		b := c.buf[c.off]
		c.off++
		if shift > 63 || (shift == 63 && b&0x7f > 1) {
			return 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}

// readCount reads a varint into the byte-wide count fields of the card
// group sections.
func (c *cursor) readCount() (int, error) {
	v, err := c.readUvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, ErrOverflow
	}
	return int(v), nil
}

// appendUvarint is the encoding half, used by Encode and as the round-trip
// oracle in tests.
func appendUvarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}
