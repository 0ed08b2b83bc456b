package imagepkg

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG returns PNG bytes of a QR code carrying the deck code, so a deck
// can be shared by scanning instead of pasting.
func QRPNG(deckCode string, size int) ([]byte, error) {
	if size <= 0 {
		size = 400
	}
	return qrcode.Encode(deckCode, qrcode.Medium, size)
}
