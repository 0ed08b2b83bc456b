package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

var artClient = &http.Client{Timeout: 10 * time.Second}

// FetchArt downloads a card's art and scales it to the given width,
// preserving aspect ratio. Width <= 0 keeps the original size.
func FetchArt(ctx context.Context, url string, width int) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := artClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card art fetch returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding card art: %w", err)
	}
	if width > 0 {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return img, nil
}

// EncodePNG serializes an image for HTTP responses and file output.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
