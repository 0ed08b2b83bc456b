package imagepkg

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPNG(t *testing.T) {
	b, err := QRPNG("AAECAQcGxwPJBLsFmQfZB/gH", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestFetchArt(t *testing.T) {
	art := imaging.New(128, 192, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	var artPNG bytes.Buffer
	require.NoError(t, EncodePNG(&artPNG, art))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(artPNG.Bytes())
	}))
	t.Cleanup(srv.Close)

	img, err := FetchArt(context.Background(), srv.URL, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestFetchArtBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, err := FetchArt(context.Background(), srv.URL, 0)
	assert.Error(t, err)
}
