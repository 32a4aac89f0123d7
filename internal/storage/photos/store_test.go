package photos

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/config"
)

func pngDataURL(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSaveInlineWhenBucketUnset(t *testing.T) {
	store := New(&config.Config{})
	dataURL := pngDataURL(t)

	url, err := store.Save(context.Background(), "photo-1", dataURL)
	require.NoError(t, err)
	assert.Equal(t, dataURL, url)
}

func TestSaveRejectsNonImagePayload(t *testing.T) {
	store := New(&config.Config{})

	tests := []struct {
		name    string
		dataURL string
	}{
		{name: "not a data url", dataURL: "https://example.com/foto.png"},
		{name: "wrong media type", dataURL: "data:text/plain;base64,aGVsbG8="},
		{name: "missing base64 marker", dataURL: "data:image/png,plain"},
		{name: "broken base64", dataURL: "data:image/png;base64,!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(context.Background(), "p", tt.dataURL)
			assert.ErrorIs(t, err, ErrInvalidImage)
		})
	}
}

func TestDownscaleKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	got := downscale(img)
	assert.Equal(t, img.Bounds(), got.Bounds())
}

func TestDownscaleShrinksWideImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, maxWidth*2, 800))
	got := downscale(img)
	assert.Equal(t, maxWidth, got.Bounds().Dx())
	assert.Equal(t, 400, got.Bounds().Dy())
}

func TestDecodeDataURL(t *testing.T) {
	raw, err := decodeDataURL(pngDataURL(t))
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
	assert.True(t, strings.HasPrefix(string(raw), "\x89PNG"))
}
