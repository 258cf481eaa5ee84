package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolsite/pkg/qrcode"
)

func TestPNG(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "  \n\t"} {
			img, err := qrcode.PNG(in)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, img)
		}
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.PNG("https://tools.example.com/es/json-to-csv")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dy())
	})

	t.Run("custom size and colors", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.PNG("https://tools.example.com/",
			qrcode.WithSize(300),
			qrcode.WithHighRecovery(),
			qrcode.WithoutBorder(),
			qrcode.WithColors(color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}, nil),
		)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.PNG(strings.Repeat("x", 8000))
		assert.ErrorIs(t, err, qrcode.ErrGenerate)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.DataURI("https://tools.example.com/ja/regex-tester", qrcode.WithSize(128))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.DataURI("")
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
