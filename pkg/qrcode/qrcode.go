// Package qrcode renders the "share this page" QR badge embedded in tool
// pages. The badge encodes the canonical page URL, never user input.
package qrcode

import (
	"encoding/base64"
	"errors"
	"image/color"
	"strings"

	skip "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	ErrGenerate     = errors.New("qrcode: failed to generate")
)

const DefaultSize = 160

type options struct {
	size       int
	level      skip.RecoveryLevel
	foreground color.Color
	background color.Color
	border     bool
}

type Option func(*options)

// WithSize sets the image edge in pixels. Non-positive values keep DefaultSize.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithHighRecovery trades density for resilience to print damage.
func WithHighRecovery() Option {
	return func(o *options) { o.level = skip.High }
}

func WithColors(fg, bg color.Color) Option {
	return func(o *options) {
		if fg != nil {
			o.foreground = fg
		}
		if bg != nil {
			o.background = bg
		}
	}
}

func WithoutBorder() Option {
	return func(o *options) { o.border = false }
}

// PNG encodes content as a PNG image.
func PNG(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	o := options{
		size:       DefaultSize,
		level:      skip.Medium,
		foreground: color.Black,
		background: color.White,
		border:     true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	q, err := skip.New(content, o.level)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	q.ForegroundColor = o.foreground
	q.BackgroundColor = o.background
	q.DisableBorder = !o.border

	img, err := q.PNG(o.size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return img, nil
}

// DataURI returns the PNG as a data: URI suitable for an img src.
func DataURI(content string, opts ...Option) (string, error) {
	img, err := PNG(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}
