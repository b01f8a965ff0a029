// Package qrcode renders text as PNG QR codes.
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	skipqr "github.com/skip2/go-qrcode"
)

const (
	MinSize     = 128
	MaxSize     = 512
	SizeStep    = 64
	DefaultSize = 256
)

// ErrEmptyContent reports a request with nothing to encode.
var ErrEmptyContent = errors.New("qr content is required")

// Sizes lists the selectable pixel sizes.
func Sizes() []int {
	sizes := make([]int, 0, (MaxSize-MinSize)/SizeStep+1)
	for size := MinSize; size <= MaxSize; size += SizeStep {
		sizes = append(sizes, size)
	}
	return sizes
}

// ParseSize snaps a form value onto the size grid, defaulting to 256.
func ParseSize(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return DefaultSize
	}
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return MinSize + (n-MinSize)/SizeStep*SizeStep
}

// Image is a rendered code.
type Image struct {
	Size int
	PNG  []byte
}

// DataURL returns the PNG as a data: URL for inline display and download.
func (i Image) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

// Render encodes content at medium error correction.
func Render(content string, size int) (Image, error) {
	if content == "" {
		return Image{}, ErrEmptyContent
	}
	if size < MinSize || size > MaxSize {
		return Image{}, fmt.Errorf("size must be between %d and %d, got %d", MinSize, MaxSize, size)
	}
	png, err := skipqr.Encode(content, skipqr.Medium, size)
	if err != nil {
		return Image{}, fmt.Errorf("encode qr code: %w", err)
	}
	return Image{Size: size, PNG: png}, nil
}
