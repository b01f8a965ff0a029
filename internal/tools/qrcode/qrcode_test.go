package qrcode

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderProducesSizedPNG(t *testing.T) {
	t.Parallel()

	img, err := Render("https://example.com", 256)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := decoded.Bounds().Dx(); got != 256 {
		t.Fatalf("width = %d, want 256", got)
	}
	if !strings.HasPrefix(img.DataURL(), "data:image/png;base64,") {
		t.Fatalf("DataURL() = %q", img.DataURL()[:32])
	}
}

func TestRenderRejectsInput(t *testing.T) {
	t.Parallel()

	if _, err := Render("", DefaultSize); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("Render(empty) error = %v, want ErrEmptyContent", err)
	}
	if _, err := Render("x", 64); err == nil {
		t.Fatal("expected error for size below minimum")
	}
}

func TestSizes(t *testing.T) {
	t.Parallel()

	want := []int{128, 192, 256, 320, 384, 448, 512}
	if diff := cmp.Diff(want, Sizes()); diff != "" {
		t.Fatalf("Sizes() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := map[string]int{"": 256, "x": 256, "100": 128, "300": 256, "320": 320, "900": 512}
	for value, want := range tests {
		if got := ParseSize(value); got != want {
			t.Fatalf("ParseSize(%q) = %d, want %d", value, got, want)
		}
	}
}
