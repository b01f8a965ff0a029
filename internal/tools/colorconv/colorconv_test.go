package colorconv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Color
	}{
		{input: "#3b82f6", want: Color{Hex: "#3b82f6", RGB: RGB{59, 130, 246}, HSL: HSL{217, 91, 60}}},
		{input: "3B82F6", want: Color{Hex: "#3b82f6", RGB: RGB{59, 130, 246}, HSL: HSL{217, 91, 60}}},
		{input: "#fff", want: Color{Hex: "#ffffff", RGB: RGB{255, 255, 255}, HSL: HSL{0, 0, 100}}},
		{input: "#000000", want: Color{Hex: "#000000", RGB: RGB{0, 0, 0}, HSL: HSL{0, 0, 0}}},
		{input: "#ff0000", want: Color{Hex: "#ff0000", RGB: RGB{255, 0, 0}, HSL: HSL{0, 100, 50}}},
	}
	for _, tc := range tests {
		got, err := ParseHex(tc.input)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", tc.input, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParseHex(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseHexRejectsInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12345", "#gggggg", "#3b82f6ff", "blue"} {
		if _, err := ParseHex(input); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidColor", input, err)
		}
	}
}

func TestFromRGB(t *testing.T) {
	t.Parallel()

	got, err := FromRGB(59, 130, 246)
	if err != nil {
		t.Fatalf("FromRGB() error = %v", err)
	}
	if got.Hex != "#3b82f6" || got.HSL != (HSL{217, 91, 60}) {
		t.Fatalf("FromRGB() = %+v", got)
	}
	if _, err := FromRGB(256, 0, 0); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("FromRGB(256) error = %v, want ErrInvalidColor", err)
	}
}

func TestFromHSL(t *testing.T) {
	t.Parallel()

	got, err := FromHSL(120, 100, 50)
	if err != nil {
		t.Fatalf("FromHSL() error = %v", err)
	}
	if got.Hex != "#00ff00" || got.RGB != (RGB{0, 255, 0}) {
		t.Fatalf("FromHSL() = %+v", got)
	}
	if _, err := FromHSL(0, 101, 50); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("FromHSL(s=101) error = %v, want ErrInvalidColor", err)
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	c := Default()
	if got := c.RGB.String(); got != "rgb(59, 130, 246)" {
		t.Fatalf("RGB.String() = %q", got)
	}
	if got := c.HSL.String(); got != "hsl(217, 91%, 60%)" {
		t.Fatalf("HSL.String() = %q", got)
	}
}
