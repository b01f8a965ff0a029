package uuidgen

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateVersion4(t *testing.T) {
	t.Parallel()

	for _, n := range Counts {
		ids, err := Generate(n, nil)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", n, err)
		}
		if len(ids) != n {
			t.Fatalf("Generate(%d) returned %d ids", n, len(ids))
		}
		seen := make(map[string]bool, n)
		for _, id := range ids {
			parsed, err := uuid.Parse(id)
			if err != nil {
				t.Fatalf("uuid.Parse(%q) error = %v", id, err)
			}
			if parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
				t.Fatalf("id %q version %d variant %v", id, parsed.Version(), parsed.Variant())
			}
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	}
}

func TestGenerateFromReader(t *testing.T) {
	t.Parallel()

	ids, err := Generate(1, bytes.NewReader(make([]byte, 16)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if want := "00000000-0000-4000-8000-000000000000"; ids[0] != want {
		t.Fatalf("Generate() = %q, want %q", ids[0], want)
	}
}

func TestGenerateRejectsBadCounts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, MaxCount + 1} {
		if _, err := Generate(n, nil); err == nil {
			t.Fatalf("Generate(%d) expected error", n)
		}
	}
	if _, err := Generate(2, bytes.NewReader(make([]byte, 16))); err == nil {
		t.Fatal("expected error for short reader")
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := map[string]int{"": 1, "5": 5, "50": 50, "500": MaxCount, "-3": 1, "x": 1}
	for value, want := range tests {
		if got := ParseCount(value); got != want {
			t.Fatalf("ParseCount(%q) = %d, want %d", value, got, want)
		}
	}
}

func TestUppercase(t *testing.T) {
	t.Parallel()

	got := Uppercase([]string{"abc-def"})
	if got[0] != "ABC-DEF" {
		t.Fatalf("Uppercase() = %v", got)
	}
}
