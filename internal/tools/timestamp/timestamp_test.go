package timestamp

import (
	"errors"
	"testing"
	"time"
)

func TestParseUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		unit  Unit
		want  time.Time
	}{
		{input: "1700000000", unit: Seconds, want: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{input: "1700000000000", unit: Milliseconds, want: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{input: " 0 ", unit: Milliseconds, want: time.Unix(0, 0).UTC()},
	}
	for _, tc := range tests {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tc.input, err)
		}
		if got.Unit != tc.unit || !got.Time.Equal(tc.want) {
			t.Fatalf("Parse(%q) = %v %s, want %v %s", tc.input, got.Time, got.Unit, tc.want, tc.unit)
		}
	}
}

func TestParseRejectsNonIntegers(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "abc", "12.5"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidTimestamp", input, err)
		}
	}
}

func TestFormatInZone(t *testing.T) {
	t.Parallel()

	got, err := Format("1700000000", LoadZone("Asia/Shanghai"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := "2023-11-15 06:13:20"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2023-11-15T06:13", LoadZone("Asia/Shanghai"))
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Seconds != 1699999980 || got.Milliseconds != 1699999980000 {
		t.Fatalf("ParseDate() = %+v", got)
	}
	if _, err := ParseDate("yesterday", time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("ParseDate(yesterday) error = %v, want ErrInvalidDate", err)
	}
}

func TestLoadZoneFallsBackToUTC(t *testing.T) {
	t.Parallel()

	if got := LoadZone("Mars/Olympus"); got != time.UTC {
		t.Fatalf("LoadZone(unknown) = %v, want UTC", got)
	}
}
