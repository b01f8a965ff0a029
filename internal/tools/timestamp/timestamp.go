// Package timestamp converts between Unix timestamps and wall-clock dates.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// DisplayLayout is the rendered date format.
const DisplayLayout = "2006-01-02 15:04:05"

// InputLayout matches an HTML datetime-local value.
const InputLayout = "2006-01-02T15:04"

// ErrInvalidTimestamp reports input that is not an integer timestamp.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ErrInvalidDate reports input that is not a recognized date-time.
var ErrInvalidDate = errors.New("invalid date")

// Zones are the selectable display time zones.
var Zones = []string{"Asia/Shanghai", "UTC", "America/New_York", "Europe/London", "Asia/Tokyo"}

// LoadZone returns the named zone, falling back to UTC for unknown names.
func LoadZone(name string) *time.Location {
	for _, zone := range Zones {
		if zone == name {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc
			}
		}
	}
	return time.UTC
}

// Unit is the precision of a parsed timestamp.
type Unit string

const (
	Seconds      Unit = "s"
	Milliseconds Unit = "ms"
)

// Parsed is a timestamp resolved to an instant.
type Parsed struct {
	Time time.Time
	Unit Unit
}

// Parse reads a timestamp. Exactly ten digits are seconds; anything else is
// milliseconds.
func Parse(value string) (Parsed, error) {
	trimmed := strings.TrimSpace(value)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	if len(strconv.FormatInt(n, 10)) == 10 {
		return Parsed{Time: time.Unix(n, 0).UTC(), Unit: Seconds}, nil
	}
	return Parsed{Time: time.UnixMilli(n).UTC(), Unit: Milliseconds}, nil
}

// Format renders a timestamp in loc.
func Format(value string, loc *time.Location) (string, error) {
	parsed, err := Parse(value)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.UTC
	}
	return parsed.Time.In(loc).Format(DisplayLayout), nil
}

// Instant is one moment in both timestamp units.
type Instant struct {
	Seconds      int64
	Milliseconds int64
}

// FromTime converts t.
func FromTime(t time.Time) Instant {
	return Instant{Seconds: t.Unix(), Milliseconds: t.UnixMilli()}
}

// ParseDate reads a datetime-local or display-format value in loc.
func ParseDate(value string, loc *time.Location) (Instant, error) {
	if loc == nil {
		loc = time.UTC
	}
	trimmed := strings.TrimSpace(value)
	for _, layout := range []string{InputLayout, DisplayLayout, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return FromTime(t), nil
		}
	}
	return Instant{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
