// Package passgen generates random passwords and rates their strength.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 16
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Options selects length and character classes.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// DefaultOptions enables every class at the default length.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Digits: true, Symbols: true}
}

func (o Options) charset() string {
	var b strings.Builder
	if o.Upper {
		b.WriteString(upperChars)
	}
	if o.Lower {
		b.WriteString(lowerChars)
	}
	if o.Digits {
		b.WriteString(digitChars)
	}
	if o.Symbols {
		b.WriteString(symbolChars)
	}
	if b.Len() == 0 {
		return lowerChars
	}
	return b.String()
}

// Generate draws a password from reader, or crypto/rand when reader is nil.
// With no class selected, lowercase letters are used.
func Generate(opts Options, reader io.Reader) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("length must be between %d and %d, got %d", MinLength, MaxLength, opts.Length)
	}
	if reader == nil {
		reader = rand.Reader
	}
	charset := opts.charset()
	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate random index: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// Strength is a coarse password rating.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
	StrengthVeryStrong
)

// Key is the message key for the rating label.
func (s Strength) Key() string {
	switch s {
	case StrengthWeak:
		return "passgen.strength.weak"
	case StrengthMedium:
		return "passgen.strength.medium"
	case StrengthStrong:
		return "passgen.strength.strong"
	case StrengthVeryStrong:
		return "passgen.strength.very_strong"
	default:
		return ""
	}
}

// Rate scores password one point each for length >= 8, length >= 12, mixed
// case, a digit and a non-alphanumeric character.
func Rate(password string) Strength {
	if password == "" {
		return StrengthNone
	}
	score := 0
	length := len([]rune(password))
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	if hasLower && hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasOther {
		score++
	}
	switch {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	case score == 4:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
