// Package base64codec converts UTF-8 text to and from standard Base64.
package base64codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput reports input that is not Base64 of UTF-8 text.
var ErrInvalidInput = errors.New("invalid base64 input")

// Encode returns the standard, padded Base64 encoding of text.
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode reverses Encode. Surrounding and embedded line breaks are ignored.
func Decode(encoded string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, encoded)
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decoded bytes are not UTF-8 text", ErrInvalidInput)
	}
	return string(data), nil
}
