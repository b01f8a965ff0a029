// Package urlcodec percent-encodes text the way browsers encode a URI
// component.
package urlcodec

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput reports malformed percent-encoding.
var ErrInvalidInput = errors.New("invalid percent-encoded input")

// url.QueryEscape escapes a few characters that URI components leave as is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Encode escapes everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ).
func Encode(text string) string {
	return componentUnescaper.Replace(url.QueryEscape(text))
}

// Decode reverses Encode. A plus sign is kept literally.
func Decode(encoded string) (string, error) {
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("%w: decoded bytes are not UTF-8 text", ErrInvalidInput)
	}
	return decoded, nil
}
