// Package jsonfmt validates, pretty-prints and compacts JSON documents.
package jsonfmt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrInvalidJSON reports input that is not a single valid JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")

// Indent selects the pretty-print indentation.
type Indent string

const (
	IndentTwo  Indent = "2"
	IndentFour Indent = "4"
	IndentTab  Indent = "tab"
)

// Indents lists the supported indents in display order.
func Indents() []Indent {
	return []Indent{IndentTwo, IndentFour, IndentTab}
}

// ParseIndent maps a form value to an Indent, defaulting to two spaces.
func ParseIndent(value string) Indent {
	switch Indent(strings.TrimSpace(value)) {
	case IndentFour:
		return IndentFour
	case IndentTab:
		return IndentTab
	default:
		return IndentTwo
	}
}

func (i Indent) text() string {
	switch i {
	case IndentFour:
		return "    "
	case IndentTab:
		return "\t"
	default:
		return "  "
	}
}

// Validate returns ErrInvalidJSON when input is not valid JSON.
func Validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("%w: input is empty", ErrInvalidJSON)
	}
	if !gjson.Valid(input) {
		return ErrInvalidJSON
	}
	return nil
}

// Format pretty-prints input with one element per line.
func Format(input string, indent Indent) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}
	out := pretty.PrettyOptions([]byte(input), &pretty.Options{
		Indent: indent.text(),
	})
	return string(bytes.TrimRight(out, "\n")), nil
}

// Compress removes all insignificant whitespace.
func Compress(input string) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}
	return string(pretty.Ugly([]byte(input))), nil
}
