// Package i18n defines the closed set of locales the toolbox supports.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one supported display language.
type Locale string

const (
	// Chinese is Simplified Chinese, the default locale.
	Chinese Locale = "zh"
	// English is the secondary locale.
	English Locale = "en"
)

// DefaultLocale is used when no other source names a supported locale.
const DefaultLocale = Chinese

var supported = []Locale{Chinese, English}

var supportedTags = []language.Tag{language.Chinese, language.English}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the supported locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether locale is in the supported set.
func IsSupported(locale Locale) bool {
	for _, candidate := range supported {
		if candidate == locale {
			return true
		}
	}
	return false
}

// Parse normalizes value ("zh", "EN", "zh-CN") to a supported locale.
func Parse(value string) (Locale, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	candidate := Locale(strings.ToLower(trimmed))
	if IsSupported(candidate) {
		return candidate, true
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	candidate = Locale(base.String())
	if IsSupported(candidate) {
		return candidate, true
	}
	return "", false
}

// Normalize returns the supported locale for value, or fallback.
func Normalize(value string, fallback Locale) Locale {
	if locale, ok := Parse(value); ok {
		return locale
	}
	if IsSupported(fallback) {
		return fallback
	}
	return DefaultLocale
}

// MatchAcceptLanguage picks a supported locale from an Accept-Language
// header. It reports false when no listed language is supported.
func MatchAcceptLanguage(header string) (Locale, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence < language.High {
		return "", false
	}
	return supported[index], true
}

// Tag returns the BCP 47 tag for locale.
func (l Locale) Tag() language.Tag {
	for i, candidate := range supported {
		if candidate == l {
			return supportedTags[i]
		}
	}
	return language.Chinese
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// LooksLikeLanguage reports whether a path segment is shaped like a language
// code (two or three ASCII letters), supported or not.
func LooksLikeLanguage(segment string) bool {
	if len(segment) < 2 || len(segment) > 3 {
		return false
	}
	for _, r := range segment {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
