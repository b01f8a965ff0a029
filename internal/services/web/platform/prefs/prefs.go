package prefs

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxRecent bounds the recent searches and recent tools lists.
const MaxRecent = 10

// Theme is the color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type themeState struct {
	Mode Theme `json:"mode"`
}

type searchState struct {
	RecentSearches []string `json:"recentSearches"`
}

func encode(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// decode reports false for absent or unreadable values.
func decode(store Store, key string, target any) bool {
	if store == nil {
		return false
	}
	raw, ok := store.Get(key)
	if !ok {
		return false
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, target) == nil
}

func save(store Store, key string, value any) error {
	if store == nil {
		return fmt.Errorf("preference store is required")
	}
	encoded, err := encode(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(key, encoded); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// ThemeOr returns the stored theme, or fallback when none is stored.
func ThemeOr(store Store, fallback Theme) Theme {
	var state themeState
	if decode(store, KeyTheme, &state) {
		if theme, ok := ParseTheme(string(state.Mode)); ok {
			return theme
		}
	}
	if theme, ok := ParseTheme(string(fallback)); ok {
		return theme
	}
	return ThemeLight
}

// SetTheme stores theme.
func SetTheme(store Store, theme Theme) error {
	if _, ok := ParseTheme(string(theme)); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return save(store, KeyTheme, themeState{Mode: theme})
}

// ToggleTheme flips the stored theme and returns the new value.
func ToggleTheme(store Store, fallback Theme) (Theme, error) {
	next := ThemeOr(store, fallback).Opposite()
	if err := SetTheme(store, next); err != nil {
		return "", err
	}
	return next, nil
}

// Language returns the stored language code.
func Language(store Store) (string, bool) {
	var lang string
	if !decode(store, KeyLanguage, &lang) || strings.TrimSpace(lang) == "" {
		return "", false
	}
	return lang, true
}

// SetLanguage stores a language code.
func SetLanguage(store Store, lang string) error {
	return save(store, KeyLanguage, strings.TrimSpace(lang))
}

// RecentSearches returns stored searches, most recent first.
func RecentSearches(store Store) []string {
	var state searchState
	if !decode(store, KeySearches, &state) {
		return []string{}
	}
	return bounded(state.RecentSearches)
}

// AddRecentSearch moves query to the front of the recent searches.
func AddRecentSearch(store Store, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return save(store, KeySearches, searchState{RecentSearches: pushFront(RecentSearches(store), query)})
}

// ClearRecentSearches removes every recent search.
func ClearRecentSearches(store Store) error {
	return save(store, KeySearches, searchState{RecentSearches: []string{}})
}

// Favorites returns favorite tool ids in the order they were added.
func Favorites(store Store) []string {
	var ids []string
	if !decode(store, KeyFavorites, &ids) {
		return []string{}
	}
	return dedupe(ids)
}

// IsFavorite reports whether toolID is a favorite.
func IsFavorite(store Store, toolID string) bool {
	for _, id := range Favorites(store) {
		if id == toolID {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes toolID and reports whether it is now a
// favorite.
func ToggleFavorite(store Store, toolID string) (bool, error) {
	toolID = strings.TrimSpace(toolID)
	if toolID == "" {
		return false, fmt.Errorf("tool id is required")
	}
	current := Favorites(store)
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == toolID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, toolID)
	}
	if err := save(store, KeyFavorites, next); err != nil {
		return removed, err
	}
	return !removed, nil
}

// RecentTools returns recently used tool ids, most recent first.
func RecentTools(store Store) []string {
	var ids []string
	if !decode(store, KeyRecentTools, &ids) {
		return []string{}
	}
	return bounded(ids)
}

// AddRecentTool moves toolID to the front of the recent tools.
func AddRecentTool(store Store, toolID string) error {
	toolID = strings.TrimSpace(toolID)
	if toolID == "" {
		return nil
	}
	return save(store, KeyRecentTools, pushFront(RecentTools(store), toolID))
}

func pushFront(values []string, value string) []string {
	out := make([]string, 0, MaxRecent)
	out = append(out, value)
	for _, existing := range values {
		if existing == value {
			continue
		}
		if len(out) == MaxRecent {
			break
		}
		out = append(out, existing)
	}
	return out
}

func bounded(values []string) []string {
	out := dedupe(values)
	if len(out) > MaxRecent {
		out = out[:MaxRecent]
	}
	return out
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
