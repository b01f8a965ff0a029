// Package catalog is the static configuration store: the site identity,
// tool categories, the enabled-category allowlist and the tool declarations.
//
// Declarations are plain Go data. Load resolves icon names and validates
// cross references once at startup; the resulting Store is immutable and
// every accessor returns copies.
package catalog

import (
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/icons"
)

// Site describes the toolbox identity shared by every page.
type Site struct {
	Name          string
	ShortName     string
	Description   string
	Keywords      []string
	Author        string
	URL           string
	DefaultLocale i18n.Locale
	DefaultTheme  string
	PrimaryColor  string
	Background    string
}

// Category groups tools on the home and category pages.
type Category struct {
	ID             string
	TranslationKey string
	Icon           icons.ID
	Order          int
	Enabled        bool
}

// CategoryToggle is one allowlist entry. A category is visible only when it
// is enabled itself and appears here enabled.
type CategoryToggle struct {
	ID      string
	Order   int
	Enabled bool
}

// SEO is the search-engine text for one tool page.
type SEO struct {
	Title       string
	Description string
	Keywords    []string
	Path        string
}

// Tool is one utility declaration.
type Tool struct {
	ID         string
	CategoryID string
	Enabled    bool
	Featured   bool
	Order      int
	Icon       icons.ID
	SEO        SEO
	// Translations overrides SEO text per locale. Path is never overridden.
	Translations map[i18n.Locale]SEO
}

// NameKey is the bundle key holding the tool display name.
func (t Tool) NameKey() string {
	return "tools." + t.ID + ".name"
}

// DescriptionKey is the bundle key holding the tool summary.
func (t Tool) DescriptionKey() string {
	return "tools." + t.ID + ".description"
}

// SEOFor returns the SEO text for locale, falling back field by field to the
// default text.
func (t Tool) SEOFor(locale i18n.Locale) SEO {
	base := t.SEO.clone()
	override, ok := t.Translations[locale]
	if !ok {
		return base
	}
	if override.Title != "" {
		base.Title = override.Title
	}
	if override.Description != "" {
		base.Description = override.Description
	}
	if len(override.Keywords) > 0 {
		base.Keywords = append([]string(nil), override.Keywords...)
	}
	return base
}

func (s SEO) clone() SEO {
	s.Keywords = append([]string(nil), s.Keywords...)
	return s
}

func (t Tool) clone() Tool {
	t.SEO = t.SEO.clone()
	if t.Translations != nil {
		translations := make(map[i18n.Locale]SEO, len(t.Translations))
		for locale, seo := range t.Translations {
			translations[locale] = seo.clone()
		}
		t.Translations = translations
	}
	return t
}

func (s Site) clone() Site {
	s.Keywords = append([]string(nil), s.Keywords...)
	return s
}

// Store is the loaded, validated configuration.
type Store struct {
	site       Site
	categories []Category
	toggles    []CategoryToggle
	tools      []Tool
}

// Site returns the site identity.
func (s *Store) Site() Site {
	return s.site.clone()
}

// Categories returns every declared category in declaration order.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Toggles returns the category allowlist in declaration order.
func (s *Store) Toggles() []CategoryToggle {
	out := make([]CategoryToggle, len(s.toggles))
	copy(out, s.toggles)
	return out
}

// Tools returns every declared tool in declaration order, enabled or not.
func (s *Store) Tools() []Tool {
	out := make([]Tool, len(s.tools))
	for i, tool := range s.tools {
		out[i] = tool.clone()
	}
	return out
}
