package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/icons"
)

// CategoryDecl declares a category with its icon by name.
type CategoryDecl struct {
	ID      string
	Icon    string
	Order   int
	Enabled bool
}

// ToolDecl declares a tool with its icon by name.
type ToolDecl struct {
	ID           string
	CategoryID   string
	Enabled      bool
	Featured     bool
	Order        int
	Icon         string
	SEO          SEO
	Translations map[i18n.Locale]SEO
}

// Declarations is the raw configuration before icon resolution.
type Declarations struct {
	Site       Site
	Categories []CategoryDecl
	Toggles    []CategoryToggle
	Tools      []ToolDecl
}

// Load resolves and validates the built-in declarations.
func Load() (*Store, error) {
	return LoadFrom(Default())
}

// LoadFrom resolves icon names and validates decl.
func LoadFrom(decl Declarations) (*Store, error) {
	var errs []error

	site := decl.Site.clone()
	if strings.TrimSpace(site.Name) == "" {
		errs = append(errs, errors.New("site name is required"))
	}
	if site.DefaultLocale == "" {
		site.DefaultLocale = i18n.DefaultLocale
	}
	if !i18n.IsSupported(site.DefaultLocale) {
		errs = append(errs, fmt.Errorf("site default locale %q is not supported", site.DefaultLocale))
	}

	categories := make([]Category, 0, len(decl.Categories))
	categoryIDs := make(map[string]struct{}, len(decl.Categories))
	for _, raw := range decl.Categories {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			errs = append(errs, errors.New("category id is required"))
			continue
		}
		if _, dup := categoryIDs[id]; dup {
			errs = append(errs, fmt.Errorf("category %q declared twice", id))
			continue
		}
		categoryIDs[id] = struct{}{}
		icon, err := icons.Parse(raw.Icon)
		if err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", id, err))
		}
		categories = append(categories, Category{
			ID:             id,
			TranslationKey: "categories." + id,
			Icon:           icon,
			Order:          raw.Order,
			Enabled:        raw.Enabled,
		})
	}

	toggles := make([]CategoryToggle, 0, len(decl.Toggles))
	toggleIDs := make(map[string]struct{}, len(decl.Toggles))
	for _, toggle := range decl.Toggles {
		if _, ok := categoryIDs[toggle.ID]; !ok {
			errs = append(errs, fmt.Errorf("allowlist names unknown category %q", toggle.ID))
			continue
		}
		if _, dup := toggleIDs[toggle.ID]; dup {
			errs = append(errs, fmt.Errorf("allowlist names category %q twice", toggle.ID))
			continue
		}
		toggleIDs[toggle.ID] = struct{}{}
		toggles = append(toggles, toggle)
	}

	tools := make([]Tool, 0, len(decl.Tools))
	toolIDs := make(map[string]struct{}, len(decl.Tools))
	for _, raw := range decl.Tools {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			errs = append(errs, errors.New("tool id is required"))
			continue
		}
		if _, dup := toolIDs[id]; dup {
			errs = append(errs, fmt.Errorf("tool %q declared twice", id))
			continue
		}
		toolIDs[id] = struct{}{}
		if _, ok := categoryIDs[raw.CategoryID]; !ok {
			errs = append(errs, fmt.Errorf("tool %q references unknown category %q", id, raw.CategoryID))
		}
		if want := ToolPath(raw.CategoryID, id); raw.SEO.Path != want {
			errs = append(errs, fmt.Errorf("tool %q path %q, want %q", id, raw.SEO.Path, want))
		}
		for locale := range raw.Translations {
			if !i18n.IsSupported(locale) {
				errs = append(errs, fmt.Errorf("tool %q translation for unsupported locale %q", id, locale))
			}
		}
		icon, err := icons.Parse(raw.Icon)
		if err != nil {
			errs = append(errs, fmt.Errorf("tool %q: %w", id, err))
		}
		tool := Tool{
			ID:           id,
			CategoryID:   raw.CategoryID,
			Enabled:      raw.Enabled,
			Featured:     raw.Featured,
			Order:        raw.Order,
			Icon:         icon,
			SEO:          raw.SEO,
			Translations: raw.Translations,
		}
		tools = append(tools, tool.clone())
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Store{site: site, categories: categories, toggles: toggles, tools: tools}, nil
}

// ToolPath is the unprefixed route of a tool page.
func ToolPath(categoryID, toolID string) string {
	return "/tools/" + categoryID + "/" + toolID
}
