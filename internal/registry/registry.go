// Package registry answers read-only queries over the loaded catalog: which
// tools and categories are visible, in which order, and lookup by id.
package registry

import (
	"sort"
	"strings"

	"github.com/louisbranch/toolbox/internal/catalog"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
)

// Resolver filters and orders catalog entries. Nothing is cached; every call
// derives its answer from the immutable store.
type Resolver struct {
	store *catalog.Store
}

// New builds a resolver over store.
func New(store *catalog.Store) *Resolver {
	return &Resolver{store: store}
}

// ByID returns the tool declared with id, enabled or not.
func (r *Resolver) ByID(id string) (catalog.Tool, bool) {
	if r == nil || r.store == nil {
		return catalog.Tool{}, false
	}
	for _, tool := range r.store.Tools() {
		if tool.ID == id {
			return tool, true
		}
	}
	return catalog.Tool{}, false
}

// EnabledCategories returns categories that are enabled and allowlisted,
// ascending by order.
func (r *Resolver) EnabledCategories() []catalog.Category {
	if r == nil || r.store == nil {
		return []catalog.Category{}
	}
	allowed := r.allowlist()
	out := make([]catalog.Category, 0)
	for _, category := range r.store.Categories() {
		if !category.Enabled {
			continue
		}
		if _, ok := allowed[category.ID]; !ok {
			continue
		}
		out = append(out, category)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// CategoryByID returns id when it is an enabled category.
func (r *Resolver) CategoryByID(id string) (catalog.Category, bool) {
	for _, category := range r.EnabledCategories() {
		if category.ID == id {
			return category, true
		}
	}
	return catalog.Category{}, false
}

// ByCategory returns the enabled tools of categoryID, ascending by order.
// Tools of a category that is not enabled are never returned.
func (r *Resolver) ByCategory(categoryID string) []catalog.Tool {
	if _, ok := r.CategoryByID(categoryID); !ok {
		return []catalog.Tool{}
	}
	return r.filter(func(tool catalog.Tool) bool {
		return tool.CategoryID == categoryID
	})
}

// Featured returns the enabled, featured tools of enabled categories,
// ascending by order.
func (r *Resolver) Featured() []catalog.Tool {
	visible := r.visibleCategories()
	return r.filter(func(tool catalog.Tool) bool {
		_, ok := visible[tool.CategoryID]
		return ok && tool.Featured
	})
}

// Enabled returns every visible tool grouped by category order, then tool
// order.
func (r *Resolver) Enabled() []catalog.Tool {
	out := make([]catalog.Tool, 0)
	for _, category := range r.EnabledCategories() {
		out = append(out, r.ByCategory(category.ID)...)
	}
	return out
}

// IsVisible reports whether tool is enabled and belongs to an enabled
// category.
func (r *Resolver) IsVisible(tool catalog.Tool) bool {
	if !tool.Enabled {
		return false
	}
	_, ok := r.CategoryByID(tool.CategoryID)
	return ok
}

// Translator returns the localized text for a bundle key.
type Translator func(key string) string

// Search returns visible tools whose localized name or SEO text contains
// query, case-insensitively. A blank query returns nothing.
func (r *Resolver) Search(query string, locale i18n.Locale, translate Translator) []catalog.Tool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []catalog.Tool{}
	}
	out := make([]catalog.Tool, 0)
	for _, tool := range r.Enabled() {
		if matches(tool, needle, tool.SEOFor(locale), translate) {
			out = append(out, tool)
		}
	}
	return out
}

func matches(tool catalog.Tool, needle string, text catalog.SEO, translate Translator) bool {
	fields := []string{tool.ID}
	if translate != nil {
		fields = append(fields, translate(tool.NameKey()), translate(tool.DescriptionKey()))
	}
	fields = append(fields, text.Title, text.Description)
	fields = append(fields, text.Keywords...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *Resolver) filter(keep func(catalog.Tool) bool) []catalog.Tool {
	out := make([]catalog.Tool, 0)
	if r == nil || r.store == nil {
		return out
	}
	for _, tool := range r.store.Tools() {
		if tool.Enabled && keep(tool) {
			out = append(out, tool)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (r *Resolver) allowlist() map[string]struct{} {
	allowed := make(map[string]struct{})
	for _, toggle := range r.store.Toggles() {
		if toggle.Enabled {
			allowed[toggle.ID] = struct{}{}
		}
	}
	return allowed
}

func (r *Resolver) visibleCategories() map[string]struct{} {
	visible := make(map[string]struct{})
	for _, category := range r.EnabledCategories() {
		visible[category.ID] = struct{}{}
	}
	return visible
}
