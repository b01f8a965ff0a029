package icons

import (
	"fmt"
	"sort"
	"strings"
)

// ID identifies one icon in the catalog.
type ID int

const (
	Unspecified ID = iota
	Box
	Search
	Binary
	Code
	CodeSlash
	Image
	FileText
	Clock
	Palette
	Network
	Tag
	Link
	Hash
	QRCode
	Fingerprint
	Key
	Sun
	Moon
	Star
	Languages
	ArrowRight
	AlertTriangle
)

// Definition describes one icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Box, Name: "box", Description: "Generic tool."},
	{ID: Search, Name: "search", Description: "SEO and search tools."},
	{ID: Binary, Name: "binary", Description: "Encoding and decoding."},
	{ID: Code, Name: "code", Description: "Formatting tools."},
	{ID: CodeSlash, Name: "code-2", Description: "Developer tools."},
	{ID: Image, Name: "image", Description: "Image tools."},
	{ID: FileText, Name: "file-text", Description: "Text tools."},
	{ID: Clock, Name: "clock", Description: "Time tools."},
	{ID: Palette, Name: "palette", Description: "Color tools."},
	{ID: Network, Name: "network", Description: "Network tools."},
	{ID: Tag, Name: "tag", Description: "Meta tags."},
	{ID: Link, Name: "link", Description: "URLs."},
	{ID: Hash, Name: "hash", Description: "Hash digests."},
	{ID: QRCode, Name: "qr-code", Description: "QR codes."},
	{ID: Fingerprint, Name: "fingerprint", Description: "Unique identifiers."},
	{ID: Key, Name: "key", Description: "Passwords and secrets."},
	{ID: Sun, Name: "sun", Description: "Light theme."},
	{ID: Moon, Name: "moon", Description: "Dark theme."},
	{ID: Star, Name: "star", Description: "Favorites."},
	{ID: Languages, Name: "languages", Description: "Language switcher."},
	{ID: ArrowRight, Name: "arrow-right", Description: "Navigation affordance."},
	{ID: AlertTriangle, Name: "triangle-alert", Description: "Errors and warnings."},
}

var byName = func() map[string]ID {
	out := make(map[string]ID, len(catalog))
	for _, def := range catalog {
		out[def.Name] = def.ID
	}
	return out
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Parse resolves a Lucide icon name to its identifier.
func Parse(name string) (ID, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return Unspecified, fmt.Errorf("icon name is required")
	}
	id, ok := byName[trimmed]
	if !ok {
		return Unspecified, fmt.Errorf("unknown icon %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return id, nil
}

// MustParse is Parse for package-level declarations.
func MustParse(name string) ID {
	id, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Names returns every known icon name, sorted.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def.Name)
	}
	sort.Strings(out)
	return out
}

// Name returns the Lucide name for id.
func (id ID) Name() (string, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def.Name, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if name, ok := id.Name(); ok {
		return name
	}
	return fmt.Sprintf("icon(%d)", int(id))
}
