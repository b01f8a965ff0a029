// Package metatags renders the head tags of a page from SEO form fields.
package metatags

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	MaxTitle       = 60
	MaxDescription = 160
)

// DefaultRobots is the preselected robots directive.
const DefaultRobots = "index, follow"

// RobotsPresets are the accepted robots directives.
var RobotsPresets = []string{"index, follow", "noindex, follow", "index, nofollow", "noindex, nofollow"}

// Fields is the form input.
type Fields struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Robots      string
}

// Normalize trims every field, cuts title and description to their limits
// and replaces an unknown robots value with the default.
func (f Fields) Normalize() Fields {
	f.Title = truncate(strings.TrimSpace(f.Title), MaxTitle)
	f.Description = truncate(strings.TrimSpace(f.Description), MaxDescription)
	f.Keywords = strings.TrimSpace(f.Keywords)
	f.Author = strings.TrimSpace(f.Author)
	f.Robots = strings.TrimSpace(f.Robots)
	if !isPreset(f.Robots) {
		f.Robots = DefaultRobots
	}
	return f
}

// Build renders one tag per line. Empty fields are skipped; viewport and
// charset are always present.
func Build(fields Fields) (string, error) {
	f := fields.Normalize()
	nodes := make([]*html.Node, 0, 7)
	if f.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: f.Title})
		nodes = append(nodes, title)
	}
	for _, pair := range [][2]string{
		{"description", f.Description},
		{"keywords", f.Keywords},
		{"author", f.Author},
		{"robots", f.Robots},
		{"viewport", "width=device-width, initial-scale=1.0"},
	} {
		if pair[1] == "" {
			continue
		}
		meta := element(atom.Meta)
		meta.Attr = []html.Attribute{{Key: "name", Val: pair[0]}, {Key: "content", Val: pair[1]}}
		nodes = append(nodes, meta)
	}
	charset := element(atom.Meta)
	charset.Attr = []html.Attribute{{Key: "charset", Val: "UTF-8"}}
	nodes = append(nodes, charset)

	var buf bytes.Buffer
	for i, node := range nodes {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := html.Render(&buf, node); err != nil {
			return "", fmt.Errorf("render %s tag: %w", node.Data, err)
		}
	}
	return buf.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func isPreset(value string) bool {
	for _, preset := range RobotsPresets {
		if preset == value {
			return true
		}
	}
	return false
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}
