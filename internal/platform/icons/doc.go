// Package icons defines the closed set of icon identifiers used by the
// toolbox catalog and shell.
//
// Configuration refers to icons by Lucide name. Names are resolved through
// Parse when the catalog loads, so a misspelled icon stops startup instead of
// rendering a silent fallback.
package icons
