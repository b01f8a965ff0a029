// Package static embeds the stylesheet, scripts and icons served under
// /static/ and the service worker served at /sw.js.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js *.svg
var FS embed.FS
