// Package web embeds the page templates and browser assets served by the
// mood recommender.
package web

import "embed"

// TemplatesFS holds layouts, pages and partials under templates/.
//
//go:embed all:templates
var TemplatesFS embed.FS

// StaticFS holds app.css and app.js under static/.
//
//go:embed all:static
var StaticFS embed.FS
