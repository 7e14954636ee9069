// Package web holds the HTML templates rendered by the gateway.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// IndexTemplate is the name the page renderer executes.
const IndexTemplate = "index.html"

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
