package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can extend or
// replace individual templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
