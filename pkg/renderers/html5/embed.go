package html5

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*.css
var embeddedAssets embed.FS

// DocumentTemplate is the built-in template name (without extension) inside
// TemplatesFS.
const DocumentTemplate = "templates/quiz"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend the default document.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the default stylesheet, keyed by ThemeStylesheet, so
// applications can serve it next to rendered quizzes.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
