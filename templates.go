package quizgen

import (
	"io/fs"

	"github.com/goliatone/go-quizgen/pkg/renderers/html5"
)

// EmbeddedTemplates exposes the built-in html5 document template so callers
// can reuse or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html5.TemplatesFS()
}

// AssetsFS exposes the default quiz stylesheet (quiz.css).
//
// Typical mount:
//
//	mux.Handle("/quiz-assets/",
//	  http.StripPrefix("/quiz-assets/",
//	    http.FileServerFS(quizgen.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html5.AssetsFS()
}
