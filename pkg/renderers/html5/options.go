package html5

import (
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"math/rand/v2"
	"os"

	"github.com/microcosm-cc/bluemonday"

	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	random           rand.Source
	logger           *slog.Logger
	titlePolicy      *bluemonday.Policy
	funcs            map[string]any
	globals          map[string]any
}

// WithTemplatesFS supplies an alternate built-in template bundle. The bundle
// must contain templates/quiz.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the built-in template bundle from a directory on
// disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects the engine used for the built-in document
// template.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRandSource makes answer shuffling draw from src. Use a seeded source
// (rand.NewPCG) for reproducible output. Without it the process-wide
// math/rand/v2 generator is used.
func WithRandSource(src rand.Source) Option {
	return func(cfg *config) {
		cfg.random = src
	}
}

// WithLogger routes debug records to logger. The default logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTitlePolicy overrides the policy used to derive the plain-text title
// bound as title_text.
func WithTitlePolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.titlePolicy = policy
		}
	}
}

// WithTemplateFuncs adds helpers to every pongo2 template the renderer
// evaluates, built-in or custom. Filter shaped functions become filters;
// other functions become callable globals.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.funcs == nil {
			cfg.funcs = make(map[string]any, len(funcs))
		}
		maps.Copy(cfg.funcs, funcs)
	}
}

// WithTemplateGlobals exposes values to every pongo2 template the renderer
// evaluates. Quiz bindings of the same name take precedence.
func WithTemplateGlobals(globals map[string]any) Option {
	return func(cfg *config) {
		if len(globals) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(globals))
		}
		maps.Copy(cfg.globals, globals)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
