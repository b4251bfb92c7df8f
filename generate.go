package quizgen

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/orchestrator"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html5"
)

// RenderOptions describes per-request template and disclosure settings.
type RenderOptions = render.RenderOptions

// Quiz aliases model.Quiz for callers that only import the root package.
type Quiz = model.Quiz

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders quiz with the named renderer (html5 when empty).
func GenerateHTML(ctx context.Context, quiz Quiz, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Quiz:          &quiz,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// GenerateHTMLFromFile loads a YAML or JSON quiz file and renders it,
// delegating both stages to the orchestrator.
func GenerateHTMLFromFile(ctx context.Context, path, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Path:          path,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// DefaultRegistry returns a registry holding the built-in renderers.
func DefaultRegistry(options ...html5.Option) (*render.Registry, error) {
	renderer, err := html5.New(options...)
	if err != nil {
		return nil, fmt.Errorf("quizgen: default registry: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, fmt.Errorf("quizgen: default registry: %w", err)
	}
	return registry, nil
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithStableUIDs assigns content-derived uids to questions without one.
func WithStableUIDs() orchestrator.Option {
	return orchestrator.WithStableUIDs()
}
