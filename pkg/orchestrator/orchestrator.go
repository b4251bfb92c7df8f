package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/quizfile"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html5"
)

const defaultRendererName = html5.Name

// Loader reads a quiz from a path.
type Loader interface {
	Load(ctx context.Context, path string) (model.Quiz, error)
}

// LoaderFunc adapts plain functions to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (model.Quiz, error)

// Load executes the wrapped function.
func (fn LoaderFunc) Load(ctx context.Context, path string) (model.Quiz, error) {
	return fn(ctx, path)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom quiz loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can rewrite the quiz after
// loading but before decorators run.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the loaded quiz
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithStableUIDs assigns content-derived identifiers to questions that lack
// one.
func WithStableUIDs() Option {
	return WithDecorators(model.StableUIDDecorator())
}

// WithValidation toggles model validation before rendering (default on).
func WithValidation(enabled bool) Option {
	return func(o *Orchestrator) {
		o.skipValidation = !enabled
	}
}

// WithRandSource seeds answer shuffling in the default html5 renderer. It has
// no effect when a registry is injected.
func WithRandSource(src rand.Source) Option {
	return func(o *Orchestrator) {
		o.random = src
	}
}

// WithLogger routes pipeline records to logger. The default logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering. The
// selection becomes RenderOptions.Theme unless the request already sets one.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant requested when a Request
// leaves them empty.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// Orchestrator coordinates the full pipeline from quiz file to rendered
// output. It applies defaults (file loader, html5 renderer, embedded
// templates) while remaining open to dependency injection.
type Orchestrator struct {
	loader          Loader
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
	transformer     Transformer
	decorators      []model.Decorator
	skipValidation  bool
	random          rand.Source
	logger          *slog.Logger
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a quiz.
type Request struct {
	// Path locates a YAML or JSON quiz file. Optional when Quiz is supplied.
	Path string

	// Quiz allows callers to bypass the loader when they already hold a
	// model. It is cloned before any decorator runs.
	Quiz *model.Quiz

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request template and disclosure settings.
	RenderOptions render.RenderOptions

	// ThemeName and ThemeVariant are forwarded to the theme selector.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the loader → transformer → decorators → validation →
// renderer sequence and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	quiz, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if err := o.applyTheme(req, &options); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, quiz, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("generated quiz output",
		"renderer", renderer.Name(),
		"questions", quiz.NumQuestions(),
		"bytes", len(output),
	)
	return output, nil
}

// Prepare runs every stage up to (but excluding) rendering and returns the
// quiz the renderer would receive.
func (o *Orchestrator) Prepare(ctx context.Context, req Request) (model.Quiz, error) {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if err := o.initialiseErr; err != nil {
		return model.Quiz{}, err
	}

	quiz, err := o.resolveQuiz(ctx, req)
	if err != nil {
		return model.Quiz{}, err
	}
	if err := o.applyTransformer(ctx, &quiz); err != nil {
		return model.Quiz{}, err
	}
	if err := o.applyDecorators(&quiz); err != nil {
		return model.Quiz{}, err
	}
	if !o.skipValidation {
		if err := quiz.Validate(); err != nil {
			return model.Quiz{}, fmt.Errorf("orchestrator: invalid quiz: %w", err)
		}
	}
	return quiz, nil
}

// Registry exposes the renderer registry in use.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveQuiz(ctx context.Context, req Request) (model.Quiz, error) {
	if req.Quiz != nil {
		return req.Quiz.Clone(), nil
	}
	if req.Path == "" {
		return model.Quiz{}, errors.New("orchestrator: path or quiz is required")
	}
	quiz, err := o.loader.Load(ctx, req.Path)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("orchestrator: load quiz: %w", err)
	}
	o.logger.Debug("loaded quiz", "path", req.Path, "questions", quiz.NumQuestions())
	return quiz, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(quiz *model.Quiz) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(quiz); err != nil {
			return fmt.Errorf("orchestrator: decorate quiz: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, quiz *model.Quiz) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, quiz); err != nil {
		return fmt.Errorf("orchestrator: transform quiz: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = LoaderFunc(quizfile.LoadFile)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html5.New(
			html5.WithRandSource(o.random),
			html5.WithLogger(o.logger),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
