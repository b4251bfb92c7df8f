package html5

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/render"
	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
	"github.com/goliatone/go-quizgen/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML5 renderer.
const Name = "html5"

// Result holds the markup produced by one render call. The zero value is an
// empty render.
type Result struct {
	Output string
}

func (r Result) String() string { return r.Output }

// Bytes returns the output as a byte slice.
func (r Result) Bytes() []byte { return []byte(r.Output) }

// HTML wraps the output so it can be bound into another template without
// being escaped again.
func (r Result) HTML() rendertemplate.SafeHTML { return rendertemplate.SafeHTML(r.Output) }

// Renderer renders quizzes to HTML5. It is immutable after New.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	order       *orderingPolicy
	logger      *slog.Logger
	titlePolicy *bluemonday.Policy
	// engineOptions carry helpers and globals into custom pongo2 templates.
	engineOptions []gotemplate.Option
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	if cfg.titlePolicy == nil {
		cfg.titlePolicy = bluemonday.StrictPolicy()
	}

	engineOptions := []gotemplate.Option{
		gotemplate.WithTemplateFunc(templateFuncs(cfg.funcs)),
		gotemplate.WithGlobalData(cfg.globals),
	}

	templates := cfg.templateRenderer
	if templates == nil {
		if _, err := fs.Stat(cfg.templateFS, DocumentTemplate+".tpl"); err != nil {
			return nil, fmt.Errorf("html5 renderer: %w", &render.ConfigError{Path: DocumentTemplate + ".tpl", Err: err})
		}
		engine, err := gotemplate.New(
			append([]gotemplate.Option{
				gotemplate.WithFS(cfg.templateFS),
				gotemplate.WithExtension(".tpl"),
			}, engineOptions...)...,
		)
		if err != nil {
			return nil, fmt.Errorf("html5 renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:   templates,
		order:       newOrderingPolicy(cfg.random),
		logger:      cfg.logger,
		titlePolicy: cfg.titlePolicy,

		engineOptions: engineOptions,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render binds quiz and options and renders the full document.
func (r *Renderer) Render(ctx context.Context, quiz model.Quiz, options render.RenderOptions) ([]byte, error) {
	qr, err := r.ForQuiz(quiz, options)
	if err != nil {
		return nil, err
	}
	result, err := qr.RenderQuiz(ctx)
	if err != nil {
		return nil, err
	}
	return result.Bytes(), nil
}

// ForQuiz binds the renderer to quiz and options. Custom templates are read
// here; a missing or unreadable file is reported as *render.ConfigError.
func (r *Renderer) ForQuiz(quiz model.Quiz, options render.RenderOptions) (*QuizRenderer, error) {
	document, err := r.resolveTemplate(options)
	if err != nil {
		return nil, fmt.Errorf("html5 renderer: %w", err)
	}
	return &QuizRenderer{
		renderer: r,
		quiz:     quiz,
		options:  options,
		document: document,
		disclose: options.Solutions && quiz.HasPointsThreshold(),
	}, nil
}

// QuizRenderer renders one quiz with one set of options. It keeps no output
// between calls.
type QuizRenderer struct {
	renderer *Renderer
	quiz     model.Quiz
	options  render.RenderOptions
	document documentTemplate
	disclose bool
}

// Quiz returns the bound quiz.
func (qr *QuizRenderer) Quiz() model.Quiz {
	return qr.quiz
}

// DisclosesSolutions reports whether correct answers will be marked.
func (qr *QuizRenderer) DisclosesSolutions() bool {
	return qr.disclose
}

// RenderQuiz renders every question in stored order, numbered from the quiz's
// first question number, and evaluates the document template around them.
func (qr *QuizRenderer) RenderQuiz(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var body strings.Builder
	start := qr.quiz.StartNumber()
	for i, question := range qr.quiz.Questions {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		fragment, err := qr.renderQuestion(question, start+i)
		if err != nil {
			return Result{}, fmt.Errorf("html5 renderer: %w", err)
		}
		body.WriteString(fragment)
	}

	bindings := qr.renderer.templateContext(qr.quiz, body.String(), qr.options.Theme)
	document, err := qr.document.evaluate(bindings)
	if err != nil {
		return Result{}, fmt.Errorf("html5 renderer: %w", err)
	}

	qr.renderer.logger.Debug("rendered quiz",
		"title", qr.quiz.Title,
		"questions", len(qr.quiz.Questions),
		"template", qr.document.name(),
		"solutions", qr.disclose,
		"bytes", len(document),
	)
	return Result{Output: document}, nil
}

// RenderMultipleChoice renders a single multiple-choice question fragment.
// Other kinds are rejected with *render.UnsupportedQuestionError.
func (qr *QuizRenderer) RenderMultipleChoice(question model.Question, number int) (Result, error) {
	if kind := question.EffectiveKind(); kind != model.KindMultipleChoice {
		return Result{}, fmt.Errorf("html5 renderer: %w", &render.UnsupportedQuestionError{Kind: kind, Number: number})
	}
	return qr.RenderQuestion(question, number)
}

// RenderQuestion renders a single question fragment of any supported kind.
func (qr *QuizRenderer) RenderQuestion(question model.Question, number int) (Result, error) {
	fragment, err := qr.renderQuestion(question, number)
	if err != nil {
		return Result{}, fmt.Errorf("html5 renderer: %w", err)
	}
	return Result{Output: fragment}, nil
}
