package html5

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/render"
	rendertemplate "github.com/goliatone/go-quizgen/pkg/render/template"
	"github.com/goliatone/go-quizgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-quizgen/pkg/render/template/interp"
)

// ThemeStylesheet is the asset key passed to theme.RendererConfig.AssetURL
// when resolving the document stylesheet.
const ThemeStylesheet = "quiz.css"

// TemplateContext is the fixed set of bindings exposed to document
// templates.
type TemplateContext struct {
	Title               string
	TitleText           string
	TotalPoints         float64
	PointString         string
	NumQuestions        int
	FirstQuestionNumber int
	Questions           rendertemplate.SafeHTML
	Theme               ThemeContext
}

// ThemeContext carries the go-theme selection into templates.
type ThemeContext struct {
	Name         string
	Variant      string
	CSSVarsStyle string
	Stylesheet   string
}

// Map returns the bindings under the names templates refer to.
func (c TemplateContext) Map() map[string]any {
	themeValues := map[string]any{
		"name":           c.Theme.Name,
		"variant":        c.Theme.Variant,
		"stylesheet":     c.Theme.Stylesheet,
		"css_vars_style": "",
	}
	if c.Theme.CSSVarsStyle != "" {
		themeValues["css_vars_style"] = rendertemplate.SafeHTML(c.Theme.CSSVarsStyle)
	}
	return map[string]any{
		"title":                 c.Title,
		"title_text":            c.TitleText,
		"total_points":          strconv.FormatFloat(c.TotalPoints, 'f', -1, 64),
		"point_string":          c.PointString,
		"num_questions":         c.NumQuestions,
		"first_question_number": c.FirstQuestionNumber,
		"questions":             c.Questions,
		"theme":                 themeValues,
	}
}

type engineKind string

const (
	enginePongo  engineKind = "pongo2"
	engineInterp engineKind = "interp"
)

// pongoExtensions select the pongo2 engine for custom template files; every
// other file is evaluated by the strict interpolation engine.
var pongoExtensions = map[string]struct{}{
	".tpl":    {},
	".tmpl":   {},
	".pongo2": {},
	".django": {},
	".j2":     {},
}

// documentTemplate is a resolved outer template ready for evaluation.
type documentTemplate struct {
	path    string
	content string
	kind    engineKind
	engine  rendertemplate.TemplateRenderer
}

func (t documentTemplate) builtin() bool {
	return t.path == ""
}

func (t documentTemplate) name() string {
	if t.builtin() {
		return DocumentTemplate
	}
	return t.path
}

// resolveTemplate picks the built-in document or loads the caller's file.
// The file is read once here so a missing template fails before rendering.
func (r *Renderer) resolveTemplate(opts render.RenderOptions) (documentTemplate, error) {
	path := opts.TemplatePath()
	if path == "" {
		return documentTemplate{kind: enginePongo, engine: r.templates}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return documentTemplate{}, &render.ConfigError{Path: path, Err: err}
	}

	tmpl := documentTemplate{path: path, content: string(data)}
	if _, ok := pongoExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		engine, err := gotemplate.New(append([]gotemplate.Option{
			gotemplate.WithBaseDir(filepath.Dir(path)),
			gotemplate.WithStrictVariables(),
		}, r.engineOptions...)...)
		if err != nil {
			return documentTemplate{}, &render.ConfigError{Path: path, Err: err}
		}
		tmpl.kind = enginePongo
		tmpl.engine = engine
	} else {
		tmpl.kind = engineInterp
		tmpl.engine = interp.New()
	}

	r.logger.Debug("resolved quiz template", "template", path, "engine", string(tmpl.kind))
	return tmpl, nil
}

func (t documentTemplate) evaluate(ctx TemplateContext) (string, error) {
	data := ctx.Map()

	var (
		out string
		err error
	)
	if t.builtin() {
		out, err = t.engine.RenderTemplate(DocumentTemplate, data)
	} else {
		out, err = t.engine.RenderString(t.content, data)
	}
	if err == nil {
		return out, nil
	}

	var (
		undefined      *interp.UndefinedError
		undefinedPongo *gotemplate.UndefinedError
	)
	switch {
	case errors.As(err, &undefined):
		return "", undefinedBinding(t.name(), undefined.Name, undefined)
	case errors.As(err, &undefinedPongo):
		return "", undefinedBinding(t.name(), undefinedPongo.Name, undefinedPongo)
	}
	return "", &render.TemplateError{Template: t.name(), Err: err}
}

func undefinedBinding(template, name string, cause error) *render.TemplateError {
	return &render.TemplateError{
		Template: template,
		Binding:  name,
		Err:      fmt.Errorf("%w: %w", render.ErrUndefinedBinding, cause),
	}
}

// templateContext assembles the bindings for quiz around the rendered body.
func (r *Renderer) templateContext(quiz model.Quiz, body string, cfg *theme.RendererConfig) TemplateContext {
	return TemplateContext{
		Title:               quiz.Title,
		TitleText:           r.plainText(quiz.Title),
		TotalPoints:         quiz.TotalPoints(),
		PointString:         quiz.PointString(),
		NumQuestions:        quiz.NumQuestions(),
		FirstQuestionNumber: quiz.StartNumber(),
		Questions:           rendertemplate.SafeHTML(body),
		Theme:               buildThemeContext(cfg),
	}
}

// plainText strips markup from s. The policy output is entity-encoded, so it
// is decoded again and left for the template engine to escape.
func (r *Renderer) plainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(r.titlePolicy.Sanitize(s)))
}

func buildThemeContext(cfg *theme.RendererConfig) ThemeContext {
	if cfg == nil {
		return ThemeContext{}
	}
	ctx := ThemeContext{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(ThemeStylesheet)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if safeCSSDeclaration(key, value) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// safeCSSDeclaration rejects variables that could end the <style> element or
// the :root rule they are written into.
func safeCSSDeclaration(key, value string) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}
	return !strings.ContainsAny(key+value, "<>{}")
}
