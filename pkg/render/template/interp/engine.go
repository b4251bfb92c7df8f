package interp

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/valyala/fasttemplate"

	"github.com/goliatone/go-quizgen/pkg/render/template"
)

const (
	defaultStartTag = "{{"
	defaultEndTag   = "}}"
)

// ErrFiltersUnsupported is returned by RegisterFilter.
var ErrFiltersUnsupported = errors.New("interp: filters are not supported")

// UndefinedError reports a placeholder with no bound value.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("interp: undefined variable %q", e.Name)
}

// Option configures the engine.
type Option func(*Engine)

// WithTags overrides the placeholder delimiters.
func WithTags(start, end string) Option {
	return func(e *Engine) {
		if strings.TrimSpace(start) != "" {
			e.startTag = start
		}
		if strings.TrimSpace(end) != "" {
			e.endTag = end
		}
	}
}

// WithFS configures where RenderTemplate loads named templates from.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// WithHTMLEscape toggles escaping of plain string values (default on).
func WithHTMLEscape(enabled bool) Option {
	return func(e *Engine) {
		e.escape = enabled
	}
}

// Engine evaluates fasttemplate templates strictly.
type Engine struct {
	mu sync.RWMutex

	startTag string
	endTag   string
	files    fs.FS
	escape   bool
	globals  map[string]any
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine.
func New(options ...Option) *Engine {
	e := &Engine{
		startTag: defaultStartTag,
		endTag:   defaultEndTag,
		escape:   true,
		globals:  make(map[string]any),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Render evaluates name as inline content when it contains the start tag or
// no FS is configured, and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e.files == nil || strings.Contains(name, e.startTag) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate reads name from the configured FS and evaluates it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e.files == nil {
		return "", errors.New("interp: no template FS configured")
	}
	content, err := fs.ReadFile(e.files, name)
	if err != nil {
		return "", fmt.Errorf("interp: load template %q: %w", name, err)
	}
	return e.RenderString(string(content), data, out...)
}

// RenderString evaluates templateContent against data.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	tmpl, err := fasttemplate.NewTemplate(templateContent, e.startTag, e.endTag)
	if err != nil {
		return "", fmt.Errorf("interp: parse template: %w", err)
	}

	values, err := e.context(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := tmpl.ExecuteFunc(&buf, func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		value, ok := lookup(values, name)
		if !ok {
			return 0, &UndefinedError{Name: name}
		}
		return io.WriteString(w, e.format(value))
	}); err != nil {
		var undefined *UndefinedError
		if errors.As(err, &undefined) {
			return "", undefined
		}
		return "", fmt.Errorf("interp: execute template: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// RegisterFilter always fails: plain interpolation has no filter syntax.
func (e *Engine) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return ErrFiltersUnsupported
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if data == nil {
		return nil
	}
	values, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("interp: global context must be map[string]any, got %T", data)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for key, value := range values {
		if key = strings.TrimSpace(key); key != "" {
			e.globals[key] = value
		}
	}
	return nil
}

func (e *Engine) context(data any) (map[string]any, error) {
	e.mu.RLock()
	merged := make(map[string]any, len(e.globals))
	for key, value := range e.globals {
		merged[key] = value
	}
	e.mu.RUnlock()

	switch v := data.(type) {
	case nil:
	case map[string]any:
		for key, value := range v {
			merged[key] = value
		}
	default:
		return nil, fmt.Errorf("interp: data must be map[string]any, got %T", data)
	}
	return merged, nil
}

func (e *Engine) format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case template.SafeHTML:
		return string(v)
	case string:
		return e.escapeString(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return e.escapeString(v.String())
	default:
		return e.escapeString(fmt.Sprint(v))
	}
}

func (e *Engine) escapeString(s string) string {
	if !e.escape {
		return s
	}
	return html.EscapeString(s)
}

func lookup(values map[string]any, name string) (any, bool) {
	if name == "" {
		return nil, false
	}
	if value, ok := values[name]; ok {
		return value, true
	}

	segments := strings.Split(name, ".")
	var current any = values
	for _, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
