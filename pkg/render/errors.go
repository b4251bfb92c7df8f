package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// ErrUndefinedBinding is wrapped by TemplateError when a template references
// a variable that is not part of the binding context.
var ErrUndefinedBinding = errors.New("undefined template binding")

// ConfigError reports a setup problem such as a missing or unreadable
// template file. No output is produced when it is returned.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render: configuration: %v", e.Err)
	}
	return fmt.Sprintf("render: configuration: template %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnsupportedQuestionError reports a question variant the renderer cannot
// handle. It signals unsupported content rather than bad setup.
type UnsupportedQuestionError struct {
	Kind   model.QuestionKind
	Number int
}

func (e *UnsupportedQuestionError) Error() string {
	return fmt.Sprintf("render: question %d: unsupported kind %q", e.Number, e.Kind)
}

// TemplateError reports a template that failed to parse or evaluate. Binding
// names the missing variable when the failure was an undefined reference.
type TemplateError struct {
	Template string
	Binding  string
	Err      error
}

func (e *TemplateError) Error() string {
	name := e.Template
	if name == "" {
		name = "<inline>"
	}
	if e.Binding != "" {
		return fmt.Sprintf("render: template %s: binding %q: %v", name, e.Binding, e.Err)
	}
	return fmt.Sprintf("render: template %s: %v", name, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsUnsupportedQuestion reports whether err wraps an UnsupportedQuestionError.
func IsUnsupportedQuestion(err error) bool {
	var target *UnsupportedQuestionError
	return errors.As(err, &target)
}

// IsTemplateError reports whether err wraps a TemplateError.
func IsTemplateError(err error) bool {
	var target *TemplateError
	return errors.As(err, &target)
}
