package template

import (
	"io"
)

// TemplateRenderer is the contract renderers rely on to evaluate templates.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// SafeHTML marks pre-rendered markup that engines must emit without
// escaping it again.
type SafeHTML string

func (s SafeHTML) String() string { return string(s) }
