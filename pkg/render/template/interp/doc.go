// Package interp implements template.TemplateRenderer on top of
// valyala/fasttemplate. Templates are literal text with {{name}} placeholders
// (tags are configurable). Unlike pongo2, evaluation is strict: a placeholder
// naming a value that is not bound fails with *UndefinedError instead of
// rendering an empty string.
//
// Dotted placeholders such as {{theme.name}} walk nested maps. String values
// are HTML-escaped unless escaping is disabled; template.SafeHTML values are
// always written verbatim.
package interp
