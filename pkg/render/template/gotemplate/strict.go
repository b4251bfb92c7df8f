package gotemplate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// UndefinedError reports a variable referenced by a template that is neither
// in the render data nor among the engine globals.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("gotemplate: undefined variable %q", e.Name)
}

var (
	commentPattern  = regexp.MustCompile(`(?s)\{#.*?#\}|\{%\s*comment\s*%\}.*?\{%\s*endcomment\s*%\}`)
	verbatimPattern = regexp.MustCompile(`(?s)\{%\s*verbatim\s*%\}.*?\{%\s*endverbatim\s*%\}`)
	tagPattern      = regexp.MustCompile(`(?s)\{\{(.*?)\}\}|\{%\s*(\w+)(.*?)%\}`)
	literalPattern  = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)
)

// reservedNames are expression words that are not variable lookups.
var reservedNames = map[string]struct{}{
	"and": {}, "or": {}, "not": {}, "in": {}, "is": {},
	"true": {}, "false": {}, "True": {}, "False": {},
	"nil": {}, "none": {}, "None": {},
	"forloop": {}, "pongo2": {},
	"reversed": {}, "sorted": {},
}

// firstUndefined returns the first variable in content, in document order,
// that ctx and the engine globals cannot resolve. Names bound by for, with
// and set tags count as defined from the tag onwards.
func (e *Engine) firstUndefined(content string, ctx pongo2.Context) string {
	known := make(map[string]struct{}, len(ctx))
	for name := range ctx {
		known[name] = struct{}{}
	}
	e.mu.RLock()
	for name := range e.set.Globals {
		known[name] = struct{}{}
	}
	e.mu.RUnlock()

	content = commentPattern.ReplaceAllString(content, "")
	content = verbatimPattern.ReplaceAllString(content, "")

	for _, m := range tagPattern.FindAllStringSubmatch(content, -1) {
		var refs, declared []string
		if m[2] == "" {
			refs = expressionNames(m[1])
		} else {
			refs, declared = tagNames(m[2], m[3])
		}
		for _, name := range refs {
			if _, ok := known[name]; !ok {
				return name
			}
		}
		for _, name := range declared {
			known[name] = struct{}{}
		}
	}
	return ""
}

// tagNames splits a block tag into the variables it reads and the ones it
// binds. Tags that carry no expression return nothing.
func tagNames(tag, args string) (refs, declared []string) {
	switch tag {
	case "if", "elif", "ifequal", "ifnotequal", "firstof", "cycle":
		return expressionNames(args), nil
	case "for":
		vars, expr, ok := strings.Cut(args, " in ")
		if !ok {
			return expressionNames(args), nil
		}
		for _, name := range strings.Split(vars, ",") {
			if name = strings.TrimSpace(name); name != "" {
				declared = append(declared, name)
			}
		}
		return expressionNames(expr), declared
	case "set":
		name, expr, ok := strings.Cut(args, "=")
		if !ok {
			return nil, nil
		}
		return expressionNames(expr), []string{strings.TrimSpace(name)}
	case "with":
		if expr, name, ok := strings.Cut(args, " as "); ok {
			return expressionNames(expr), []string{strings.TrimSpace(name)}
		}
		for _, pair := range strings.Fields(args) {
			name, expr, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			refs = append(refs, expressionNames(expr)...)
			declared = append(declared, strings.TrimSpace(name))
		}
		return refs, declared
	default:
		return nil, nil
	}
}

// expressionNames returns the root identifiers an expression looks up.
// Attribute names after "." and filter names after "|" are skipped, as are
// string and number literals.
func expressionNames(expr string) []string {
	expr = literalPattern.ReplaceAllString(expr, `""`)

	var names []string
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isIdentStart(c):
			j := i + 1
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}
			word := expr[i:j]
			if _, reserved := reservedNames[word]; !reserved && !followsSelector(expr, i) {
				names = append(names, word)
			}
			i = j
		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(expr) && (isIdentPart(expr[j]) || expr[j] == '.') {
				j++
			}
			i = j
		default:
			i++
		}
	}
	return names
}

func followsSelector(expr string, i int) bool {
	k := i - 1
	for k >= 0 && (expr[k] == ' ' || expr[k] == '\t' || expr[k] == '\n' || expr[k] == '\r') {
		k--
	}
	return k >= 0 && (expr[k] == '.' || expr[k] == '|')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
