package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Keys recognised by OptionsFromMap.
const (
	OptionTemplate      = "template"
	OptionLocalTemplate = "t"
	OptionSolutions     = "solutions"
	// OptionTheme carries a *theme.RendererConfig; other value types are
	// ignored.
	OptionTheme = "theme"
)

// RenderOptions describe per-request settings that renderers use to customise
// their output without touching the quiz.
type RenderOptions struct {
	// Template is a path to a custom outer-document template.
	Template string
	// LocalTemplate is a path to a local-scope template. It resolves through
	// the same mechanism as Template and wins when both are set.
	LocalTemplate string
	// Solutions discloses correct answers and explanations. Renderers only
	// honour it when the quiz carries a points threshold.
	Solutions bool
	// Theme passes go-theme selections (name, variant, CSS variables, asset
	// resolver) into document templates.
	Theme *theme.RendererConfig
}

// TemplatePath returns the template that should replace the built-in one, or
// "" when the default applies.
func (o RenderOptions) TemplatePath() string {
	if path := strings.TrimSpace(o.LocalTemplate); path != "" {
		return path
	}
	return strings.TrimSpace(o.Template)
}

// OptionsFromMap maps a loosely typed configuration map onto RenderOptions.
// Unrecognised keys are ignored.
func OptionsFromMap(values map[string]any) RenderOptions {
	var opts RenderOptions
	if len(values) == 0 {
		return opts
	}
	opts.Template = stringValue(values[OptionTemplate])
	opts.LocalTemplate = stringValue(values[OptionLocalTemplate])
	opts.Solutions = boolValue(values[OptionSolutions])
	if cfg, ok := values[OptionTheme].(*theme.RendererConfig); ok {
		opts.Theme = cfg
	}
	return opts
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case []byte:
		return strings.TrimSpace(string(value))
	default:
		return ""
	}
}

func boolValue(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "on", "1":
			return true
		}
	}
	return false
}
