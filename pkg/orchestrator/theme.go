package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/render"
)

// applyTheme resolves the requested theme through the configured selector
// and stores the renderer config on options. An explicit options.Theme is
// left untouched.
func (o *Orchestrator) applyTheme(req Request, options *render.RenderOptions) error {
	if o.themeSelector == nil || options.Theme != nil {
		return nil
	}

	name := firstNonEmpty(req.ThemeName, o.defaultTheme)
	variant := firstNonEmpty(req.ThemeVariant, o.defaultVariant)

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil
	}

	options.Theme = RendererConfig(selection)
	o.logger.Debug("selected theme", "theme", selection.Theme, "variant", selection.Variant)
	return nil
}

// RendererConfig flattens a theme selection into the renderer-facing
// config. Variant tokens, templates and asset files override the manifest's
// base values; every token is also exposed as a --name CSS variable.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	variant, hasVariant := manifest.Variants[selection.Variant]

	cfg.Tokens = mergeStringMap(nil, manifest.Tokens)
	cfg.Partials = mergeStringMap(nil, manifest.Templates)
	files := mergeStringMap(nil, manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	if hasVariant {
		cfg.Tokens = mergeStringMap(cfg.Tokens, variant.Tokens)
		cfg.Partials = mergeStringMap(cfg.Partials, variant.Templates)
		files = mergeStringMap(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	if len(cfg.Tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
		for key, value := range cfg.Tokens {
			cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
		}
	}

	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return cfg
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
