package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quizgen/pkg/render"
)

func TestOptionsFromMap(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		want render.RenderOptions
	}{
		{name: "nil", in: nil, want: render.RenderOptions{}},
		{
			name: "recognised keys",
			in: map[string]any{
				"template":  " outer.html ",
				"t":         "local.html",
				"solutions": true,
			},
			want: render.RenderOptions{Template: "outer.html", LocalTemplate: "local.html", Solutions: true},
		},
		{
			name: "string solutions flag",
			in:   map[string]any{"solutions": "TRUE"},
			want: render.RenderOptions{Solutions: true},
		},
		{
			name: "unrecognised keys ignored",
			in:   map[string]any{"stylesheet": "x.css", "solutions": 1, "template": 42},
			want: render.RenderOptions{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render.OptionsFromMap(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderOptions_TemplatePathPrefersLocal(t *testing.T) {
	opts := render.RenderOptions{Template: "outer.html", LocalTemplate: "local.html"}
	if got := opts.TemplatePath(); got != "local.html" {
		t.Fatalf("template path = %q", got)
	}

	opts.LocalTemplate = ""
	if got := opts.TemplatePath(); got != "outer.html" {
		t.Fatalf("template path = %q", got)
	}
}

func TestOptionsFromMap_Theme(t *testing.T) {
	cfg := &theme.RendererConfig{Theme: "acme"}

	opts := render.OptionsFromMap(map[string]any{render.OptionTheme: cfg})
	if opts.Theme != cfg {
		t.Fatalf("expected theme config to be carried, got %#v", opts.Theme)
	}

	opts = render.OptionsFromMap(map[string]any{render.OptionTheme: "acme"})
	if opts.Theme != nil {
		t.Fatalf("expected non-config theme value to be ignored, got %#v", opts.Theme)
	}
}
