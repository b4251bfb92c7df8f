package interp_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-quizgen/pkg/render/template"
	"github.com/goliatone/go-quizgen/pkg/render/template/interp"
)

func TestRenderString_substitutes_bindings(t *testing.T) {
	t.Parallel()

	en := interp.New()

	got, err := en.RenderString(
		"title: {{title}} / {{ num_questions }} / {{total_points}}",
		map[string]any{"title": "My Quiz", "num_questions": 5, "total_points": 20.0},
	)
	require.NoError(t, err)
	assert.Equal(t, "title: My Quiz / 5 / 20", got)
}

func TestRenderString_undefined_binding_is_an_error(t *testing.T) {
	t.Parallel()

	en := interp.New()

	_, err := en.RenderString("by {{author}}", map[string]any{"title": "x"})
	require.Error(t, err)

	var undefined *interp.UndefinedError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "author", undefined.Name)
}

func TestRenderString_escapes_strings_but_not_safe_html(t *testing.T) {
	t.Parallel()

	en := interp.New()

	got, err := en.RenderString("<h1>{{title}}</h1>{{body}}", map[string]any{
		"title": "Q & A <1>",
		"body":  template.SafeHTML("<ol><li>x</li></ol>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Q &amp; A &lt;1&gt;</h1><ol><li>x</li></ol>", got)
}

func TestRenderString_escape_disabled(t *testing.T) {
	t.Parallel()

	en := interp.New(interp.WithHTMLEscape(false))

	got, err := en.RenderString("{{title}}", map[string]any{"title": "<b>raw</b>"})
	require.NoError(t, err)
	assert.Equal(t, "<b>raw</b>", got)
}

func TestRenderString_custom_tags_and_dotted_names(t *testing.T) {
	t.Parallel()

	en := interp.New(interp.WithTags("<%=", "%>"))

	got, err := en.RenderString(
		"<body class=\"<%= theme.name %>\">",
		map[string]any{"theme": map[string]any{"name": "dark"}},
	)
	require.NoError(t, err)
	assert.Equal(t, `<body class="dark">`, got)
}

func TestRenderTemplate_reads_from_fs_and_writes_out(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"doc.html": &fstest.MapFile{Data: []byte("<body id=\"template\">{{title}}</body>")},
	}
	en := interp.New(interp.WithFS(files))
	require.NoError(t, en.GlobalContext(map[string]any{"title": "Global"}))

	var buf bytes.Buffer
	got, err := en.Render("doc.html", nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, `<body id="template">Global</body>`, got)
	assert.Equal(t, got, buf.String())

	_, err = en.RenderTemplate("missing.html", nil)
	require.Error(t, err)
}

func TestRegisterFilter_unsupported(t *testing.T) {
	t.Parallel()

	err := interp.New().RegisterFilter("upper", func(any, any) (any, error) { return nil, nil })
	require.ErrorIs(t, err, interp.ErrFiltersUnsupported)
}
