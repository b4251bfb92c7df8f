package quizfile_test

import (
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-quizgen/pkg/quizfile"
)

func TestSchema_is_valid_json(t *testing.T) {
	t.Parallel()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(quizfile.Schema(), &doc))
	assert.Equal(t, "Quiz", doc["title"])
}

func TestCheckFile_accepts_fixtures(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"capitals.yaml", "capitals.json"} {
		require.NoError(t, quizfile.CheckFile(filepath.Join("testdata", name)), name)
	}
}

func TestCheckFile_reports_type_errors_by_location(t *testing.T) {
	t.Parallel()

	err := quizfile.CheckFile(filepath.Join("testdata", "wrong_types.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong_types.yaml")
	assert.Contains(t, err.Error(), "/questions/0/points")
}

func TestCheckSchema_rejects_unknown_keys(t *testing.T) {
	t.Parallel()

	err := quizfile.CheckSchema([]byte(`{"title":"Typo","questoins":[]}`), quizfile.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quizfile: schema")
}

func TestCheckSchema_unknown_format(t *testing.T) {
	t.Parallel()

	err := quizfile.CheckSchema([]byte(`{}`), quizfile.Format("toml"))
	require.ErrorIs(t, err, quizfile.ErrUnknownFormat)
}
