package quizfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/quizfile"
)

func expectedCapitals() model.Quiz {
	return model.Quiz{
		Title:               "World Capitals",
		PointsThreshold:     model.Float(2),
		FirstQuestionNumber: 3,
		Questions: []model.Question{
			{
				Text: "What is the capital of France?",
				UID:  "france",
				Answers: []model.Answer{
					{Text: "Paris", Correct: true},
					{Text: "Lyon", Explanation: "Lyon is the third largest city."},
					{Text: "Marseille"},
				},
			},
			{
				Kind:      model.KindSelectMultiple,
				Text:      "Which are capitals?",
				Image:     "https://example.com/map.png",
				Points:    2,
				Randomize: model.Bool(true),
				Answers: []model.Answer{
					{Text: "Rome", Correct: true},
					{Text: "Oslo", Correct: true},
					{Text: "Milan"},
				},
			},
		},
	}
}

func TestLoadFile_yaml_and_json_agree(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"capitals.yaml", "capitals.json"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			quiz, err := quizfile.LoadFile(context.Background(), filepath.Join("testdata", name))
			require.NoError(t, err)

			if diff := cmp.Diff(expectedCapitals(), quiz); diff != "" {
				t.Fatalf("quiz mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	quiz, err := quizfile.LoadFS(context.Background(), os.DirFS("testdata"), "capitals.yaml")
	require.NoError(t, err)
	assert.Equal(t, "World Capitals", quiz.Title)
	assert.Len(t, quiz.Questions, 2)
}

func TestLoadFile_rejects_unknown_fields(t *testing.T) {
	t.Parallel()

	_, err := quizfile.LoadFile(context.Background(), filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "questoins")
}

func TestLoadFile_errors(t *testing.T) {
	t.Parallel()

	_, err := quizfile.LoadFile(context.Background(), "quiz.toml")
	require.ErrorIs(t, err, quizfile.ErrUnknownFormat)

	_, err = quizfile.LoadFile(context.Background(), filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = quizfile.LoadFile(ctx, filepath.Join("testdata", "capitals.yaml"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecode_empty_yaml(t *testing.T) {
	t.Parallel()

	_, err := quizfile.Decode(bytes.NewReader(nil), quizfile.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestEncode_then_decode_yaml(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, quizfile.Encode(&buf, expectedCapitals(), quizfile.FormatYAML))

	quiz, err := quizfile.Decode(&buf, quizfile.FormatYAML)
	require.NoError(t, err)
	if diff := cmp.Diff(expectedCapitals(), quiz); diff != "" {
		t.Fatalf("quiz mismatch (-want +got):\n%s", diff)
	}
}
