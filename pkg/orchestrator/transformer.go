package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// Transformer rewrites a quiz before decorators run. Implementations can
// retitle the quiz, adjust scoring, or patch individual questions.
type Transformer interface {
	Transform(ctx context.Context, quiz *model.Quiz) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, quiz *model.Quiz) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, quiz *model.Quiz) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, quiz)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON
// file. Questions are addressed by uid or by 1-based position:
//
//	{
//	  "title": "Midterm (makeup)",
//	  "points_threshold": 0,
//	  "suppress_random": true,
//	  "questions": {
//	    "capital-fr": {"points": 2},
//	    "3": {"randomize": false, "image": "/img/map.png"}
//	  }
//	}
type JSONPresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title               *string                  `json:"title"`
	PointsThreshold     *float64                 `json:"points_threshold"`
	SuppressRandom      *bool                    `json:"suppress_random"`
	Randomize           *bool                    `json:"randomize"`
	FirstQuestionNumber *int                     `json:"first_question_number"`
	Questions           map[string]questionPatch `json:"questions"`
}

type questionPatch struct {
	Text      *string  `json:"text"`
	Image     *string  `json:"image"`
	Points    *float64 `json:"points"`
	Randomize *bool    `json:"randomize"`
	Raw       *bool    `json:"raw"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied quiz.
func (t *JSONPresetTransformer) Transform(ctx context.Context, quiz *model.Quiz) error {
	if quiz == nil {
		return errors.New("json preset transformer: quiz is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := t.document
	if doc.Title != nil {
		quiz.Title = *doc.Title
	}
	if doc.PointsThreshold != nil {
		quiz.PointsThreshold = model.Float(*doc.PointsThreshold)
	}
	if doc.SuppressRandom != nil {
		quiz.SuppressRandom = *doc.SuppressRandom
	}
	if doc.Randomize != nil {
		quiz.Randomize = *doc.Randomize
	}
	if doc.FirstQuestionNumber != nil {
		quiz.FirstQuestionNumber = *doc.FirstQuestionNumber
	}

	for key, patch := range doc.Questions {
		if err := ctx.Err(); err != nil {
			return err
		}
		question := findQuestion(quiz.Questions, key)
		if question == nil {
			return fmt.Errorf("json preset transformer: question %q not found", key)
		}
		applyQuestionPatch(question, patch)
	}
	return nil
}

func applyQuestionPatch(question *model.Question, patch questionPatch) {
	if patch.Text != nil {
		question.Text = *patch.Text
	}
	if patch.Image != nil {
		question.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.Points != nil {
		question.Points = *patch.Points
	}
	if patch.Randomize != nil {
		question.Randomize = model.Bool(*patch.Randomize)
	}
	if patch.Raw != nil {
		question.Raw = *patch.Raw
	}
}

// findQuestion matches key against question uids first, then as a 1-based
// position.
func findQuestion(questions []model.Question, key string) *model.Question {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	for idx := range questions {
		if questions[idx].UID == key {
			return &questions[idx]
		}
	}
	position, err := strconv.Atoi(key)
	if err != nil || position < 1 || position > len(questions) {
		return nil
	}
	return &questions[position-1]
}
