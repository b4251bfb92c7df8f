package html5_test

import (
	"testing"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/renderers/html5"
	"github.com/goliatone/go-quizgen/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...html5.Option) *html5.Renderer {
	t.Helper()

	renderer, err := html5.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func bind(t *testing.T, renderer *html5.Renderer, quiz model.Quiz, opts render.RenderOptions) *html5.QuizRenderer {
	t.Helper()

	qr, err := renderer.ForQuiz(quiz, opts)
	if err != nil {
		t.Fatalf("bind quiz: %v", err)
	}
	return qr
}

func renderQuiz(t *testing.T, quiz model.Quiz, opts render.RenderOptions, options ...html5.Option) string {
	t.Helper()

	result, err := bind(t, newRenderer(t, options...), quiz, opts).RenderQuiz(testsupport.Context())
	if err != nil {
		t.Fatalf("render quiz: %v", err)
	}
	return result.Output
}

func renderMultipleChoice(t *testing.T, quiz model.Quiz, opts render.RenderOptions, question model.Question, number int, options ...html5.Option) string {
	t.Helper()

	result, err := bind(t, newRenderer(t, options...), quiz, opts).RenderMultipleChoice(question, number)
	if err != nil {
		t.Fatalf("render multiple choice: %v", err)
	}
	return result.Output
}

// abc is the three-answer question used across the ordering and disclosure
// tests.
func abc(options ...model.QuestionOption) model.Question {
	options = append([]model.QuestionOption{model.WithAnswers(
		model.NewAnswer("aa", true, "This is right"),
		model.NewAnswer("bb", false, "Nope"),
		model.NewAnswer("cc", false),
	)}, options...)
	return model.NewMultipleChoice("question", options...)
}

func quizWith(questions ...model.Question) model.Quiz {
	return model.Quiz{Title: "foo", Questions: questions}
}
