package html5_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/render"
	"github.com/goliatone/go-quizgen/pkg/testsupport"
)

func solutionsQuiz() model.Quiz {
	quiz := quizWith(abc())
	quiz.PointsThreshold = model.Float(1)
	return quiz
}

func TestRenderQuiz_Solutions(t *testing.T) {
	out := renderQuiz(t, solutionsQuiz(), render.OptionsFromMap(map[string]any{"solutions": true}))
	root := testsupport.ParseHTML(t, out)

	t.Run("highlights correct answer", func(t *testing.T) {
		correct := testsupport.FindAll(root, testsupport.Tag("li"), testsupport.ClassIs("correct"))
		if len(correct) != 1 {
			t.Fatalf("expected one correct answer, got %d", len(correct))
		}
		paragraphs := testsupport.Children(correct[0], testsupport.Tag("p"))
		if diff := testsupport.CompareGolden([]string{"aa"}, testsupport.Texts(paragraphs)); diff != "" {
			t.Fatalf("correct answer mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("shows explanations for incorrect answers", func(t *testing.T) {
		incorrect := testsupport.FindAll(root, testsupport.Tag("li"), testsupport.ClassIs("incorrect"))
		if len(incorrect) != 2 {
			t.Fatalf("expected two incorrect answers, got %d", len(incorrect))
		}

		bb := testsupport.Children(incorrect[0], testsupport.Tag("p"))
		want := []string{"bb", "Nope"}
		if diff := testsupport.CompareGolden(want, testsupport.Texts(bb)); diff != "" {
			t.Fatalf("incorrect answer mismatch (-want +got):\n%s", diff)
		}
		if len(testsupport.Children(incorrect[0], testsupport.ClassIs("explanation"))) != 1 {
			t.Fatalf("expected explanation paragraph on bb")
		}

		cc := testsupport.Children(incorrect[1], testsupport.Tag("p"))
		if diff := testsupport.CompareGolden([]string{"cc"}, testsupport.Texts(cc)); diff != "" {
			t.Fatalf("answer without explanation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("never explains the correct answer", func(t *testing.T) {
		if strings.Contains(out, "This is right") {
			t.Fatalf("correct answer explanation disclosed:\n%s", out)
		}
	})
}

func TestRenderMultipleChoice_SolutionsGolden(t *testing.T) {
	quiz := testsupport.MustLoadQuiz(t, filepath.Join("testdata", "arithmetic.yaml"))

	output := renderMultipleChoice(t, quiz, render.RenderOptions{Solutions: true}, quiz.Questions[0], 7)

	goldenPath := filepath.Join("testdata", "question_solutions.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(output)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, output); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderQuiz_NoDisclosure(t *testing.T) {
	cases := []struct {
		name string
		quiz model.Quiz
		opts render.RenderOptions
	}{
		{name: "solutions off", quiz: solutionsQuiz(), opts: render.RenderOptions{}},
		{name: "no points threshold", quiz: quizWith(abc()), opts: render.RenderOptions{Solutions: true}},
		{name: "solutions string false", quiz: solutionsQuiz(), opts: render.OptionsFromMap(map[string]any{"solutions": "no"})},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			qr := bind(t, newRenderer(t), tc.quiz, tc.opts)
			if qr.DisclosesSolutions() {
				t.Fatalf("expected disclosure off")
			}
			result, err := qr.RenderQuiz(testsupport.Context())
			if err != nil {
				t.Fatalf("render quiz: %v", err)
			}
			for _, marker := range []string{`class="correct"`, `class="incorrect"`, `class="explanation"`, "Nope"} {
				if strings.Contains(result.Output, marker) {
					t.Fatalf("output leaks %q:\n%s", marker, result.Output)
				}
			}
		})
	}
}

func TestRenderMultipleChoice_DoesNotIndicateSolution(t *testing.T) {
	q := abc(model.WithUID("abcde"), model.WithImage("file:///foo.jpg"))
	out := renderMultipleChoice(t, quizWith(q), render.RenderOptions{}, q, 1)

	if strings.Contains(out, `<li class="correct">`) {
		t.Fatalf("solution indicated without disclosure:\n%s", out)
	}
}

func TestRenderQuiz_RawExplanation(t *testing.T) {
	q := model.NewMultipleChoice("q", model.WithRaw(true), model.WithAnswers(
		model.NewAnswer("yes", true),
		model.NewAnswer("no", false, "see <a href=\"#notes\">notes</a>"),
	))
	quiz := quizWith(q)
	quiz.PointsThreshold = model.Float(0)

	out := renderQuiz(t, quiz, render.RenderOptions{Solutions: true})
	if !strings.Contains(out, `<p class="explanation">see <a href="#notes">notes</a></p>`) {
		t.Fatalf("expected raw explanation markup:\n%s", out)
	}
}
