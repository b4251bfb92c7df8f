package orchestrator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/orchestrator"
	"github.com/goliatone/go-quizgen/pkg/render"
)

func TestOrchestrator_AppliesDecorators(t *testing.T) {
	decorator := model.DecoratorFunc(func(quiz *model.Quiz) error {
		quiz.Title = "decorated: " + quiz.Title
		return nil
	})

	renderer := &stubRenderer{}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer(renderer.Name()),
		orchestrator.WithDecorators(decorator),
	)

	quiz := sampleQuiz()
	output, err := orch.Generate(context.Background(), orchestrator.Request{Quiz: &quiz})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(output) != "ok" {
		t.Fatalf("unexpected renderer output: %s", output)
	}
	if renderer.last.Title != "decorated: sample" {
		t.Fatalf("decorator not applied: %q", renderer.last.Title)
	}
	if quiz.Title != "sample" {
		t.Fatalf("request quiz mutated: %q", quiz.Title)
	}
}

func TestOrchestrator_StableUIDs(t *testing.T) {
	renderer := &stubRenderer{}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer(renderer.Name()),
		orchestrator.WithStableUIDs(),
	)

	quiz := sampleQuiz()
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Quiz: &quiz}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := renderer.last.Questions[0].UID
	if got == "" || got != model.StableUID(quiz.Questions[0]) {
		t.Fatalf("expected stable uid, got %q", got)
	}
}

func TestOrchestrator_ValidatesQuiz(t *testing.T) {
	renderer := &stubRenderer{}
	quiz := sampleQuiz()
	quiz.Questions[0].Answers[1].Correct = true

	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer(renderer.Name()),
	)
	_, err := orch.Generate(context.Background(), orchestrator.Request{Quiz: &quiz})
	if err == nil || !strings.Contains(err.Error(), "exactly one correct answer") {
		t.Fatalf("expected validation error, got %v", err)
	}

	lenient := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer(renderer.Name()),
		orchestrator.WithValidation(false),
	)
	if _, err := lenient.Generate(context.Background(), orchestrator.Request{Quiz: &quiz}); err != nil {
		t.Fatalf("expected validation to be skipped, got %v", err)
	}
}

func TestOrchestrator_UsesLoader(t *testing.T) {
	var requested string
	loader := orchestrator.LoaderFunc(func(_ context.Context, path string) (model.Quiz, error) {
		requested = path
		return sampleQuiz(), nil
	})

	renderer := &stubRenderer{}
	orch := orchestrator.New(
		orchestrator.WithLoader(loader),
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer(renderer.Name()),
	)
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Path: "quiz.yaml"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if requested != "quiz.yaml" {
		t.Fatalf("loader received %q", requested)
	}
}

func TestOrchestrator_RequestErrors(t *testing.T) {
	orch := orchestrator.New()

	if _, err := orch.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error when neither path nor quiz is set")
	}

	_, err := orch.Generate(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "missing.yaml")})
	if err == nil || !strings.Contains(err.Error(), "orchestrator: load quiz") {
		t.Fatalf("expected load error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	quiz := sampleQuiz()
	if _, err := orch.Generate(ctx, orchestrator.Request{Quiz: &quiz}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_FallsBackToFirstRegisteredRenderer(t *testing.T) {
	renderer := &stubRenderer{}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer("missing"),
	)

	quiz := sampleQuiz()
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Quiz: &quiz}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("expected fallback renderer to be used")
	}
}

func TestOrchestrator_SeededDefaultRenderer(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Randomize = true
	for _, text := range []string{"c", "d", "e", "f", "g", "h"} {
		quiz.Questions[0].AddAnswer(text)
	}

	generate := func() string {
		orch := orchestrator.New(orchestrator.WithRandSource(rand.NewPCG(3, 5)))
		output, err := orch.Generate(context.Background(), orchestrator.Request{Quiz: &quiz})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return string(output)
	}

	if first, second := generate(), generate(); first != second {
		t.Fatalf("seeded renders differ")
	}
}

func sampleQuiz() model.Quiz {
	return model.Quiz{
		Title: "sample",
		Questions: []model.Question{
			model.NewMultipleChoice("pick one", model.WithAnswers(
				model.NewAnswer("a", true),
				model.NewAnswer("b", false),
			)),
		},
	}
}

func registryWith(renderers ...render.Renderer) *render.Registry {
	registry := render.NewRegistry()
	for _, r := range renderers {
		registry.MustRegister(r)
	}
	return registry
}

type stubRenderer struct {
	last    model.Quiz
	options render.RenderOptions
	calls   int
}

func (s *stubRenderer) Name() string {
	return "stub"
}

func (s *stubRenderer) ContentType() string {
	return "text/plain"
}

func (s *stubRenderer) Render(_ context.Context, quiz model.Quiz, options render.RenderOptions) ([]byte, error) {
	s.last = quiz
	s.options = options
	s.calls++
	return []byte("ok"), nil
}
