package quizgen

import (
	"context"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/quizfile"
)

// LoadQuiz reads a YAML (.yaml, .yml) or JSON (.json) quiz file.
func LoadQuiz(path string) (model.Quiz, error) {
	return quizfile.LoadFile(context.Background(), path)
}

// LoadQuizContext is LoadQuiz with caller-controlled cancellation.
func LoadQuizContext(ctx context.Context, path string) (model.Quiz, error) {
	return quizfile.LoadFile(ctx, path)
}
