package render

import (
	"context"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// Renderer converts a Quiz into a byte representation (HTML today).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, quiz model.Quiz, options RenderOptions) ([]byte, error)
}
