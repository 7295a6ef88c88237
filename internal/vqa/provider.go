package vqa

import (
	"context"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

// Provider answers one question about one page image. Questions from
// the same request go through as separate calls, the model never sees
// them together.
type Provider interface {
	AnswerQuestion(ctx context.Context, page docModel.PageImage, question string) (string, error)
}
