package vectorDB

import (
	"context"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

type QuestionIndex interface {
	SearchQuestions(ctx context.Context, queryVector []float32, limit int) ([]docModel.HistoryMatch, error)
	UpsertQuestions(ctx context.Context, pairs []docModel.QA, vectors [][]float32, docName string, page int) error
}
