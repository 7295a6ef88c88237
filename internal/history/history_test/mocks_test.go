package history_test

import (
	"context"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, query string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, texts []string) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, texts)
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i)}
	}
	return vectors, nil
}

// MockIndex implements vectorDB.QuestionIndex
type MockIndex struct {
	OnSearch        func(ctx context.Context, queryVector []float32, limit int) ([]docModel.HistoryMatch, error)
	OnUpsert        func(ctx context.Context, pairs []docModel.QA, vectors [][]float32, docName string, page int) error
	UpsertedPairs   []docModel.QA
	UpsertedVectors [][]float32
}

func (m *MockIndex) SearchQuestions(ctx context.Context, queryVector []float32, limit int) ([]docModel.HistoryMatch, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, queryVector, limit)
	}
	return nil, nil
}

func (m *MockIndex) UpsertQuestions(ctx context.Context, pairs []docModel.QA, vectors [][]float32, docName string, page int) error {
	m.UpsertedPairs = pairs
	m.UpsertedVectors = vectors
	if m.OnUpsert != nil {
		return m.OnUpsert(ctx, pairs, vectors, docName, page)
	}
	return nil
}
