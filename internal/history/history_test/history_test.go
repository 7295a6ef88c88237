package history_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/history"
)

func TestIndexAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("Questions are embedded in pair order", func(t *testing.T) {
		var embedded []string
		embedder := &MockEmbedder{
			OnBatchEmbedding: func(ctx context.Context, texts []string) ([][]float32, error) {
				embedded = texts
				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{float32(i), 1}
				}
				return vectors, nil
			},
		}
		index := &MockIndex{}
		svc := history.NewService(index, embedder)

		pairs := []docModel.QA{
			{Question: "What is the total?", Answer: "$12"},
			{Question: "Who signed it?", Answer: "J. Doe"},
		}
		if err := svc.IndexAnswers(ctx, "invoice.pdf", 1, pairs); err != nil {
			t.Fatalf("IndexAnswers failed: %v", err)
		}

		want := []string{"What is the total?", "Who signed it?"}
		if !reflect.DeepEqual(embedded, want) {
			t.Errorf("Embedded %v, want %v", embedded, want)
		}
		if len(index.UpsertedPairs) != 2 || len(index.UpsertedVectors) != 2 {
			t.Errorf("Upsert got %d pairs and %d vectors, want 2 and 2",
				len(index.UpsertedPairs), len(index.UpsertedVectors))
		}
	})

	t.Run("Nothing to index is a no-op", func(t *testing.T) {
		embedder := &MockEmbedder{
			OnBatchEmbedding: func(ctx context.Context, texts []string) ([][]float32, error) {
				t.Error("Embedder should not run for zero pairs")
				return nil, nil
			},
		}
		svc := history.NewService(&MockIndex{}, embedder)
		if err := svc.IndexAnswers(ctx, "invoice.pdf", 1, nil); err != nil {
			t.Errorf("Expected nil for no pairs, got %v", err)
		}
	})

	t.Run("Embedding failure stops the upsert", func(t *testing.T) {
		embedder := &MockEmbedder{
			OnBatchEmbedding: func(ctx context.Context, texts []string) ([][]float32, error) {
				return nil, errors.New("api limit")
			},
		}
		index := &MockIndex{
			OnUpsert: func(ctx context.Context, pairs []docModel.QA, vectors [][]float32, docName string, page int) error {
				t.Error("Upsert should not run when embedding failed")
				return nil
			},
		}
		svc := history.NewService(index, embedder)

		err := svc.IndexAnswers(ctx, "invoice.pdf", 1, []docModel.QA{{Question: "q", Answer: "a"}})
		if err == nil {
			t.Error("Expected the embedding error to surface")
		}
	})
}

func TestSimilarQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Query vector and limit reach the index", func(t *testing.T) {
		queryVector := []float32{0.5, 0.25}
		embedder := &MockEmbedder{
			OnGetEmbedding: func(ctx context.Context, query string) ([]float32, error) {
				if query != "What is the total?" {
					t.Errorf("Embedder got %q", query)
				}
				return queryVector, nil
			},
		}
		index := &MockIndex{
			OnSearch: func(ctx context.Context, vector []float32, limit int) ([]docModel.HistoryMatch, error) {
				if !reflect.DeepEqual(vector, queryVector) {
					t.Errorf("Search got vector %v, want %v", vector, queryVector)
				}
				if limit != 3 {
					t.Errorf("Search got limit %d, want 3", limit)
				}
				return []docModel.HistoryMatch{{Question: "What was the total?", Score: 0.91}}, nil
			},
		}
		svc := history.NewService(index, embedder)

		matches, err := svc.SimilarQuestions(ctx, "What is the total?", 3)
		if err != nil {
			t.Fatalf("SimilarQuestions failed: %v", err)
		}
		if len(matches) != 1 || matches[0].Score != 0.91 {
			t.Errorf("Unexpected matches: %v", matches)
		}
	})

	t.Run("Embedding failure surfaces", func(t *testing.T) {
		embedder := &MockEmbedder{
			OnGetEmbedding: func(ctx context.Context, query string) ([]float32, error) {
				return nil, errors.New("provider down")
			},
		}
		svc := history.NewService(&MockIndex{}, embedder)

		if _, err := svc.SimilarQuestions(ctx, "anything", 5); err == nil {
			t.Error("Expected the embedding error to surface")
		}
	})
}
