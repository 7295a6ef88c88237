package history

import (
	"context"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/history/embedding"
	"github.com/akolanti/DocVQA/internal/history/vectorDB"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

// Service is all the rest of the app gets to see. The embedder and the
// vector client stay behind it, so tests swap them for mocks through
// NewService and nothing else has to change.
//
// Indexing is strictly off the answer path: an upload gets its answers
// whether or not this service is even configured.
type Service interface {
	IndexAnswers(ctx context.Context, docName string, page int, pairs []docModel.QA) error
	SimilarQuestions(ctx context.Context, question string, limit int) ([]docModel.HistoryMatch, error)
}

type service struct {
	index    vectorDB.QuestionIndex
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

// NewService constructor
func NewService(index vectorDB.QuestionIndex, em embedding.Embedder) Service {
	return &service{
		index:    index,
		embedder: em,
		logger:   logger_i.NewLogger("History Service :"),
	}
}

func (s *service) IndexAnswers(ctx context.Context, docName string, page int, pairs []docModel.QA) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	if len(pairs) == 0 {
		return nil
	}

	questions := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		questions = append(questions, pair.Question)
	}

	start := time.Now()
	vectors, err := s.embedder.BatchEmbedding(ctx, questions)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	if err != nil {
		log.Error("Embedding for history index failed", "error", err)
		return err
	}

	if err := s.index.UpsertQuestions(ctx, pairs, vectors, docName, page); err != nil {
		log.Error("History upsert failed", "error", err)
		return err
	}

	log.Debug("Indexed answered questions", "count", len(pairs))
	return nil
}

func (s *service) SimilarQuestions(ctx context.Context, question string, limit int) ([]docModel.HistoryMatch, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	start := time.Now()
	vector, err := s.embedder.GetEmbedding(ctx, question)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	if err != nil {
		log.Error("Embedding for history search failed", "error", err)
		return nil, err
	}

	return s.index.SearchQuestions(ctx, vector, limit)
}
