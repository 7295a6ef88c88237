package docqa_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

// MockProvider implements vqa.Provider
type MockProvider struct {
	AnsweredCount int32
	OnAnswer      func(ctx context.Context, page docModel.PageImage, question string) (string, error)
}

func (m *MockProvider) AnswerQuestion(ctx context.Context, page docModel.PageImage, question string) (string, error) {
	atomic.AddInt32(&m.AnsweredCount, 1)
	if m.OnAnswer != nil {
		return m.OnAnswer(ctx, page, question)
	}
	return "answer to " + question, nil
}

// MockActivityStore records every appended entry so tests can check
// what the service logged about a request.
type MockActivityStore struct {
	mutex    sync.Mutex
	Entries  []activityModel.ActivityEntry
	OnAppend func(ctx context.Context, entry activityModel.ActivityEntry) error
}

func (m *MockActivityStore) Append(ctx context.Context, entry activityModel.ActivityEntry) error {
	m.mutex.Lock()
	m.Entries = append(m.Entries, entry)
	m.mutex.Unlock()
	if m.OnAppend != nil {
		return m.OnAppend(ctx, entry)
	}
	return nil
}

func (m *MockActivityStore) Recent(ctx context.Context, limit int) ([]activityModel.ActivityEntry, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if limit <= 0 || limit > len(m.Entries) {
		limit = len(m.Entries)
	}
	result := make([]activityModel.ActivityEntry, limit)
	copy(result, m.Entries[:limit])
	return result, nil
}

func (m *MockActivityStore) LastEntry() (activityModel.ActivityEntry, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.Entries) == 0 {
		return activityModel.ActivityEntry{}, false
	}
	return m.Entries[len(m.Entries)-1], true
}

// MockHistoryService implements history.Service
type MockHistoryService struct {
	IndexedCount       int32
	OnIndexAnswers     func(ctx context.Context, docName string, page int, pairs []docModel.QA) error
	OnSimilarQuestions func(ctx context.Context, question string, limit int) ([]docModel.HistoryMatch, error)
}

func (m *MockHistoryService) IndexAnswers(ctx context.Context, docName string, page int, pairs []docModel.QA) error {
	atomic.AddInt32(&m.IndexedCount, 1)
	if m.OnIndexAnswers != nil {
		return m.OnIndexAnswers(ctx, docName, page, pairs)
	}
	return nil
}

func (m *MockHistoryService) SimilarQuestions(ctx context.Context, question string, limit int) ([]docModel.HistoryMatch, error) {
	if m.OnSimilarQuestions != nil {
		return m.OnSimilarQuestions(ctx, question, limit)
	}
	return nil, nil
}
