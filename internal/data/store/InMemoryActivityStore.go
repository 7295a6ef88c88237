package store

import (
	"context"
	"sync"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem ActivityStore")

// InMemoryActivityStore is the fallback when Redis is not around.
// Newest entry sits at index 0, same ordering the Redis store gives.
type InMemoryActivityStore struct {
	entryMutex *sync.RWMutex
	entries    []activityModel.ActivityEntry
	maxEntries int
}

func InitInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{
		entryMutex: new(sync.RWMutex),
		entries:    make([]activityModel.ActivityEntry, 0, config.ActivityLogMaxEntries),
		maxEntries: config.ActivityLogMaxEntries,
	}
}

func (store *InMemoryActivityStore) Append(ctx context.Context, entry activityModel.ActivityEntry) error {

	store.entryMutex.Lock()
	defer store.entryMutex.Unlock()
	store.entries = append([]activityModel.ActivityEntry{entry}, store.entries...)
	if len(store.entries) > store.maxEntries {
		store.entries = store.entries[:store.maxEntries]
	}
	inMemLogger.Debug("Saved activity entry", "id", entry.Id)
	return nil
}

func (store *InMemoryActivityStore) Recent(ctx context.Context, limit int) ([]activityModel.ActivityEntry, error) {
	store.entryMutex.RLock()
	defer store.entryMutex.RUnlock()
	if limit <= 0 || limit > len(store.entries) {
		limit = len(store.entries)
	}
	result := make([]activityModel.ActivityEntry, limit)
	copy(result, store.entries[:limit])
	return result, nil
}
