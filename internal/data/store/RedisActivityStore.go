package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/data/redisStore"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

const activityListKey = "activity:recent"

type RedisActivityStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisActivityStore returns nil when Redis is unreachable so the
// caller can fall back to the in-memory store.
func GetRedisActivityStore(ctx context.Context) *RedisActivityStore {
	redisBacked := redisStore.GetRedisStore(ctx, config.RedisActivityStore)
	if redisBacked == nil {
		return nil
	}
	return &RedisActivityStore{
		store:  redisBacked,
		logger: logger_i.NewLogger("ActivityStore"),
	}
}

func (s *RedisActivityStore) Append(ctx context.Context, entry activityModel.ActivityEntry) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "entry Id", entry.Id)
	log.Debug("saving activity entry")
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	if err := s.store.ListPrepend(ctx, activityListKey, data); err != nil {
		return err
	}
	//keep the list capped, oldest entries fall off the end
	if err := s.store.ListTrim(ctx, activityListKey, 0, int64(config.ActivityLogMaxEntries)-1); err != nil {
		return err
	}
	return s.store.Expire(ctx, activityListKey, config.RedisActivityStoreTTL)
}

func (s *RedisActivityStore) Recent(ctx context.Context, limit int) ([]activityModel.ActivityEntry, error) {
	if limit <= 0 || limit > config.ActivityLogMaxEntries {
		limit = config.ActivityLogMaxEntries
	}
	raw, err := s.store.ListRange(ctx, activityListKey, 0, int64(limit)-1)
	if err != nil {
		return nil, err
	}

	entries := make([]activityModel.ActivityEntry, 0, len(raw))
	for _, item := range raw {
		var entry activityModel.ActivityEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.logger.Error("Skipping activity entry that would not unmarshal", "err", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func TestActivityStore(store *redisStore.Store) *RedisActivityStore {
	return &RedisActivityStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
