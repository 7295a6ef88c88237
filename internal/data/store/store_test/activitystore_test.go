package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/data/redisStore"
	"github.com/akolanti/DocVQA/internal/data/store"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testEntry(id string) activityModel.ActivityEntry {
	return activityModel.ActivityEntry{
		Id:            id,
		TraceId:       "trace-" + id,
		Document:      "invoice.pdf",
		Page:          1,
		QuestionCount: 2,
		Status:        activityModel.StatusAnswered,
		ElapsedMs:     1842,
		CreatedTime:   time.Now().UTC(),
	}
}

func TestRedisActivityStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	activityStore := store.TestActivityStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Newest entry comes back first", func(t *testing.T) {
		for _, id := range []string{"first", "second", "third"} {
			if err := activityStore.Append(ctx, testEntry(id)); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}

		entries, err := activityStore.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(entries))
		}
		if entries[0].Id != "third" || entries[2].Id != "first" {
			t.Errorf("Wrong order: got %s ... %s, want third ... first", entries[0].Id, entries[2].Id)
		}
	})

	t.Run("Limit cuts the list", func(t *testing.T) {
		entries, err := activityStore.Recent(ctx, 2)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(entries))
		}
		if entries[0].Id != "third" {
			t.Errorf("Expected third first, got %s", entries[0].Id)
		}
	})

	t.Run("Feed has a TTL", func(t *testing.T) {
		if mr.TTL("activity:recent") <= 0 {
			t.Error("Expected the activity list to expire eventually")
		}
	})

	t.Run("Old entries fall off the cap", func(t *testing.T) {
		for i := 0; i < config.ActivityLogMaxEntries+5; i++ {
			if err := activityStore.Append(ctx, testEntry(fmt.Sprintf("bulk-%d", i))); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}
		entries, err := activityStore.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != config.ActivityLogMaxEntries {
			t.Errorf("Expected the cap of %d entries, got %d", config.ActivityLogMaxEntries, len(entries))
		}
		if entries[0].Id != fmt.Sprintf("bulk-%d", config.ActivityLogMaxEntries+4) {
			t.Errorf("Newest bulk entry should lead the list, got %s", entries[0].Id)
		}
	})
}

func TestRedisActivityStore_SkipsBadEntries(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	activityStore := store.TestActivityStore(redisStore.NewTestStore(client))

	ctx := context.Background()
	if err := activityStore.Append(ctx, testEntry("good")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	//something else wrote junk into the list
	mr.Lpush("activity:recent", "{not json")

	entries, err := activityStore.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Id != "good" {
		t.Errorf("Expected only the good entry to survive, got %v", entries)
	}
}

func TestInMemoryActivityStore(t *testing.T) {
	memStore := store.InitInMemoryActivityStore()
	ctx := context.Background()

	t.Run("Newest entry comes back first", func(t *testing.T) {
		for _, id := range []string{"first", "second", "third"} {
			if err := memStore.Append(ctx, testEntry(id)); err != nil {
				t.Fatalf("Append failed: %v", err)
			}
		}
		entries, err := memStore.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 3 || entries[0].Id != "third" {
			t.Errorf("Wrong order or count: %v", entries)
		}
	})

	t.Run("Limit larger than the list is fine", func(t *testing.T) {
		entries, err := memStore.Recent(ctx, 50)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 3 {
			t.Errorf("Expected all 3 entries, got %d", len(entries))
		}
	})

	t.Run("Old entries fall off the cap", func(t *testing.T) {
		for i := 0; i < config.ActivityLogMaxEntries+5; i++ {
			_ = memStore.Append(ctx, testEntry(fmt.Sprintf("bulk-%d", i)))
		}
		entries, _ := memStore.Recent(ctx, 0)
		if len(entries) != config.ActivityLogMaxEntries {
			t.Errorf("Expected the cap of %d entries, got %d", config.ActivityLogMaxEntries, len(entries))
		}
	})
}

// Both stores feed the same endpoint, their ordering has to agree.
func TestActivityStores_OrderingParity(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisBacked := store.TestActivityStore(redisStore.NewTestStore(client))
	memBacked := store.InitInMemoryActivityStore()

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c", "d"} {
		entry := testEntry(id)
		if err := redisBacked.Append(ctx, entry); err != nil {
			t.Fatalf("Redis append failed: %v", err)
		}
		if err := memBacked.Append(ctx, entry); err != nil {
			t.Fatalf("Memory append failed: %v", err)
		}
	}

	fromRedis, err := redisBacked.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Redis recent failed: %v", err)
	}
	fromMem, err := memBacked.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Memory recent failed: %v", err)
	}

	if len(fromRedis) != len(fromMem) {
		t.Fatalf("Length mismatch: redis %d, memory %d", len(fromRedis), len(fromMem))
	}
	for i := range fromRedis {
		if fromRedis[i].Id != fromMem[i].Id {
			t.Errorf("Position %d: redis has %s, memory has %s", i, fromRedis[i].Id, fromMem[i].Id)
		}
	}
}
