package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const testKey = "ccai:history"

func newRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewRedisStore(rdb, testKey)
}

func stores(t *testing.T) map[string]Store {
	_, rs := newRedisStore(t)
	return map[string]Store{
		"memory": NewMemoryStore(testKey),
		"redis":  rs,
	}
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Millisecond)
		return cur
	}
}

func TestLogger_NewestFirst(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := NewLogger(store, zap.NewNop())
			l.now = fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

			a, err := l.Log(ctx, model.HistoryResumeCreated, map[string]interface{}{"name": "A"})
			if err != nil {
				t.Fatalf("log A: %v", err)
			}
			b, err := l.Log(ctx, model.HistoryATSScored, nil)
			if err != nil {
				t.Fatalf("log B: %v", err)
			}

			got, err := l.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 records, got %d", len(got))
			}
			if got[0].ID != b.ID || got[1].ID != a.ID {
				t.Fatalf("expected [B, A], got [%s, %s]", got[0].ID, got[1].ID)
			}
			if got[1].Meta["name"] != "A" {
				t.Fatalf("meta not preserved: %v", got[1].Meta)
			}
			if !got[0].At.Equal(b.At) {
				t.Fatalf("timestamp changed: %v != %v", got[0].At, b.At)
			}
		})
	}
}

func TestLogger_RecordShape(t *testing.T) {
	l := NewLogger(NewMemoryStore(testKey), zap.NewNop())
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	l.now = func() time.Time { return at }

	rec, err := l.Log(context.Background(), model.HistoryJobScraped, map[string]interface{}{"url": "https://x"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	want := fmt.Sprintf("job_scraped-%d", at.UnixMilli())
	if rec.ID != want {
		t.Fatalf("id = %q, want %q", rec.ID, want)
	}
	if rec.At.Location() != time.UTC {
		t.Fatalf("timestamp must be UTC, got %v", rec.At.Location())
	}
}

func TestLogger_UnknownKind(t *testing.T) {
	l := NewLogger(NewMemoryStore(testKey), zap.NewNop())
	_, err := l.Log(context.Background(), model.HistoryKind("bogus"), nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLogger_EmptyListIsNotNil(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := NewLogger(store, zap.NewNop()).List(context.Background())
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", got)
			}
		})
	}
}

func TestLogger_Clear(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := NewLogger(store, zap.NewNop())
			if _, err := l.Log(ctx, model.HistoryChatAsked, nil); err != nil {
				t.Fatalf("log: %v", err)
			}
			if err := l.Clear(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			got, _ := l.List(ctx)
			if len(got) != 0 {
				t.Fatalf("expected empty after clear, got %d", len(got))
			}
		})
	}
}

func TestRedisStore_CorruptDataTreatedAsEmpty(t *testing.T) {
	mr, store := newRedisStore(t)
	ctx := context.Background()

	if err := mr.Set(testKey, "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v (err %v)", got, err)
	}

	l := NewLogger(store, zap.NewNop())
	if _, err := l.Log(ctx, model.HistoryResumeExported, nil); err != nil {
		t.Fatalf("log over corrupt data: %v", err)
	}
	got, _ = store.List(ctx)
	if len(got) != 1 || got[0].Type != model.HistoryResumeExported {
		t.Fatalf("expected single fresh record, got %+v", got)
	}
}

func TestRedisStore_ConcurrentPrepends(t *testing.T) {
	_, store := newRedisStore(t)
	l := NewLogger(store, zap.NewNop())
	ctx := context.Background()

	const writers = 5
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Log(ctx, model.HistoryResumeUpdated, nil); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent log: %v", err)
	}

	got, _ := store.List(ctx)
	if len(got) != writers {
		t.Fatalf("expected %d records, got %d", writers, len(got))
	}
}

func TestMemoryStore_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("a")
	if err := s.Prepend(ctx, model.HistoryRecord{ID: "x", Type: model.HistoryChatAsked}); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	s.key = "b"
	got, _ := s.List(ctx)
	if len(got) != 0 {
		t.Fatalf("slot b should be empty, got %d", len(got))
	}
}
