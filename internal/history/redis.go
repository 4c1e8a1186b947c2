package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 10

var ErrConflict = errors.New("history: too many concurrent writers")

// RedisStore keeps the JSON list under a single key. Writes run inside
// WATCH so concurrent prepends never drop records.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Prepend(ctx context.Context, rec model.HistoryRecord) error {
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, s.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		b, err := json.Marshal(prepend(decodeList(raw), rec))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, b, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.rdb.Watch(ctx, txf, s.key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("redis prepend: %w", err)
	}
	return ErrConflict
}

func (s *RedisStore) List(ctx context.Context) ([]model.HistoryRecord, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis list: %w", err)
	}
	return decodeList(raw), nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis clear: %w", err)
	}
	return nil
}
