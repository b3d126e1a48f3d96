package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	redisSummaryKey = "feedback:preferences"
	redisLogKey     = "feedback:events"
)

// RedisStore keeps the preference summary in a hash and the event log in
// a list.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (Counters, error) {
	values, err := s.client.HGetAll(ctx, redisSummaryKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load preference counters: %w", err)
	}

	counters := Counters{}
	for name, raw := range values {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse counter %q: %w", name, err)
		}
		counters[name] = count
	}
	return counters, nil
}

func (s *RedisStore) Save(ctx context.Context, counters Counters) error {
	if len(counters) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(counters))
	for name, count := range counters {
		fields[name] = count
	}
	if err := s.client.HSet(ctx, redisSummaryKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to save preference counters: %w", err)
	}
	return nil
}

func (s *RedisStore) Append(ctx context.Context, event Event) error {
	line, err := json.Marshal(newLogEntry(event))
	if err != nil {
		return fmt.Errorf("failed to marshal feedback event: %w", err)
	}
	if err := s.client.RPush(ctx, redisLogKey, line).Err(); err != nil {
		return fmt.Errorf("failed to append feedback event: %w", err)
	}
	return nil
}
