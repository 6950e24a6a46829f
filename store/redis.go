package store

import (
	"context"
	"encoding/json"
	"fmt"

	"adspanel/models"

	"github.com/redis/go-redis/v9"
)

const orderKeyPrefix = "order:"

// RedisStore keeps one JSON document per user under order:<userID>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %v", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Put(ctx context.Context, userID string, fields models.OrderFields, orderID string) (string, error) {
	var rec models.OrderRecord

	raw, err := s.client.Get(ctx, orderKeyPrefix+userID).Result()
	if err != nil && err != redis.Nil {
		return "", err
	}
	if err == nil {
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return "", fmt.Errorf("corrupt order record for %s: %v", userID, err)
		}
	}

	apply(&rec, userID, fields, orderID)

	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, orderKeyPrefix+userID, b, 0).Err(); err != nil {
		return "", err
	}
	return rec.OrderID, nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*models.OrderRecord, error) {
	raw, err := s.client.Get(ctx, orderKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec models.OrderRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisStore) All(ctx context.Context) ([]models.OrderRecord, error) {
	var out []models.OrderRecord

	iter := s.client.Scan(ctx, 0, orderKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := s.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}
		var rec models.OrderRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, orderKeyPrefix+userID).Err()
}
