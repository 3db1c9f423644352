package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix     = "cart:"
	cooldownKeyPrefix = "contact:last:"

	// Abandoned carts expire on their own; every save refreshes the clock.
	cartTTL     = 7 * 24 * time.Hour
	cooldownTTL = time.Hour
)

type RedisCartStore struct{ Client *redis.Client }

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	raw, err := s.Client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &entity.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}
	var c entity.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKeyPrefix+cart.SessionID, raw, cartTTL).Err()
}

// Delete is a single DEL: the persisted cart disappears atomically.
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, cartKeyPrefix+sessionID).Err()
}

func (s *RedisCartStore) LastSent(ctx context.Context, sessionID string) (int64, bool, error) {
	raw, err := s.Client.Get(ctx, cooldownKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return unix, true, nil
}

func (s *RedisCartStore) MarkSent(ctx context.Context, sessionID string, unix int64) error {
	return s.Client.Set(ctx, cooldownKeyPrefix+sessionID,
		strconv.FormatInt(unix, 10), cooldownTTL).Err()
}
