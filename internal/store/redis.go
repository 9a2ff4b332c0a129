package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pridecenter/pride-backend/internal/models"
)

const (
	wizardKeyPrefix  = "wizard:"
	revokedKeyPrefix = "revoked:"
)

// NewRedisClient parses url and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisWizardStore keeps each session as a JSON string under wizard:<id>.
type RedisWizardStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ WizardStore = (*RedisWizardStore)(nil)

func NewRedisWizardStore(client *redis.Client, ttl time.Duration) *RedisWizardStore {
	return &RedisWizardStore{client: client, ttl: ttl}
}

// Get returns the session and pushes its expiry out by another ttl.
func (s *RedisWizardStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	key := wizardKey(id)
	var get *redis.StringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get wizard %s: %w", id, err)
	}
	raw, err := get.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get wizard %s: %w", id, err)
	}

	var session models.WizardSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode wizard %s: %w", id, err)
	}
	return &session, nil
}

func (s *RedisWizardStore) Save(ctx context.Context, session *models.WizardSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode wizard %s: %w", session.ID, err)
	}
	if err := s.client.Set(ctx, wizardKey(session.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save wizard %s: %w", session.ID, err)
	}
	return nil
}

func (s *RedisWizardStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, wizardKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete wizard %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RedisDenylist stores revoked:<jti> with an expiry equal to the token's.
type RedisDenylist struct {
	client *redis.Client
}

var _ TokenDenylist = (*RedisDenylist)(nil)

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func wizardKey(id string) string {
	return wizardKeyPrefix + id
}
