package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// KeyPrefix namespaces session keys, e.g. "dialect:session:".
	KeyPrefix string
	// TTL expires idle conversations; zero disables expiry.
	TTL time.Duration
}

// RedisStore keeps sessions in Redis as JSON values. Every Put refreshes
// the TTL, so an idle conversation eventually falls back to the default
// session on next contact.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session: redis ping: %w", err)
	}

	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "dialect:session:"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: opts.TTL}, nil
}

// Get returns the stored session, or the default one when the key is
// missing or holds a value this version cannot decode.
func (r *RedisStore) Get(ctx context.Context, senderID string) (Session, error) {
	data, err := r.client.Get(ctx, r.prefix+senderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: redis get: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// Stale or corrupt payload: restart the conversation.
		return New(), nil
	}
	return s, nil
}

// Put stores the session and refreshes its TTL.
func (r *RedisStore) Put(ctx context.Context, senderID string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+senderID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
