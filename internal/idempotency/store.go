// Package idempotency replays the stored response of a create request when a
// client resubmits it with the same Idempotency-Key.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// DefaultTTL is how long a key and its stored response are kept
const DefaultTTL = 24 * time.Hour

// Outcome is the result of claiming a key
type Outcome int

const (
	// Acquired means the caller owns the key and must Complete or Release it
	Acquired Outcome = iota
	// InProgress means another request holds the key and has not finished
	InProgress
	// Completed means a response is stored for the key
	Completed
)

// Response is a stored HTTP response
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store keeps idempotency keys in Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses url and verifies the server answers
func NewRedisClient(ctx context.Context, url string, logger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis", slog.String("addr", opts.Addr))

	return client, nil
}

// NewStore creates a store over client. A non-positive ttl uses DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Begin claims key. When the key already holds a finished response it is
// returned with Completed.
func (s *Store) Begin(ctx context.Context, key string) (Outcome, *Response, error) {
	// A key can expire between SETNX and GET, so claim at most twice.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, key, pendingMarker, s.ttl).Result()
		if err != nil {
			return 0, nil, fmt.Errorf("failed to claim idempotency key: %w", err)
		}
		if ok {
			return Acquired, nil, nil
		}

		raw, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return 0, nil, fmt.Errorf("failed to read idempotency key: %w", err)
		}

		if raw == pendingMarker {
			return InProgress, nil, nil
		}

		var resp Response
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			return 0, nil, fmt.Errorf("failed to decode stored response: %w", err)
		}
		return Completed, &resp, nil
	}

	return InProgress, nil, nil
}

// Complete stores the response for a key claimed with Begin
func (s *Store) Complete(ctx context.Context, key string, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}
	return nil
}

// Release drops a claimed key so the client may retry with it
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

// Health checks if Redis is reachable
func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
