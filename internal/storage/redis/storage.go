// Package redis provides a Redis-backed key/value store.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/tether-travel/tether/internal/logging"
)

const defaultOpTimeout = 3 * time.Second

// ErrEmptyKey indicates a write without a key.
var ErrEmptyKey = errors.New("redis storage: key cannot be empty")

// Options configures the connection.
type Options struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
	// OpTimeout bounds every Get and Set.
	OpTimeout time.Duration
}

// Storage stores values as plain Redis strings without expiry.
type Storage struct {
	client    *goredis.Client
	prefix    string
	opTimeout time.Duration
}

// New connects to Redis and verifies the connection with a PING.
func New(opts Options) (*Storage, error) {
	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis storage: ping %s: %w", opts.Addr, err)
	}

	opTimeout := opts.OpTimeout
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &Storage{client: client, prefix: opts.KeyPrefix, opTimeout: opTimeout}, nil
}

// Close closes the client connection pool.
func (s *Storage) Close() error {
	return s.client.Close()
}

// Get returns the value stored under key. redis.Nil and connection failures
// both read as absence; the latter is logged.
func (s *Storage) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false
	}
	if err != nil {
		logging.Warn("redis storage: read failed", "entry", key, "error", err)
		return "", false
	}
	return val, true
}

// Set stores value under key with no expiry.
func (s *Storage) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis storage: set %s: %w", key, err)
	}
	return nil
}
