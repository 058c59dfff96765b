// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pulse/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// client is the shared Redis connection. A nil client means the cache is
// unavailable and every helper in this package degrades to a no-op.
var client *redis.Client

// commandErrorHook feeds failed commands into the Redis error counter.
// redis.Nil is a cache miss, not an error.
type commandErrorHook struct {
	count func(command string)
}

func (h commandErrorHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h commandErrorHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			h.count(cmd.Name())
		}
		return err
	}
}

func (h commandErrorHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			h.count("pipeline")
		}
		return err
	}
}

// parseOptions accepts either a full redis:// URL or a bare host:port.
func parseOptions(addr string) (*redis.Options, error) {
	if strings.Contains(addr, "://") {
		return redis.ParseURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}

// InitRedis dials Redis at addr and installs the shared client. The caller
// decides what a failure means; the rest of this package treats a missing
// client as "no cache" rather than an error.
func InitRedis(addr string) error {
	opts, err := parseOptions(addr)
	if err != nil {
		return fmt.Errorf("invalid redis address %q: %w", addr, err)
	}

	c := redis.NewClient(opts)
	c.AddHook(commandErrorHook{count: func(command string) {
		middleware.RedisErrors.WithLabelValues(command).Inc()
	}})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping %s: %w", opts.Addr, err)
	}

	client = c
	return nil
}

// GetClient returns the current Redis client instance, nil when unavailable.
func GetClient() *redis.Client {
	return client
}

// Close releases the shared client. Safe to call when Redis was never reached.
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
