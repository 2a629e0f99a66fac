// Package throttle counts login attempts per key inside a sliding window.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another login attempt is permitted for key.
// Attempt counts the attempt in the same step that checks the limit, so
// concurrent attempts can never all pass; Reset forgets them after a success.
type Limiter interface {
	Attempt(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// Nop never throttles. It is used when no redis address is configured.
type Nop struct{}

func (Nop) Attempt(context.Context, string) (bool, error) { return true, nil }
func (Nop) Reset(context.Context, string) error            { return nil }

// RedisLimiter keeps one sorted set of attempt timestamps per key.
type RedisLimiter struct {
	client    redis.UniversalClient
	keyPrefix string
	limit     int
	window    time.Duration
}

var _ Limiter = (*RedisLimiter)(nil)

func NewRedisLimiter(client redis.UniversalClient, keyPrefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		keyPrefix: keyPrefix,
		limit:     limit,
		window:    window,
	}
}

// attemptScript prunes the window, counts it and reserves a slot in one step.
// It returns {1, remaining} when the attempt is admitted and {0, 0} otherwise.
var attemptScript = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current = redis.call('ZCARD', key)
	if current >= limit then
		return {0, 0}
	end

	local counter = redis.call('INCR', key .. ':seq')
	redis.call('ZADD', key, now, now .. ':' .. counter)

	local expire_seconds = math.ceil(window_ms / 1000)
	redis.call('EXPIRE', key, expire_seconds)
	redis.call('EXPIRE', key .. ':seq', expire_seconds)
	return {1, limit - current - 1}
`)

// Attempt admits and records one attempt, or reports false once the window is full.
func (l *RedisLimiter) Attempt(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	redisKey := l.keyPrefix + key

	res, err := attemptScript.Run(ctx, l.client, []string{redisKey},
		now.UnixMilli(),
		now.Add(-l.window).UnixMilli(),
		l.limit,
		l.window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return false, fmt.Errorf("throttle attempt: %w", err)
	}
	if len(res) != 2 {
		return false, fmt.Errorf("throttle attempt: unexpected reply length %d", len(res))
	}
	return res[0] == 1, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	redisKey := l.keyPrefix + key
	return l.client.Del(ctx, redisKey, redisKey+":seq").Err()
}

// LoginKey scopes attempts to a username from one client address.
func LoginKey(username, clientIP string) string {
	return username + "|" + clientIP
}
