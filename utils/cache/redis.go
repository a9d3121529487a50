package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key so the API can share a Redis instance
const KeyPrefix = "unimatch:"

var ErrNotFound = errors.New("key not found in cache")

// releaseScript deletes a lock only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// windowScript counts a hit and starts the window whenever the key has no TTL
var windowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisCache backs the roommate cache, the offer generation lock and the
// chat rate limiter
type RedisCache struct {
	client *redis.Client
}

func key(k string) string {
	return KeyPrefix + k
}

func keys(ks []string) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = key(k)
	}
	return out
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_URL")
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "redis ping failed")
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Get returns ErrNotFound for a missing key
func (r *RedisCache) Get(ctx context.Context, k string) (string, error) {
	val, err := r.client.Get(ctx, key(k)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetJSON stores a JSON-encoded value in cache
func (r *RedisCache) SetJSON(ctx context.Context, k string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cache value %s", k)
	}
	return r.client.Set(ctx, key(k), jsonData, expiration).Err()
}

// GetJSON retrieves and decodes a JSON value from cache
func (r *RedisCache) GetJSON(ctx context.Context, k string, dest interface{}) error {
	val, err := r.Get(ctx, k)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes keys from cache
func (r *RedisCache) Delete(ctx context.Context, ks ...string) error {
	return r.client.Del(ctx, keys(ks)...).Err()
}

// Increment increments a counter and returns the new value
func (r *RedisCache) Increment(ctx context.Context, k string) (int64, error) {
	return r.client.Incr(ctx, key(k)).Result()
}

// IncrementWindow increments a fixed-window counter. The count and its expiry
// are set in one script, so a counter never outlives its window.
func (r *RedisCache) IncrementWindow(ctx context.Context, k string, window time.Duration) (int64, error) {
	n, err := windowScript.Run(ctx, r.client, []string{key(k)}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, errors.Wrapf(err, "counting %s", k)
	}
	return n, nil
}

// TTL returns the remaining time to live of a key
func (r *RedisCache) TTL(ctx context.Context, k string) (time.Duration, error) {
	return r.client.TTL(ctx, key(k)).Result()
}

// AcquireLock takes key for ttl if nobody holds it. token identifies the holder.
func (r *RedisCache) AcquireLock(ctx context.Context, k, token string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key(k), token, ttl).Result()
}

// ReleaseLock drops key if token still holds it
func (r *RedisCache) ReleaseLock(ctx context.Context, k, token string) error {
	return releaseScript.Run(ctx, r.client, []string{key(k)}, token).Err()
}

// HealthCheck pings the server
func (r *RedisCache) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
