package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
)

// Counter is the part of utils/cache.RedisCache the chat limiter needs
type Counter interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// ChatRateLimiter caps chat requests per student in a fixed window. It must
// run after AuthMiddleware.Required. Counter failures let the request through.
type ChatRateLimiter struct {
	counter Counter
	limit   int
	window  time.Duration
	log     zerolog.Logger
}

func NewChatRateLimiter(counter Counter, limit int, window time.Duration) *ChatRateLimiter {
	return &ChatRateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
		log:     logger.With("chat-limiter"),
	}
}

func (l *ChatRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := GetUserID(c)
		if !ok || l.counter == nil || l.limit <= 0 {
			return c.Next()
		}

		ctx := c.UserContext()
		key := fmt.Sprintf("chat:rate:%d", userID)
		count, err := l.counter.IncrementWindow(ctx, key, l.window)
		if err != nil {
			l.log.Warn().Err(err).Msg("Chat rate counter unavailable")
			return c.Next()
		}
		if count <= int64(l.limit) {
			return c.Next()
		}

		retryAfter := int(l.window.Seconds())
		if ttl, err := l.counter.TTL(ctx, key); err == nil && ttl > 0 {
			retryAfter = int(ttl.Seconds())
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
		return response.TooManyRequests(c, fmt.Sprintf("Chat limit reached. Try again in %d seconds", retryAfter))
	}
}
