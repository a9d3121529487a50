package services

import (
	"context"
	"time"
)

//go:generate mockgen -source=./interfaces.go -package=svcmocks -destination=mocks/interfaces.mock.go

// Cache is the subset of utils/cache.RedisCache the services rely on.
// A nil Cache disables caching and locking.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string) (int64, error)
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// DocumentStore keeps uploaded offer documents
type DocumentStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
