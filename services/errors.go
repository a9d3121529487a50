package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNoMarks              = errors.New("no marks submitted")
	ErrGenerationInProgress = errors.New("offer generation already in progress")
	ErrOfferNotActive       = errors.New("offer is no longer active")
	ErrAcceptanceClosed     = errors.New("acceptance deadline has passed")
	ErrUnknownCondition     = errors.New("offer has no such condition")
	ErrStorageDisabled      = errors.New("document storage is not configured")
)

// DocumentError rejects an uploaded file
type DocumentError struct {
	Problem string
}

func (e *DocumentError) Error() string {
	return e.Problem
}

// DefaultStoreTimeout bounds each store call when none is configured
const DefaultStoreTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, d)
}
