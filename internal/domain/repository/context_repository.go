package repository

import (
	"context"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// ContextRepository stores per-customer conversational state keyed by
// customer identifier. Get returns (nil, nil) when no context exists yet.
type ContextRepository interface {
	Get(ctx context.Context, customerID string) (*entity.CustomerContext, error)
	Save(ctx context.Context, record *entity.CustomerContext) error

	// DeleteExpired evicts contexts idle for longer than ttl and reports
	// how many were removed.
	DeleteExpired(ctx context.Context, ttl time.Duration) (int, error)
}
