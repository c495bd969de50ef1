package repository

import (
	"context"
	"errors"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// ErrStoreUnavailable reports a catalog store connectivity or timeout
// failure that survived the internal reconnect-and-retry. It is the only
// error the resolver treats as a real failure; zero matches is not an error.
var ErrStoreUnavailable = errors.New("catalog store unavailable")

// CatalogRepository queries the priced service catalog. Implementations
// must only return active items, scoped to the configured tenant, and only
// the newest version per item ID.
type CatalogRepository interface {
	// SearchAny returns items whose name contains at least one of the
	// terms, ordered by whole-word prefix match first, then shorter names,
	// then ascending price.
	SearchAny(ctx context.Context, terms []string, limit int) ([]entity.CatalogItem, error)

	// SearchAll returns items whose name contains every term, restricted
	// to names that also contain the category token.
	SearchAll(ctx context.Context, terms []string, category string, limit int) ([]entity.CatalogItem, error)

	// GetByCategory returns items whose name contains the category token.
	GetByCategory(ctx context.Context, category string, limit int) ([]entity.CatalogItem, error)

	// SaveMany appends catalog item versions (price-list import).
	SaveMany(ctx context.Context, items []entity.CatalogItem) error
}
