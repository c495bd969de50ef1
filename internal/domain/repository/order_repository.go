package repository

import (
	"context"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// OrderRepository stores service orders for status lookups.
type OrderRepository interface {
	Save(ctx context.Context, order entity.Order) error
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
	ListByPhone(ctx context.Context, phone string, limit int) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, number, status string) error
}
