package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entity.Order // key: order number
}

// NewMemoryOrderRepository returns an order store backed by process memory.
func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[string]entity.Order),
	}
}

func (m *memoryOrderRepository) Save(ctx context.Context, order entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[order.Number] = order
	return nil
}

func (m *memoryOrderRepository) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, exists := m.orders[number]
	if !exists {
		return nil, nil
	}
	return &order, nil
}

func (m *memoryOrderRepository) ListByPhone(ctx context.Context, phone string, limit int) ([]entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.Order
	for _, order := range m.orders {
		if order.CustomerPhone == phone {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryOrderRepository) UpdateStatus(ctx context.Context, number, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, exists := m.orders[number]
	if !exists {
		return fmt.Errorf("order not found: %s", number)
	}
	order.Status = status
	m.orders[number] = order
	return nil
}
