package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type memoryContextRepository struct {
	mu       sync.RWMutex
	contexts map[string]*entity.CustomerContext
}

// NewMemoryContextRepository returns a per-customer context store backed by
// process memory. Contexts survive only as long as the process; idle ones
// are evicted by DeleteExpired.
func NewMemoryContextRepository() repository.ContextRepository {
	return &memoryContextRepository{
		contexts: make(map[string]*entity.CustomerContext),
	}
}

func (m *memoryContextRepository) Get(ctx context.Context, customerID string) (*entity.CustomerContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.contexts[customerID]
	if !exists {
		return nil, nil
	}
	// Copy so the caller can mutate freely before Save.
	clone := *record
	clone.Turns = append([]entity.ConversationTurn(nil), record.Turns...)
	return &clone, nil
}

func (m *memoryContextRepository) Save(ctx context.Context, record *entity.CustomerContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *record
	clone.Turns = append([]entity.ConversationTurn(nil), record.Turns...)
	m.contexts[record.CustomerID] = &clone
	return nil
}

func (m *memoryContextRepository) DeleteExpired(ctx context.Context, ttl time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, record := range m.contexts {
		if record.LastUsed.Before(cutoff) {
			delete(m.contexts, id)
			removed++
		}
	}
	return removed, nil
}
