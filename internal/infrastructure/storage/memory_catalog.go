package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu sync.RWMutex
	// versions keeps every appended row per item ID; only the row with the
	// newest LastUpdated is visible to queries.
	versions map[string][]entity.CatalogItem
}

// NewMemoryCatalogRepository returns a catalog store backed by process
// memory. Used in development and in tests; the query semantics mirror the
// Postgres implementation.
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{
		versions: make(map[string][]entity.CatalogItem),
	}
}

func (m *memoryCatalogRepository) SaveMany(ctx context.Context, items []entity.CatalogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range items {
		m.versions[item.ID] = append(m.versions[item.ID], item)
	}
	return nil
}

// latest returns the newest visible row per ID, skipping inactive items.
func (m *memoryCatalogRepository) latest() []entity.CatalogItem {
	out := make([]entity.CatalogItem, 0, len(m.versions))
	for _, rows := range m.versions {
		newest := rows[0]
		for _, row := range rows[1:] {
			if row.LastUpdated.After(newest.LastUpdated) {
				newest = row
			}
		}
		if newest.Active {
			out = append(out, newest)
		}
	}
	return out
}

func (m *memoryCatalogRepository) SearchAny(ctx context.Context, terms []string, limit int) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.CatalogItem
	for _, item := range m.latest() {
		if matchesAnyTerm(item.Name, terms) {
			out = append(out, item)
		}
	}
	sortForRelevance(out, terms)
	return truncate(out, limit), nil
}

func (m *memoryCatalogRepository) SearchAll(ctx context.Context, terms []string, category string, limit int) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.CatalogItem
	for _, item := range m.latest() {
		if category != "" && !containsFold(item.Name, category) {
			continue
		}
		if matchesAllTerms(item.Name, terms) {
			out = append(out, item)
		}
	}
	sortForRelevance(out, terms)
	return truncate(out, limit), nil
}

func (m *memoryCatalogRepository) GetByCategory(ctx context.Context, category string, limit int) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.CatalogItem
	for _, item := range m.latest() {
		if containsFold(item.Name, category) {
			out = append(out, item)
		}
	}
	sortForRelevance(out, nil)
	return truncate(out, limit), nil
}

func matchesAnyTerm(name string, terms []string) bool {
	for _, t := range terms {
		if t != "" && containsFold(name, t) {
			return true
		}
	}
	return false
}

func matchesAllTerms(name string, terms []string) bool {
	for _, t := range terms {
		if t != "" && !containsFold(name, t) {
			return false
		}
	}
	return len(terms) > 0
}

func containsFold(name, sub string) bool {
	return strings.Contains(strings.ToUpper(name), strings.ToUpper(sub))
}

// sortForRelevance orders results the way customers expect to read them:
// names starting with a query term first, then shorter names, then cheaper
// items.
func sortForRelevance(items []entity.CatalogItem, terms []string) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := prefixRank(items[i].Name, terms), prefixRank(items[j].Name, terms)
		if pi != pj {
			return pi < pj
		}
		if len(items[i].Name) != len(items[j].Name) {
			return len(items[i].Name) < len(items[j].Name)
		}
		return items[i].Price < items[j].Price
	})
}

func prefixRank(name string, terms []string) int {
	upper := strings.ToUpper(name)
	for _, t := range terms {
		if t != "" && strings.HasPrefix(upper, strings.ToUpper(t)) {
			return 0
		}
	}
	return 1
}

func truncate(items []entity.CatalogItem, limit int) []entity.CatalogItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
