package usecase

import (
	"context"
	"strings"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

// measurementCategories are the catalog categories whose item names carry
// measurements, in the order their customer keywords are checked.
var measurementCategories = []struct {
	keyword  string
	category string
}{
	{"alfombra", "ALFOMBRA"},
	{"tapete", "ALFOMBRA"},
	{"cortina", "CORTINA"},
	{"cobertor", "COBERTOR"},
	{"frazada", "COBERTOR"},
}

// CatalogMatcher resolves expanded search terms against the catalog store.
type CatalogMatcher struct {
	catalogRepo repository.CatalogRepository
	epsilon     float64
	limit       int
}

// NewCatalogMatcher builds a matcher. epsilon is the nearest-neighbor
// rejection threshold; non-positive values fall back to the default.
func NewCatalogMatcher(catalogRepo repository.CatalogRepository, epsilon float64) *CatalogMatcher {
	if epsilon <= 0 {
		epsilon = constants.DefaultMatchEpsilon
	}
	return &CatalogMatcher{
		catalogRepo: catalogRepo,
		epsilon:     epsilon,
		limit:       constants.DefaultQueryLimit,
	}
}

// Match runs the term query. When the raw text carried a measurement the
// lookup is exact-first with a nearest-numeric fallback inside the inferred
// category; otherwise it is a disjunctive substring search. A store error is
// returned as-is so the caller can distinguish it from "no results".
func (m *CatalogMatcher) Match(ctx context.Context, rawText string, terms []string, measure *entity.MeasurementPair) (entity.MatchResult, error) {
	if measure != nil {
		return m.matchByMeasurement(ctx, rawText, measure)
	}

	items, err := m.catalogRepo.SearchAny(ctx, terms, m.limit)
	if err != nil {
		return entity.MatchResult{}, err
	}
	return classify(items), nil
}

func (m *CatalogMatcher) matchByMeasurement(ctx context.Context, rawText string, measure *entity.MeasurementPair) (entity.MatchResult, error) {
	category := inferCategory(rawText)

	// Exact pass: the canonical form embedded in an item name of the
	// category.
	exact, err := m.catalogRepo.SearchAll(ctx, []string{measure.CanonicalForm()}, category, m.limit)
	if err != nil {
		return entity.MatchResult{}, err
	}
	if len(exact) > 0 {
		return classify(exact), nil
	}

	// Nearest-numeric pass over every measurable item of the category.
	items, err := m.catalogRepo.GetByCategory(ctx, category, constants.DefaultCategoryFetchLimit)
	if err != nil {
		return entity.MatchResult{}, err
	}

	var (
		best     entity.CatalogItem
		bestDiff float64
		found    bool
	)
	for _, item := range items {
		pair := ParseItemMeasurement(item.Name)
		if pair == nil {
			continue
		}
		diff := measure.Diff(*pair)
		if !found || diff < bestDiff {
			best = item
			bestDiff = diff
			found = true
		}
	}
	// Boundary diffs count as close enough; the slack absorbs float noise
	// like |2.9-3| landing a hair above 0.1.
	if found && bestDiff <= m.epsilon+1e-9 {
		return entity.Single(best), nil
	}
	if len(items) == 0 {
		return entity.None(), nil
	}
	// No close enough size: hand back the whole category so the caller can
	// offer alternatives instead of guessing a wrong one.
	return entity.Multiple(items), nil
}

// inferCategory picks the catalog category for a measurement query from
// keywords in the raw text, defaulting to rugs.
func inferCategory(rawText string) string {
	lower := strings.ToLower(rawText)
	for _, mc := range measurementCategories {
		if strings.Contains(lower, mc.keyword) {
			return mc.category
		}
	}
	return constants.DefaultCategory
}

func classify(items []entity.CatalogItem) entity.MatchResult {
	switch len(items) {
	case 0:
		return entity.None()
	case 1:
		return entity.Single(items[0])
	default:
		return entity.Multiple(items)
	}
}
