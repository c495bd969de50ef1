package entity

import (
	"strconv"
	"strings"
	"time"
)

// CatalogItem is one priced service row from the catalog. The catalog is
// append-only per ID: every price change inserts a new row with a newer
// LastUpdated, and only the newest row per ID is visible to queries.
type CatalogItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	LastUpdated time.Time `json:"last_updated"`
}

// MeasurementPair is a width x length pair in meters extracted from free text
// or from a catalog item name.
type MeasurementPair struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// CanonicalForm renders the pair in the catalog's textual convention,
// e.g. "1,6 M. X 2,3 M.". Decimal separator is always a comma.
// The result depends only on Width and Length.
func (m MeasurementPair) CanonicalForm() string {
	return formatMeters(m.Width) + " M. X " + formatMeters(m.Length) + " M."
}

// Diff returns the aggregate absolute difference against another pair.
// It is the distance function for nearest-numeric catalog matching.
func (m MeasurementPair) Diff(other MeasurementPair) float64 {
	return abs(m.Width-other.Width) + abs(m.Length-other.Length)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func formatMeters(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1)
}

// MatchKind classifies a catalog lookup result.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchSingle
	MatchMultiple
)

// MatchResult is the outcome of a catalog match. Item is set for
// MatchSingle, Candidates for MatchMultiple.
type MatchResult struct {
	Kind       MatchKind
	Item       CatalogItem
	Candidates []CatalogItem
}

// Single wraps one item as a resolved result.
func Single(item CatalogItem) MatchResult {
	return MatchResult{Kind: MatchSingle, Item: item}
}

// Multiple wraps an ambiguous candidate list.
func Multiple(candidates []CatalogItem) MatchResult {
	return MatchResult{Kind: MatchMultiple, Candidates: candidates}
}

// None is the empty result.
func None() MatchResult {
	return MatchResult{Kind: MatchNone}
}
