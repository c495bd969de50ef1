package usecase

import (
	"testing"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

func namedItems(names ...string) []entity.CatalogItem {
	items := make([]entity.CatalogItem, len(names))
	for i, name := range names {
		items[i] = entity.CatalogItem{ID: name, Name: name, Price: 10000, Active: true}
	}
	return items
}

func TestDisambiguateMeasurementAxis(t *testing.T) {
	candidates := namedItems(
		"ALFOMBRA 1 M. X 2 M.",
		"ALFOMBRA 2 M. X 3 M.",
		"ALFOMBRA 3 M. X 4 M.",
	)

	d := Disambiguate("alfombra", candidates)
	if d.Resolved != nil {
		t.Fatalf("Resolved = %v, want nil (query gave no measurement)", d.Resolved)
	}
	if d.Axis != AxisMeasurement {
		t.Fatalf("Axis = %q, want %q", d.Axis, AxisMeasurement)
	}
	if len(d.Candidates) != 3 {
		t.Fatalf("Candidates = %d, want 3", len(d.Candidates))
	}
}

func TestDisambiguateSizeAnswerResolves(t *testing.T) {
	candidates := namedItems(
		"CORTINA TALLA S",
		"CORTINA TALLA M",
		"CORTINA TALLA L",
	)

	d := Disambiguate("cortina mediana", candidates)
	if d.Axis != AxisSize {
		t.Fatalf("Axis = %q, want %q", d.Axis, AxisSize)
	}
	if d.Resolved == nil {
		t.Fatal("Resolved = nil, want the TALLA M curtain")
	}
	if d.Resolved.Name != "CORTINA TALLA M" {
		t.Fatalf("Resolved = %q, want CORTINA TALLA M", d.Resolved.Name)
	}
}

func TestDisambiguateMaterialAxis(t *testing.T) {
	candidates := namedItems(
		"CHAQ CUERO",
		"CHAQ GAMUZA",
	)

	d := Disambiguate("chaqueta", candidates)
	if d.Axis != AxisMaterial {
		t.Fatalf("Axis = %q, want %q", d.Axis, AxisMaterial)
	}
}

func TestDisambiguateNoAxis(t *testing.T) {
	candidates := namedItems(
		"SERVICIO NORTE",
		"SERVICIO SUR",
	)

	d := Disambiguate("servicio", candidates)
	if d.Axis != "" {
		t.Fatalf("Axis = %q, want empty for unclassifiable variants", d.Axis)
	}
	if d.Resolved != nil {
		t.Fatal("Resolved should stay nil; the resolver never guesses")
	}
}

func TestDisambiguateMeasurementAnswerFilters(t *testing.T) {
	candidates := namedItems(
		"ALFOMBRA 1 M. X 2 M.",
		"ALFOMBRA 2 M. X 3 M.",
	)

	d := Disambiguate("la de 2x3", candidates)
	if d.Resolved == nil {
		t.Fatal("Resolved = nil, want the 2x3 rug")
	}
	if d.Resolved.Name != "ALFOMBRA 2 M. X 3 M." {
		t.Fatalf("Resolved = %q, want ALFOMBRA 2 M. X 3 M.", d.Resolved.Name)
	}
}
