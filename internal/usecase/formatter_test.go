package usecase

import (
	"strings"
	"testing"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{38500, "$38.500"},
		{500, "$500"},
		{1234567, "$1.234.567"},
		{0, "$0"},
		{12499.6, "$12.500"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.in); got != c.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatItem(t *testing.T) {
	item := entity.CatalogItem{Name: "ALFOMBRA 2 M. X 3 M.", Price: 38500}
	if got := FormatItem(item); got != "ALFOMBRA 2 M. X 3 M.: $38.500" {
		t.Fatalf("FormatItem() = %q", got)
	}
}

func TestFormatCandidatesListsEveryItem(t *testing.T) {
	candidates := []entity.CatalogItem{
		{Name: "CORTINA TALLA S", Price: 15000, Category: "CORTINA"},
		{Name: "CORTINA TALLA M", Price: 18000, Category: "CORTINA"},
	}
	out := FormatCandidates(candidates, QuestionForAxis(AxisSize))

	for _, c := range candidates {
		if !strings.Contains(out, c.Name) {
			t.Fatalf("output misses %q:\n%s", c.Name, out)
		}
		if !strings.Contains(out, FormatPrice(c.Price)) {
			t.Fatalf("output misses price of %q:\n%s", c.Name, out)
		}
	}
	if !strings.Contains(out, "tamaño") {
		t.Fatalf("output misses the size question:\n%s", out)
	}
}

func TestFormatCandidatesGroupsByCategory(t *testing.T) {
	candidates := []entity.CatalogItem{
		{Name: "ALFOMBRA 1 M. X 2 M.", Price: 20000, Category: "ALFOMBRA"},
		{Name: "ALFOMBRA 2 M. X 3 M.", Price: 38500, Category: "ALFOMBRA"},
		{Name: "CORTINA TALLA M", Price: 18000, Category: "CORTINA"},
	}
	out := FormatCandidates(candidates, "")

	if !strings.Contains(out, "ALFOMBRA (entre $20.000 y $38.500):") {
		t.Fatalf("output misses the rug group with its price range:\n%s", out)
	}
	if !strings.Contains(out, "CORTINA:") {
		t.Fatalf("output misses the curtain group:\n%s", out)
	}
}

// The formatter only speaks about what the match result contains, plus its
// fixed sentences.
func TestFormatterNeverInventsNames(t *testing.T) {
	candidates := []entity.CatalogItem{
		{Name: "COBERTOR 2 PL", Price: 12000, Category: "COBERTOR"},
	}
	out := FormatCandidates(candidates, "")

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.Contains(line, "COBERTOR") {
			t.Fatalf("unexpected content %q in:\n%s", line, out)
		}
	}
}

func TestFormatResultNotFound(t *testing.T) {
	if got := FormatResult(entity.None()); got != FormatNotFound() {
		t.Fatalf("FormatResult(None) = %q, want the fixed not-found text", got)
	}
}
