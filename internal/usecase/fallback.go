package usecase

import (
	"fmt"
	"strings"
)

// fallbackPrices are reference prices served only when the catalog store is
// unreachable and the static fallback is enabled in configuration. They are
// deliberately generic: one price per service family, no variants.
var fallbackPrices = []struct {
	Keyword string
	Name    string
	Price   float64
}{
	{"poltrona", "POLTRONA", 25000},
	{"butaca", "POLTRONA", 25000},
	{"sofa", "SOFA", 35000},
	{"sofá", "SOFA", 35000},
	{"alfombra", "ALFOMBRA", 20000},
	{"tapete", "ALFOMBRA", 20000},
	{"cortina", "CORTINA", 18000},
	{"cobertor", "COBERTOR", 12000},
	{"frazada", "COBERTOR", 12000},
	{"silla", "SILLA", 15000},
}

// fallbackReply answers from the static table when the query names a known
// service family. The second return is false when nothing applies, in which
// case the caller falls back to the generic transient-error sentence.
func fallbackReply(query string) (string, bool) {
	lower := strings.ToLower(query)
	for _, entry := range fallbackPrices {
		if strings.Contains(lower, entry.Keyword) {
			return fmt.Sprintf("%s: %s (precio de referencia, sujeto a confirmación)",
				entry.Name, FormatPrice(entry.Price)), true
		}
	}
	return "", false
}
