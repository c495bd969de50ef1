package usecase

import "strings"

// priceWords mark a message as asking for a price even without a service
// keyword.
var priceWords = []string{
	"precio", "precios", "cuesta", "cuestan", "vale", "valen",
	"cuánto", "cuanto", "cotizar", "cotización", "cotizacion",
	"lavado", "lavar", "limpieza",
}

// LooksLikePriceQuery reports whether a message should go through the
// product resolution pipeline: it names a service, carries a measurement,
// or uses pricing vocabulary.
func LooksLikePriceQuery(text string) bool {
	if detectService(text) != "" {
		return true
	}
	if ParseMeasurement(text) != nil {
		return true
	}
	lower := strings.ToLower(text)
	for _, w := range priceWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
