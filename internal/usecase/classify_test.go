package usecase

import "testing"

func TestLooksLikePriceQuery(t *testing.T) {
	positives := []string{
		"alfombra 2x3",
		"cuanto cuesta lavar una frazada",
		"precio de cortinas",
		"la de 2x3",
		"poltrona",
	}
	for _, text := range positives {
		if !LooksLikePriceQuery(text) {
			t.Fatalf("LooksLikePriceQuery(%q) = false, want true", text)
		}
	}

	negatives := []string{
		"hola",
		"gracias",
		"a qué hora abren",
	}
	for _, text := range negatives {
		if LooksLikePriceQuery(text) {
			t.Fatalf("LooksLikePriceQuery(%q) = true, want false", text)
		}
	}
}
