package usecase

import "testing"

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}

func TestExpandTermsMeasurementAndAlias(t *testing.T) {
	terms := ExpandTerms("alfombra 2x3")

	if !containsTerm(terms, "alfombra 2x3") {
		t.Fatalf("expanded terms %v should keep the verbatim text", terms)
	}
	if !containsTerm(terms, "2 M. X 3 M.") {
		t.Fatalf("expanded terms %v should contain the canonical measurement", terms)
	}
	if !containsTerm(terms, "ALFOMBRA") {
		t.Fatalf("expanded terms %v should contain the catalog alias", terms)
	}
}

func TestExpandTermsMultipleAliases(t *testing.T) {
	terms := ExpandTerms("frazada")
	if !containsTerm(terms, "COBERTOR") || !containsTerm(terms, "FRAZADA") {
		t.Fatalf("frazada should expand to both COBERTOR and FRAZADA, got %v", terms)
	}
}

func TestExpandTermsWholePhraseAlias(t *testing.T) {
	terms := ExpandTerms("plaza y media")
	if !containsTerm(terms, "1 1/2 PL") {
		t.Fatalf("plaza y media should expand to the bed size code, got %v", terms)
	}
}

func TestExpandTermsDeduplicates(t *testing.T) {
	terms := ExpandTerms("alfombra alfombras")
	count := 0
	for _, term := range terms {
		if term == "ALFOMBRA" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("ALFOMBRA appears %d times, want 1 (terms %v)", count, terms)
	}
}

func TestExpandTermsNeverEmpty(t *testing.T) {
	terms := ExpandTerms("zapato")
	if len(terms) == 0 {
		t.Fatal("unknown words still yield the verbatim term")
	}
	if terms[0] != "zapato" {
		t.Fatalf("terms[0] = %q, want %q", terms[0], "zapato")
	}
}
