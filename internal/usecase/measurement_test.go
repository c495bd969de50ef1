package usecase

import (
	"testing"
)

func TestParseMeasurementBare(t *testing.T) {
	pair := ParseMeasurement("2x3")
	if pair == nil {
		t.Fatal("ParseMeasurement(2x3) = nil, want pair")
	}
	if pair.Width != 2 || pair.Length != 3 {
		t.Fatalf("ParseMeasurement(2x3) = %v x %v, want 2 x 3", pair.Width, pair.Length)
	}
	if got := pair.CanonicalForm(); got != "2 M. X 3 M." {
		t.Fatalf("CanonicalForm() = %q, want %q", got, "2 M. X 3 M.")
	}
}

func TestParseMeasurementCommaDecimals(t *testing.T) {
	pair := ParseMeasurement("1,6 x 2,3")
	if pair == nil {
		t.Fatal("ParseMeasurement(1,6 x 2,3) = nil, want pair")
	}
	if pair.Width != 1.6 || pair.Length != 2.3 {
		t.Fatalf("got %v x %v, want 1.6 x 2.3", pair.Width, pair.Length)
	}
	if got := pair.CanonicalForm(); got != "1,6 M. X 2,3 M." {
		t.Fatalf("CanonicalForm() = %q, want %q", got, "1,6 M. X 2,3 M.")
	}
}

func TestParseMeasurementContextual(t *testing.T) {
	for _, text := range []string{"la de 2x3", "una alfombra de 2x3", "el de 2 x 3"} {
		pair := ParseMeasurement(text)
		if pair == nil {
			t.Fatalf("ParseMeasurement(%q) = nil, want pair", text)
		}
		if pair.Width != 2 || pair.Length != 3 {
			t.Fatalf("ParseMeasurement(%q) = %v x %v, want 2 x 3", text, pair.Width, pair.Length)
		}
	}
}

func TestParseMeasurementWorded(t *testing.T) {
	pair := ParseMeasurement("una alfombra de 2 por 3")
	if pair == nil {
		t.Fatal("ParseMeasurement(2 por 3) = nil, want pair")
	}
	if pair.Width != 2 || pair.Length != 3 {
		t.Fatalf("got %v x %v, want 2 x 3", pair.Width, pair.Length)
	}
}

func TestParseMeasurementCentimeterHeuristic(t *testing.T) {
	pair := ParseMeasurement("cortina 120x140")
	if pair == nil {
		t.Fatal("ParseMeasurement(120x140) = nil, want pair")
	}
	if pair.Width != 1.2 || pair.Length != 1.4 {
		t.Fatalf("got %v x %v, want 1.2 x 1.4", pair.Width, pair.Length)
	}

	// One small value keeps both as meters.
	pair = ParseMeasurement("2x15")
	if pair == nil || pair.Width != 2 || pair.Length != 15 {
		t.Fatalf("ParseMeasurement(2x15) = %v, want 2 x 15", pair)
	}
}

func TestParseMeasurementCanonicalIsStable(t *testing.T) {
	// Reparsing a canonical form must return the same values even when
	// they exceed the centimeter threshold.
	pair := ParseMeasurement("12 M. X 14 M.")
	if pair == nil {
		t.Fatal("ParseMeasurement(12 M. X 14 M.) = nil, want pair")
	}
	if pair.Width != 12 || pair.Length != 14 {
		t.Fatalf("got %v x %v, want 12 x 14", pair.Width, pair.Length)
	}
	if got := pair.CanonicalForm(); got != "12 M. X 14 M." {
		t.Fatalf("CanonicalForm() = %q, want %q", got, "12 M. X 14 M.")
	}
}

func TestParseMeasurementNone(t *testing.T) {
	for _, text := range []string{"alfombra", "", "precio de cortinas", "0x3"} {
		if pair := ParseMeasurement(text); pair != nil {
			t.Fatalf("ParseMeasurement(%q) = %v, want nil", text, pair)
		}
	}
}

func TestParseItemMeasurement(t *testing.T) {
	pair := ParseItemMeasurement("ALFOMBRA 2 M. X 3 M.")
	if pair == nil {
		t.Fatal("ParseItemMeasurement = nil, want pair")
	}
	if pair.Width != 2 || pair.Length != 3 {
		t.Fatalf("got %v x %v, want 2 x 3", pair.Width, pair.Length)
	}
	if ParseItemMeasurement("POLTRONA TALLA M") != nil {
		t.Fatal("ParseItemMeasurement(no measurement) should be nil")
	}
}
