package parser

import (
	"testing"
	"time"
)

func TestParseRow(t *testing.T) {
	now := time.Now()

	item, ok := parseRow([]string{"r1", "Alfombra 2 m. x 3 m.", "38500", "alfombra"}, now)
	if !ok {
		t.Fatal("parseRow() rejected a valid row")
	}
	if item.ID != "r1" || item.Name != "ALFOMBRA 2 M. X 3 M." || item.Price != 38500 || item.Category != "ALFOMBRA" {
		t.Fatalf("parseRow() = %+v", item)
	}
	if !item.Active {
		t.Fatal("imported items start active")
	}
}

func TestParseRowTwoColumns(t *testing.T) {
	item, ok := parseRow([]string{"Cortina talla m", "18.500"}, time.Now())
	if !ok {
		t.Fatal("parseRow() rejected a two-column row")
	}
	if item.Name != "CORTINA TALLA M" || item.Price != 18500 {
		t.Fatalf("parseRow() = %+v", item)
	}
	if item.ID == "" {
		t.Fatal("rows without an ID get a generated one")
	}
}

func TestParseRowRejectsHeader(t *testing.T) {
	if _, ok := parseRow([]string{"ID", "NOMBRE", "PRECIO", "CATEGORIA"}, time.Now()); ok {
		t.Fatal("parseRow() accepted a header row")
	}
	if _, ok := parseRow(nil, time.Now()); ok {
		t.Fatal("parseRow() accepted an empty row")
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"38500", 38500},
		{"38.500", 38500},
		{"$38.500", 38500},
	}
	for _, c := range cases {
		got, err := parsePrice(c.in)
		if err != nil {
			t.Fatalf("parsePrice(%q) error = %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
