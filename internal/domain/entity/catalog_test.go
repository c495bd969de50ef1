package entity

import (
	"testing"
)

func TestCanonicalForm(t *testing.T) {
	cases := []struct {
		pair MeasurementPair
		want string
	}{
		{MeasurementPair{Width: 2, Length: 3}, "2 M. X 3 M."},
		{MeasurementPair{Width: 1.6, Length: 2.3}, "1,6 M. X 2,3 M."},
		{MeasurementPair{Width: 0.6, Length: 1.1}, "0,6 M. X 1,1 M."},
	}
	for _, c := range cases {
		if got := c.pair.CanonicalForm(); got != c.want {
			t.Fatalf("CanonicalForm(%v) = %q, want %q", c.pair, got, c.want)
		}
	}
}

func TestDiff(t *testing.T) {
	a := MeasurementPair{Width: 2, Length: 2.9}
	b := MeasurementPair{Width: 2, Length: 3}
	if got := a.Diff(b); got < 0.09 || got > 0.11 {
		t.Fatalf("Diff() = %v, want about 0.1", got)
	}
	if a.Diff(b) != b.Diff(a) {
		t.Fatal("Diff() must be symmetric")
	}
}

func TestAppendTurnCapsHistory(t *testing.T) {
	c := &CustomerContext{CustomerID: "c1"}
	for i := 0; i < 15; i++ {
		c.AppendTurn(ConversationTurn{ID: string(rune('a' + i))}, 10)
	}
	if len(c.Turns) != 10 {
		t.Fatalf("len(Turns) = %d, want 10", len(c.Turns))
	}
	if c.Turns[0].ID != "f" {
		t.Fatalf("oldest kept turn = %q, want %q", c.Turns[0].ID, "f")
	}
}
