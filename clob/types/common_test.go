package types

import (
	"testing"
)

func TestParseTickSize(t *testing.T) {
	for _, valid := range []string{"0.1", "0.01", "0.001", "0.0001"} {
		ts, ok := ParseTickSize(valid)
		if !ok {
			t.Fatalf("ParseTickSize(%q) rejected", valid)
		}
		if string(ts) != valid {
			t.Fatalf("ParseTickSize(%q) = %q", valid, ts)
		}
	}

	for _, invalid := range []string{"", "0", "0.5", "0.00001", "1", "abc"} {
		if _, ok := ParseTickSize(invalid); ok {
			t.Fatalf("ParseTickSize(%q) accepted", invalid)
		}
	}
}

func TestTickSizeDecimals(t *testing.T) {
	cases := map[TickSize]int32{
		TickSize01:    1,
		TickSize001:   2,
		TickSize0001:  3,
		TickSize00001: 4,
	}
	for ts, want := range cases {
		if got := ts.Decimals(); got != want {
			t.Fatalf("%q.Decimals() = %d, want %d", ts, got, want)
		}
	}
}

func TestTickSizeFloat(t *testing.T) {
	if TickSize001.Float() != 0.01 {
		t.Fatalf("Float() = %v", TickSize001.Float())
	}
	if TickSize00001.Float() != 0.0001 {
		t.Fatalf("Float() = %v", TickSize00001.Float())
	}
}
