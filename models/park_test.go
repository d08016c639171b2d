package models

import "testing"

func TestParkStrikeoutFactor(t *testing.T) {
	tests := []struct {
		name     string
		park     string
		expected float64
		found    bool
	}{
		{"exact name", "Coors Field", 0.930, true},
		{"partial name", "Camden Yards", 1.010, true},
		{"case insensitive", "coors field", 0.930, true},
		{"unknown park", "Polo Grounds", 1.0, false},
		{"empty", "", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, factor, ok := ParkStrikeoutFactor(tt.park)
			if ok != tt.found {
				t.Fatalf("ParkStrikeoutFactor(%q) found = %v, expected %v", tt.park, ok, tt.found)
			}
			if factor != tt.expected {
				t.Errorf("ParkStrikeoutFactor(%q) = %f, expected %f", tt.park, factor, tt.expected)
			}
		})
	}
}

func TestExactParkFactor(t *testing.T) {
	if factor, ok := ExactParkFactor("Great American Ball Park"); !ok || factor != 1.070 {
		t.Errorf("ExactParkFactor exact match = %f, %v", factor, ok)
	}
	// Exact lookup does not tolerate partial names
	if _, ok := ExactParkFactor("Camden Yards"); ok {
		t.Error("ExactParkFactor matched a partial name")
	}
	if factor, _ := ExactParkFactor("Unknown Park"); factor != 1.0 {
		t.Errorf("unknown park factor = %f, expected neutral", factor)
	}
}
