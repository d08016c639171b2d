package models

import "testing"

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"canonical code", "NYY", "NYY", true},
		{"lowercase code", "nyy", "NYY", true},
		{"alternate abbreviation", "WSN", "WSH", true},
		{"fangraphs abbreviation", "SFG", "SF", true},
		{"full name", "Milwaukee Brewers", "MIL", true},
		{"nickname", "Yankees", "NYY", true},
		{"punctuated", "A's", "OAK", true},
		{"whitespace", "  TB  ", "TB", true},
		{"unknown", "Montreal Expos", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTeam(tt.input)
			if ok != tt.found {
				t.Fatalf("NormalizeTeam(%q) found = %v, expected %v", tt.input, ok, tt.found)
			}
			if got != tt.expected {
				t.Errorf("NormalizeTeam(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHomePark(t *testing.T) {
	park, ok := HomePark("Rockies")
	if !ok || park != "Coors Field" {
		t.Errorf("HomePark(Rockies) = %q, %v", park, ok)
	}
	if _, ok := HomePark("nowhere"); ok {
		t.Error("HomePark matched an unknown team")
	}
}

func TestNormalizedKPct(t *testing.T) {
	if got := (TeamTrendRow{KPct: 19.5}).NormalizedKPct(); got != 0.195 {
		t.Errorf("percentage-scale K%% = %f, expected 0.195", got)
	}
	if got := (TeamTrendRow{KPct: 0.195}).NormalizedKPct(); got != 0.195 {
		t.Errorf("decimal-scale K%% = %f, expected 0.195", got)
	}
}
