package models

import (
	"math"
	"testing"
)

func TestParseInnings(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"6.1", 6.0 + 1.0/3.0},
		{"7.2", 7.0 + 2.0/3.0},
		{"5.0", 5.0},
		{"6", 6.0},
		{"0.2", 2.0 / 3.0},
		{"6.5", 6.0}, // not thirds notation, keep the whole innings
		{"", 0.0},
		{"abc", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseInnings(tt.raw)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("ParseInnings(%q) = %f, expected %f", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestFormatInnings(t *testing.T) {
	tests := []struct {
		ip       float64
		expected string
	}{
		{6.0 + 1.0/3.0, "6.1"},
		{7.0 + 2.0/3.0, "7.2"},
		{5.0, "5"},
	}

	for _, tt := range tests {
		if got := FormatInnings(tt.ip); got != tt.expected {
			t.Errorf("FormatInnings(%f) = %q, expected %q", tt.ip, got, tt.expected)
		}
	}
}

func TestProfileLogOrder(t *testing.T) {
	profile := &PitcherProfile{
		Logs: []GameLog{
			{Strikeouts: 7, InningsPitched: 6.0},
			{Strikeouts: 9, InningsPitched: 6.33},
			{Strikeouts: 5, InningsPitched: 5.0},
		},
	}

	ks := profile.RecentStrikeouts()
	if len(ks) != 3 || ks[0] != 7 || ks[2] != 5 {
		t.Errorf("RecentStrikeouts did not preserve log order: %v", ks)
	}

	ip := profile.RecentInnings()
	if len(ip) != 3 || ip[0] != 6.0 {
		t.Errorf("RecentInnings did not preserve log order: %v", ip)
	}
}
