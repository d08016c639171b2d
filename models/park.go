package models

import "strings"

// parkStrikeoutFactors maps each park to its strikeout-rate multiplier
// (1.0 = neutral). Empirically derived; parks not listed are neutral.
var parkStrikeoutFactors = map[string]float64{
	"Angel Stadium":               0.980,
	"Busch Stadium":               0.970,
	"Chase Field":                 1.030,
	"Citizens Bank Park":          1.020,
	"Citi Field":                  1.030,
	"Comerica Park":               0.950,
	"Coors Field":                 0.930,
	"Dodger Stadium":              1.000,
	"Fenway Park":                 0.960,
	"Globe Life Field":            0.980,
	"Great American Ball Park":    1.070,
	"Guaranteed Rate Field":       1.050,
	"Kauffman Stadium":            0.960,
	"loanDepot Park":              0.970,
	"Minute Maid Park":            1.010,
	"Nationals Park":              1.020,
	"Oakland Coliseum":            0.940,
	"Oracle Park":                 1.030,
	"Petco Park":                  0.970,
	"PNC Park":                    1.000,
	"Progressive Field":           0.990,
	"Rogers Centre":               1.000,
	"T-Mobile Park":               0.980,
	"Target Field":                1.000,
	"Tropicana Field":             0.980,
	"Truist Park":                 1.030,
	"Wrigley Field":               1.010,
	"Yankee Stadium":              1.050,
	"American Family Field":       1.020,
	"Oriole Park at Camden Yards": 1.010,
}

// ParkStrikeoutFactor looks up a park's strikeout multiplier. The match is
// substring-tolerant: "Camden Yards" resolves to the Oriole Park entry.
// Returns the official park name and factor, or false when nothing matches.
func ParkStrikeoutFactor(parkName string) (string, float64, bool) {
	normalized := strings.ToLower(strings.TrimSpace(parkName))
	if normalized == "" {
		return "", 1.0, false
	}
	for official, factor := range parkStrikeoutFactors {
		if strings.Contains(strings.ToLower(official), normalized) {
			return official, factor, true
		}
	}
	return "", 1.0, false
}

// ExactParkFactor looks a park up by its exact official name, returning
// the neutral 1.0 factor when the park is unknown. Used by innings
// scaling, which keys parks exactly.
func ExactParkFactor(parkName string) (float64, bool) {
	if factor, ok := parkStrikeoutFactors[parkName]; ok {
		return factor, true
	}
	return 1.0, false
}
