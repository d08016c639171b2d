package models

// PitchCategory groups individual pitch types into the three buckets the
// batter reference table is split by.
type PitchCategory string

const (
	Breaking PitchCategory = "Breaking"
	Fastball PitchCategory = "Fastball"
	Offspeed PitchCategory = "Offspeed"
)

// pitchCategoryMap maps Statcast pitch-type codes to categories.
var pitchCategoryMap = map[string]PitchCategory{
	"SL": Breaking, "CU": Breaking, "KC": Breaking,
	"FF": Fastball, "SI": Fastball, "FC": Fastball,
	"CH": Offspeed, "FS": Offspeed, "KN": Offspeed,
}

// PitchCategoryFor returns the category for a pitch-type code, defaulting
// to Breaking for unknown codes.
func PitchCategoryFor(code string) PitchCategory {
	if cat, ok := pitchCategoryMap[code]; ok {
		return cat
	}
	return Breaking
}

// BatterPitchStats is a batter's performance against one pitch category.
type BatterPitchStats struct {
	KPercent     float64 `json:"k_percent"`
	WOBA         float64 `json:"woba"`
	WhiffPercent float64 `json:"whiff_percent"`
	PutAway      float64 `json:"put_away"`
}

// Batter is one opposing lineup slot, with stats for the pitch category
// being modeled. Matched reports whether the stats came from a real
// reference record or the league-average fallback; it propagates into the
// vulnerability modifier's match-rate coverage.
type Batter struct {
	Name    string           `json:"name"`
	Hand    string           `json:"hand"` // "L" or "R"
	Stats   BatterPitchStats `json:"stats"`
	Matched bool             `json:"matched"`
	Pitch   PitchCategory    `json:"pitch_category"`
}

// Lineup is the set of batters expected to face the pitcher. Order does
// not affect any computation; only count and handedness mix matter.
type Lineup []Batter

// LeftHandedCount returns how many batters in the lineup hit left-handed.
func (l Lineup) LeftHandedCount() int {
	n := 0
	for _, b := range l {
		if b.Hand == "L" {
			n++
		}
	}
	return n
}

// defaultBatterStats holds the league-average fallback rows used when a
// batter has no reference record.
var defaultBatterStats = map[PitchCategory]BatterPitchStats{
	Breaking: {KPercent: 0.25, WOBA: 0.320, WhiffPercent: 0.30, PutAway: 0.18},
	Fastball: {KPercent: 0.18, WOBA: 0.350, WhiffPercent: 0.15, PutAway: 0.12},
	Offspeed: {KPercent: 0.22, WOBA: 0.330, WhiffPercent: 0.25, PutAway: 0.16},
}

// DefaultBatterStats returns the league-average row for a pitch category.
func DefaultBatterStats(cat PitchCategory) BatterPitchStats {
	if stats, ok := defaultBatterStats[cat]; ok {
		return stats
	}
	return defaultBatterStats[Breaking]
}
