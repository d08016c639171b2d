package models

import (
	"strconv"
	"strings"
)

// GameLog is a single start from a pitcher's season log.
// Logs are ordered chronologically (oldest first); recency weighting
// depends on that order.
type GameLog struct {
	Strikeouts     int     `json:"strikeouts"`
	InningsPitched float64 `json:"innings_pitched"`
}

// PitcherRatings holds the season-level rate stats for a pitcher from the
// reference stat table. Zero values are replaced with league baselines by
// the modifier library.
type PitcherRatings struct {
	StuffPlus      float64 `json:"stuff_plus"`
	KPct           float64 `json:"k_pct"`
	SwStrPct       float64 `json:"swstr_pct"`
	CSWPct         float64 `json:"csw_pct"`
	FastballVelo   float64 `json:"fastball_velo"`
	ChasePct       float64 `json:"chase_pct"`
	ZoneContactPct float64 `json:"zone_contact_pct"`
	PutawayVsLHB   string  `json:"putaway_vs_lhb"`
	PutawayVsRHB   string  `json:"putaway_vs_rhb"`
}

// PitcherProfile combines a pitcher's identity with their game logs.
type PitcherProfile struct {
	Name string    `json:"name"`
	Hand string    `json:"hand"` // "L" or "R"
	Team string    `json:"team"`
	Logs []GameLog `json:"logs"`
}

// RecentStrikeouts returns the strikeout totals in log order.
func (p *PitcherProfile) RecentStrikeouts() []float64 {
	out := make([]float64, len(p.Logs))
	for i, g := range p.Logs {
		out[i] = float64(g.Strikeouts)
	}
	return out
}

// RecentInnings returns the innings-pitched values in log order.
func (p *PitcherProfile) RecentInnings() []float64 {
	out := make([]float64, len(p.Logs))
	for i, g := range p.Logs {
		out[i] = g.InningsPitched
	}
	return out
}

// ParseInnings converts baseball innings notation to a decimal value.
// The fractional digit counts outs: "6.1" is 6 1/3 innings, "7.2" is
// 7 2/3. Any other fraction falls back to the whole-inning count, and
// unparseable input returns 0.
func ParseInnings(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0.0
	}

	if !strings.Contains(raw, ".") {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0.0
		}
		return v
	}

	parts := strings.SplitN(raw, ".", 2)
	whole, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0.0
	}

	switch parts[1] {
	case "1":
		return float64(whole) + 1.0/3.0
	case "2":
		return float64(whole) + 2.0/3.0
	default:
		return float64(whole)
	}
}

// FormatInnings renders a decimal innings value back into thirds notation
// for display ("6.33" style values become "6.1").
func FormatInnings(ip float64) string {
	whole := int(ip)
	frac := ip - float64(whole)

	switch {
	case frac >= 0.5:
		return strconv.Itoa(whole) + ".2"
	case frac >= 0.2:
		return strconv.Itoa(whole) + ".1"
	default:
		return strconv.Itoa(whole)
	}
}
