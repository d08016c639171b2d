package projection

import (
	"log"
	"math"

	"projection-engine/models"
)

// DefaultEWMAAlpha is the decay rate used when the caller does not
// override it; roughly the last five starts carry 80% of the weight.
const DefaultEWMAAlpha = 0.25

// CalculateEWMA computes an exponentially weighted moving average of
// values ordered oldest first, with the most recent value weighted
// heaviest. An empty series falls back to the league-average innings
// baseline.
func CalculateEWMA(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return models.LeagueAvgInnings
	}

	n := len(values)
	weights := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		w := math.Exp(-alpha * float64(n-1-i))
		weights[i] = w
		total += w
	}

	var ewma float64
	for i, v := range values {
		ewma += v * weights[i] / total
	}
	return ewma
}

// ScaleIPMean adjusts a pitcher's expected innings for the run
// environment of the park and the opposing offense. A whiff-prone,
// weak-contact opponent extends outings; a patient, productive one
// shortens them. The combined factor is held inside [0.8, 1.2] of the
// base so a single bad input cannot swing the workload wildly.
func ScaleIPMean(baseIP float64, opponent, pitcherHand, park string, trends models.TrendTables) float64 {
	parkFactor, parkKnown := lookupParkFactor(park)

	recent, recentOK := resolveTeamRow(trends.Recent(pitcherHand), opponent)
	delta, deltaOK := resolveTeamRow(trends.Delta(pitcherHand), opponent)

	if !parkKnown && !recentOK && !deltaOK {
		log.Printf("ip scaling: no park or trend data for %s at %s, using clamped base", opponent, park)
		return clamp(baseIP, 4.0, 6.5)
	}

	factor := parkFactor
	if recentOK {
		kPct := recent.NormalizedKPct()
		if kPct <= 0 {
			kPct = models.LeagueAvgTeamKPct
		}
		factor *= math.Sqrt(kPct / models.LeagueAvgTeamKPct)
	}
	if deltaOK {
		factor *= math.Pow(100.0/(100.0+delta.WRCDelta), 0.3)
	}

	return baseIP * clamp(factor, 0.8, 1.2)
}

func lookupParkFactor(park string) (float64, bool) {
	if park == "" {
		return 1.0, false
	}
	return models.ExactParkFactor(park)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
