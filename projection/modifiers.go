package projection

import (
	"log"

	"projection-engine/models"
)

// Strikeout modifiers. Each one maps a contextual signal to a
// multiplier near 1.0, clamped so no single signal can dominate the
// projection. The composer blends them with the dynamic weight set.

// framingRunsToPct converts catcher framing runs per game into a
// percentage swing in called strikes.
const framingRunsToPct = -3.94

// FramingModifier converts a catcher's framing runs per game into a
// strikeout multiplier held within [0.95, 1.05]. Unknown catchers pass
// 0.0 runs and land exactly neutral.
func FramingModifier(runsPerGame float64) float64 {
	pct := runsPerGame * framingRunsToPct
	return clamp(1.0+pct/100.0, 0.95, 1.05)
}

// ParkModifier returns the strikeout factor for the game's park, neutral
// when the park is unknown.
func ParkModifier(parkName string) float64 {
	_, factor, ok := models.ParkStrikeoutFactor(parkName)
	if !ok {
		log.Printf("park modifier: no factor for %q, using neutral", parkName)
		return 1.0
	}
	return factor
}

// platoonFactors keys pitcher hand then batter hand. Opposite-handed
// batters see the ball longer and strike out less.
var platoonFactors = map[string]map[string]float64{
	"L": {"L": 0.93, "R": 1.07},
	"R": {"R": 0.95, "L": 1.05},
}

// PlatoonModifier returns the single-matchup platoon factor, neutral on
// an unrecognized hand.
func PlatoonModifier(pitcherHand, batterHand string) float64 {
	if byBatter, ok := platoonFactors[pitcherHand]; ok {
		if f, ok := byBatter[batterHand]; ok {
			return f
		}
	}
	return 1.0
}

// LineupPlatoonModifier averages the platoon factor across a lineup.
// Batters with no listed hand are treated as right-handed. An empty
// lineup is neutral.
func LineupPlatoonModifier(pitcherHand string, lineup models.Lineup) float64 {
	if len(lineup) == 0 {
		return 1.0
	}
	var total float64
	for _, b := range lineup {
		hand := b.Hand
		if hand == "" {
			hand = "R"
		}
		total += PlatoonModifier(pitcherHand, hand)
	}
	return total / float64(len(lineup))
}

// TeamTrendModifier reads the opponent's recent strikeout rate and its
// wRC+ delta split by pitcher hand. Missing rows fall back to a mild
// boost, slightly larger against lefties since fewer teams stack
// left-handed lineups well.
func TeamTrendModifier(opponent, pitcherHand string, trends models.TrendTables) float64 {
	recent, recentOK := resolveTeamRow(trends.Recent(pitcherHand), opponent)
	delta, deltaOK := resolveTeamRow(trends.Delta(pitcherHand), opponent)
	if !recentOK || !deltaOK {
		log.Printf("team trend: missing rows for %s vs %sHP, using fallback", opponent, pitcherHand)
		if pitcherHand == "L" {
			return 1.05
		}
		return 1.02
	}

	kPct := recent.NormalizedKPct()
	trend := 0.98 + 0.25*(kPct/models.LeagueAvgTeamKPct) + delta.KPct
	return clamp(trend, 0.85, 1.15)
}

// MatchupModifier scales with the opposing team's overall strikeout
// rate relative to league average.
func MatchupModifier(teamKPct float64) float64 {
	return clamp(0.9+0.2*(teamKPct/models.LeagueAvgTeamKPct), 0.85, 1.15)
}

// StuffModifier grades the pitcher's raw arsenal: pitch-model grade,
// velocity, strikeout rate warmed by recent form, swinging strikes,
// chase and zone-contact suppression, and called-strike-plus-whiff
// rate. Missing inputs default to league-average values so a sparse
// ratings row degrades toward neutral rather than skewing the grade.
func StuffModifier(ratings models.PitcherRatings, logs []models.GameLog) float64 {
	stuff := defaultIfZero(ratings.StuffPlus, models.LeagueAvgStuffPlus)
	kPct := defaultIfZero(ratings.KPct, models.BaselineKPct)
	swStr := defaultIfZero(ratings.SwStrPct, 0.105)
	csw := defaultIfZero(ratings.CSWPct, models.BaselineCSWPct)
	velo := defaultIfZero(ratings.FastballVelo, models.BaselineFastballVelo)
	chase := defaultIfZero(ratings.ChasePct, 0.30)
	zContact := defaultIfZero(ratings.ZoneContactPct, 0.88)

	stuffScore := (stuff - models.LeagueAvgStuffPlus) / 125.0
	veloScore := (velo - models.BaselineFastballVelo) * 0.008

	recentRate := kPct
	if n := len(logs); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		var sum float64
		var count int
		for _, g := range logs[start:] {
			ip := g.InningsPitched
			if ip <= 0 {
				ip = 1.0
			}
			sum += float64(g.Strikeouts) / ip
			count++
		}
		recentRate = sum / float64(count)
	}
	recentFactor := clamp(recentRate/kPct, 0.9, 1.1)

	kScore := (kPct - models.BaselineKPct) * 1.2 * recentFactor
	swStrScore := (swStr - models.BaselineSwStrPct) * 0.7
	chaseWhiff := (chase-models.BaselineChasePct)*0.5 - (zContact-models.BaselineZoneContact)*0.5
	cswScore := (csw - models.BaselineCSWPct) * 0.3

	total := stuffScore*0.35 + veloScore*0.15 + kScore*0.8 + swStrScore*0.6 + chaseWhiff*0.4 + cswScore
	return clamp(1.0+total, 0.85, 1.20)
}

func defaultIfZero(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// BatterVulnerabilityModifier compares each batter's splits against the
// league average for the pitcher's putaway pitch category, boosted for
// platoon disadvantage and scaled by pitcher quality. Returns the mean
// per-batter modifier and the share of batters matched to real splits.
// An empty lineup is neutral with a zero match rate.
func BatterVulnerabilityModifier(lineup models.Lineup, cat models.PitchCategory, pitcherHand string, pitcherQuality float64) (mod float64, matchRate float64) {
	if len(lineup) == 0 {
		return 1.0, 0.0
	}

	avg := models.DefaultBatterStats(cat)

	var total float64
	var matched int
	for _, b := range lineup {
		stats := b.Stats
		if stats.KPercent == 0 {
			stats.KPercent = avg.KPercent
		}
		if stats.WOBA == 0 {
			stats.WOBA = avg.WOBA
		}
		if stats.WhiffPercent == 0 {
			stats.WhiffPercent = avg.WhiffPercent
		}
		if stats.PutAway == 0 {
			stats.PutAway = avg.PutAway
		}

		hand := b.Hand
		if hand == "" {
			hand = "R"
		}
		boost := 0.95
		if hand != pitcherHand {
			boost = 1.1
		}

		score := 0.30*(stats.KPercent-avg.KPercent) +
			0.25*(stats.WhiffPercent-avg.WhiffPercent) +
			0.15*(stats.PutAway-avg.PutAway) -
			0.30*(stats.WOBA-avg.WOBA)
		score *= boost * pitcherQuality

		total += clamp(1.0+score*1.8, 0.85, 1.15)
		if b.Matched {
			matched++
		}
	}

	mod = total / float64(len(lineup))
	matchRate = 100.0 * float64(matched) / float64(len(lineup))
	return mod, matchRate
}
