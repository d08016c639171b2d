package models

// League-average baselines used as fallbacks and centering points across
// the modifier library.
const (
	// LeagueAvgPitcherKPct is the league-average strikeout rate for an
	// individual pitcher.
	LeagueAvgPitcherKPct = 0.225

	// LeagueAvgTeamKPct is the league-average team strikeout rate versus
	// a given pitcher handedness.
	LeagueAvgTeamKPct = 0.195

	// LeagueAvgStrikeouts is the fallback expected strikeout total for a
	// start when no game logs are available.
	LeagueAvgStrikeouts = 6.5

	// LeagueAvgInnings is the fallback expected innings for a start.
	LeagueAvgInnings = 5.0

	// LeagueAvgStuffPlus is the Stuff+ index baseline (100 = average).
	LeagueAvgStuffPlus = 100.0
)

// Baselines for the stuff modifier's component metrics.
const (
	BaselineKPct         = 0.22
	BaselineSwStrPct     = 0.11
	BaselineCSWPct       = 0.27
	BaselineFastballVelo = 92.0
	BaselineChasePct     = 0.28
	BaselineZoneContact  = 0.87
)
