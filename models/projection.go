package models

// Percentiles is the empirical percentile set of a strikeout distribution.
type Percentiles struct {
	P25 float64 `json:"25th"`
	P50 float64 `json:"50th"`
	P75 float64 `json:"75th"`
	P95 float64 `json:"95th"`
}

// ModifierBreakdown records every modifier that went into a projection,
// for diagnostics and downstream validation.
type ModifierBreakdown struct {
	Matchup    float64 `json:"matchup"`
	Platoon    float64 `json:"platoon"`
	Park       float64 `json:"park"`
	TeamTrend  float64 `json:"team_trend"`
	BatterVuln float64 `json:"batter_vuln"`
	Stuff      float64 `json:"stuff"`
	Framing    float64 `json:"framing"`
	Total      float64 `json:"total"`
}

// ProjectionResult is the outcome of one (pitcher, opponent, park) query.
// Probabilities are percentages in [0, 100].
type ProjectionResult struct {
	Pitcher      string            `json:"pitcher"`
	Opponent     string            `json:"opponent"`
	Park         string            `json:"park"`
	Mean         float64           `json:"mean"`
	BaseIP       float64           `json:"ip_ewma"`
	ScaledIP     float64           `json:"scaled_ip"`
	Dispersion   float64           `json:"dispersion"`
	Distribution Percentiles       `json:"distribution"`
	ProbOver55   float64           `json:"prob_over_5.5"`
	ProbOver65   float64           `json:"prob_over_6.5"`
	ProbOver75   float64           `json:"prob_over_7.5"`
	Modifiers    ModifierBreakdown `json:"modifiers"`

	// BatterMatchRate is the share of opposing batters whose stats came
	// from real reference records rather than league-average fallbacks,
	// as a percentage.
	BatterMatchRate float64 `json:"batter_match_rate"`
}
