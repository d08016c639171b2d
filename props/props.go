package props

import "projection-engine/projection"

// Recommendation is the betting stance the edge calculation produces.
type Recommendation string

const (
	RecommendOver  Recommendation = "OVER"
	RecommendUnder Recommendation = "UNDER"
	RecommendPass  Recommendation = "PASS"
)

// edgeThresholdPct is the minimum projected edge, in percent, before a
// prop is worth acting on in either direction.
const edgeThresholdPct = 10.0

// Prop is one sportsbook strikeout line for a scheduled start.
type Prop struct {
	projection.Request
	Line float64 `json:"line"`
}

// Edge compares a projection against the book's line.
type Edge struct {
	Line           float64        `json:"line"`
	Projected      float64        `json:"projected"`
	EdgePct        float64        `json:"edge_pct"`
	Recommendation Recommendation `json:"recommendation"`
}

// CalculateEdge measures how far the projected mean sits from the
// posted line and recommends a side only when the gap clears the
// threshold in that direction.
func CalculateEdge(projected, line float64) Edge {
	e := Edge{
		Line:           line,
		Projected:      projected,
		Recommendation: RecommendPass,
	}
	if line == 0 {
		return e
	}
	e.EdgePct = (projected - line) / line * 100.0
	switch {
	case e.EdgePct > edgeThresholdPct:
		e.Recommendation = RecommendOver
	case e.EdgePct < -edgeThresholdPct:
		e.Recommendation = RecommendUnder
	}
	return e
}
