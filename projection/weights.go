package projection

// Weights blends the contextual modifiers. The set deliberately sums
// past 1.0 so a pitcher strong across every signal separates further
// from the pack.
type Weights struct {
	Matchup    float64
	Platoon    float64
	Park       float64
	TeamTrend  float64
	BatterVuln float64
}

func baseWeights() Weights {
	return Weights{
		Matchup:    0.30,
		Platoon:    0.25,
		Park:       0.25,
		TeamTrend:  0.20,
		BatterVuln: 0.20,
	}
}

// DynamicWeights adjusts the base blend for the pitcher's arsenal. A
// one-category arsenal lives or dies on how batters handle that pitch,
// so batter vulnerability gains weight at the expense of the broader
// matchup and park signals.
func DynamicWeights(pitcherHand string, pitchTypes []string) Weights {
	w := baseWeights()

	distinct := make(map[string]struct{}, len(pitchTypes))
	for _, p := range pitchTypes {
		distinct[p] = struct{}{}
	}
	if len(distinct) == 1 {
		w.BatterVuln += 0.10
		w.Matchup -= 0.05
		w.Park -= 0.05
	}

	return w
}
