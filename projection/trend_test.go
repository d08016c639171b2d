package projection

import (
	"math"
	"testing"

	"projection-engine/models"
)

func TestCalculateEWMA(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
		epsilon  float64
	}{
		{"empty series uses baseline", nil, 5.0, 0.0001},
		{"single value returns it", []float64{7.0}, 7.0, 0.0001},
		{"constant series returns the constant", []float64{6, 6, 6, 6, 6}, 6.0, 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEWMA(tt.values, DefaultEWMAAlpha)
			if math.Abs(got-tt.expected) > tt.epsilon {
				t.Errorf("CalculateEWMA(%v) = %f, expected %f", tt.values, got, tt.expected)
			}
		})
	}
}

func TestCalculateEWMAWeightsRecency(t *testing.T) {
	rising := []float64{4, 5, 6, 7, 8}
	falling := []float64{8, 7, 6, 5, 4}

	mean := 6.0
	if got := CalculateEWMA(rising, DefaultEWMAAlpha); got <= mean {
		t.Errorf("rising series EWMA = %f, expected above the plain mean %f", got, mean)
	}
	if got := CalculateEWMA(falling, DefaultEWMAAlpha); got >= mean {
		t.Errorf("falling series EWMA = %f, expected below the plain mean %f", got, mean)
	}
}

func TestCalculateEWMAHigherAlphaChasesRecent(t *testing.T) {
	values := []float64{3, 4, 5, 9}
	low := CalculateEWMA(values, 0.1)
	high := CalculateEWMA(values, 1.0)
	if high <= low {
		t.Errorf("alpha 1.0 EWMA %f should exceed alpha 0.1 EWMA %f on a spiking series", high, low)
	}
}

func testTrendTables() models.TrendTables {
	return models.TrendTables{
		RecentVsLHP: models.TrendTable{
			"MIL": {Team: "MIL", KPct: 0.26},
		},
		RecentVsRHP: models.TrendTable{
			"MIL": {Team: "MIL", KPct: 0.21},
			"NYY": {Team: "NYY", KPct: 0.195},
		},
		DeltaVsLHP: models.TrendTable{
			"MIL": {Team: "MIL", KPct: 0.01, WRCDelta: -5.0},
		},
		DeltaVsRHP: models.TrendTable{
			"MIL": {Team: "MIL", KPct: -0.005, WRCDelta: 8.0},
			"NYY": {Team: "NYY", KPct: 0.0, WRCDelta: 0.0},
		},
	}
}

func TestScaleIPMeanStaysBounded(t *testing.T) {
	trends := testTrendTables()
	baseIP := 6.0

	tests := []struct {
		name string
		team string
		hand string
		park string
	}{
		{"whiff prone opponent", "MIL", "L", "Great American Ball Park"},
		{"league average opponent", "NYY", "R", "Yankee Stadium"},
		{"contact park", "MIL", "R", "Coors Field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleIPMean(baseIP, tt.team, tt.hand, tt.park, trends)
			if got < baseIP*0.8-0.0001 || got > baseIP*1.2+0.0001 {
				t.Errorf("ScaleIPMean = %f, outside [%f, %f]", got, baseIP*0.8, baseIP*1.2)
			}
		})
	}
}

func TestScaleIPMeanFailurePath(t *testing.T) {
	trends := models.TrendTables{
		RecentVsRHP: models.TrendTable{},
		DeltaVsRHP:  models.TrendTable{},
	}

	for _, baseIP := range []float64{2.0, 5.5, 9.0} {
		got := ScaleIPMean(baseIP, "SomeExpansionTeam", "R", "Polo Grounds", trends)
		if got < 4.0 || got > 6.5 {
			t.Errorf("failure path ScaleIPMean(%f) = %f, outside [4.0, 6.5]", baseIP, got)
		}
	}
}

func TestScaleIPMeanNeutralInputs(t *testing.T) {
	trends := testTrendTables()
	got := ScaleIPMean(6.0, "NYY", "R", "Target Field", trends)
	// League-average K%, zero delta, neutral park: nothing should move.
	if math.Abs(got-6.0) > 0.0001 {
		t.Errorf("neutral inputs ScaleIPMean = %f, expected 6.0", got)
	}
}
