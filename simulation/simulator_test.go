package simulation

import (
	"math"
	"math/rand"
	"testing"
)

func TestSimulateStrikeoutsInvalidInputs(t *testing.T) {
	tests := []struct {
		name         string
		adjustedMean float64
		baseIP       float64
		scaledIP     float64
	}{
		{"zero mean", 0, 6.0, 6.0},
		{"negative mean", -2.5, 6.0, 6.0},
		{"zero base innings", 7.0, 0, 6.0},
		{"negative scaled innings", 7.0, 6.0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := SimulateStrikeouts(tt.adjustedMean, tt.baseIP, tt.scaledIP, 100, nil)
			if len(samples) != 100 {
				t.Fatalf("expected 100 samples, got %d", len(samples))
			}
			for _, s := range samples {
				if s != 0 {
					t.Fatalf("invalid inputs should produce all zeros, saw %f", s)
				}
			}
		})
	}
}

func TestSimulateStrikeoutsDefaultRuns(t *testing.T) {
	samples := SimulateStrikeouts(7.0, 6.0, 6.0, 0, rand.New(rand.NewSource(1)))
	if len(samples) != DefaultRuns {
		t.Errorf("expected %d samples, got %d", DefaultRuns, len(samples))
	}
}

func TestSimulateStrikeoutsSampleMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	adjustedMean := 7.0
	samples := SimulateStrikeouts(adjustedMean, 6.0, 6.0, DefaultRuns, rng)

	var sum float64
	for _, s := range samples {
		sum += s
		if s < 0 {
			t.Fatalf("negative strikeout count %f", s)
		}
	}
	mean := sum / float64(len(samples))

	// With scaled innings equal to base innings the sample mean should
	// track the adjusted mean closely.
	if math.Abs(mean-adjustedMean) > 0.35 {
		t.Errorf("sample mean %f drifted from adjusted mean %f", mean, adjustedMean)
	}
}

func TestSimulateStrikeoutsInningsClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Scaled innings way above the clamp: strikeouts still cap near
	// 8 innings of work.
	samples := SimulateStrikeouts(9.0, 6.0, 20.0, 2000, rng)
	rate := 9.0 / 6.0
	ceiling := rate * 8.0

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))
	if mean > ceiling+1.0 {
		t.Errorf("sample mean %f exceeds the 8-inning ceiling %f", mean, ceiling)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		p        float64
		expected float64
	}{
		{0, 1},
		{50, 3},
		{100, 5},
		{25, 2},
		{75, 4},
		{90, 4.6},
	}

	for _, tt := range tests {
		if got := Percentile(sorted, tt.p); math.Abs(got-tt.expected) > 0.0001 {
			t.Errorf("Percentile(%v, %f) = %f, expected %f", sorted, tt.p, got, tt.expected)
		}
	}

	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("empty sample percentile = %f, expected 0", got)
	}
	if got := Percentile([]float64{4}, 95); got != 4 {
		t.Errorf("single sample percentile = %f, expected 4", got)
	}
}

func TestSummarizeOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := SimulateStrikeouts(6.5, 5.8, 6.1, 5000, rng)
	p := Summarize(samples)
	if p.P25 > p.P50 || p.P50 > p.P75 || p.P75 > p.P95 {
		t.Errorf("percentiles out of order: %+v", p)
	}
}

func TestProbOver(t *testing.T) {
	samples := []float64{4, 5, 6, 7, 8}

	if got := ProbOver(samples, 5.5); got != 60.0 {
		t.Errorf("ProbOver 5.5 = %f, expected 60", got)
	}
	if got := ProbOver(samples, 8.5); got != 0.0 {
		t.Errorf("ProbOver 8.5 = %f, expected 0", got)
	}
	if got := ProbOver(samples, 3.5); got != 100.0 {
		t.Errorf("ProbOver 3.5 = %f, expected 100", got)
	}
	if got := ProbOver(nil, 5.5); got != 0.0 {
		t.Errorf("ProbOver on empty samples = %f, expected 0", got)
	}
}
