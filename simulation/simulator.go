package simulation

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"projection-engine/models"
)

// DefaultRuns is the Monte Carlo trial count when the caller does not
// specify one. Large enough that the tail probabilities settle to
// within a few tenths of a percent run to run.
const DefaultRuns = 20000

// SimulateStrikeouts draws n strikeout totals from a two-stage model:
// innings pitched varies normally around the scaled workload, and
// strikeouts accrue per inning at the pitcher's adjusted per-inning
// rate. Passing nil for rng seeds a fresh generator from the clock.
// Non-positive inputs produce an all-zero sample set.
func SimulateStrikeouts(adjustedMean, baseIP, scaledIP float64, n int, rng *rand.Rand) []float64 {
	if n <= 0 {
		n = DefaultRuns
	}
	samples := make([]float64, n)
	if adjustedMean <= 0 || baseIP <= 0 || scaledIP <= 0 {
		return samples
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rate := adjustedMean / baseIP

	for i := range samples {
		ip := scaledIP + rng.NormFloat64()
		if ip < 3.0 {
			ip = 3.0
		} else if ip > 8.0 {
			ip = 8.0
		}

		whole := int(ip)
		frac := ip - float64(whole)

		var ks int
		for inning := 0; inning < whole; inning++ {
			ks += poisson(rng, rate)
		}
		if frac > 0 {
			ks += poisson(rng, rate*frac)
		}
		samples[i] = float64(ks)
	}
	return samples
}

// poisson draws from a Poisson distribution via Knuth's method, which
// is fast enough at the per-inning rates this model sees.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// Summarize reduces a sample set to the percentile summary the
// projection reports.
func Summarize(samples []float64) models.Percentiles {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return models.Percentiles{
		P25: Percentile(sorted, 25),
		P50: Percentile(sorted, 50),
		P75: Percentile(sorted, 75),
		P95: Percentile(sorted, 95),
	}
}

// Percentile computes the p-th percentile of an ascending-sorted sample
// set with linear interpolation between ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ProbOver is the share of samples strictly above line, as a percentage.
func ProbOver(samples []float64, line float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var over int
	for _, s := range samples {
		if s > line {
			over++
		}
	}
	return 100.0 * float64(over) / float64(len(samples))
}
