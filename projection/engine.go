package projection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"projection-engine/models"
	"projection-engine/simulation"
)

// ErrNotFound reports that a required input could not be located: no
// cached game logs, no posted lineup, or a pitcher name that resolves
// to nothing in the ratings table.
var ErrNotFound = errors.New("projection: not found")

// LogProvider supplies a pitcher's profile and recent game logs.
type LogProvider interface {
	PitcherProfile(ctx context.Context, name string) (*models.PitcherProfile, error)
}

// LineupProvider supplies the posted lineup for a team, names and
// handedness only; the engine attaches splits itself.
type LineupProvider interface {
	Lineup(ctx context.Context, team string) (models.Lineup, error)
}

// Request describes one pitcher-vs-team projection.
type Request struct {
	Pitcher  string `json:"pitcher"`
	Opponent string `json:"opponent"`
	Park     string `json:"park,omitempty"`
	Catcher  string `json:"catcher,omitempty"`
}

// Engine composes the modifier pipeline into a full strikeout
// projection. All reference data is injected so sources can be swapped
// without touching the statistical core.
type Engine struct {
	Logs     LogProvider
	Lineups  LineupProvider
	Pitchers *PitcherIndex
	Batters  *BatterIndex
	Framing  models.FramingTable
	Trends   models.TrendTables
	Alpha    float64
	SimRuns  int
}

// NewEngine wires an engine with default decay and simulation depth.
func NewEngine(logs LogProvider, lineups LineupProvider, pitchers *PitcherIndex, batters *BatterIndex, framing models.FramingTable, trends models.TrendTables) *Engine {
	return &Engine{
		Logs:     logs,
		Lineups:  lineups,
		Pitchers: pitchers,
		Batters:  batters,
		Framing:  framing,
		Trends:   trends,
		Alpha:    DefaultEWMAAlpha,
		SimRuns:  simulation.DefaultRuns,
	}
}

// Project runs the full pipeline for one request. Missing inputs that
// have a sane neutral value degrade gracefully and are logged; inputs
// the projection cannot run without return ErrNotFound.
func (e *Engine) Project(ctx context.Context, req Request) (*models.ProjectionResult, error) {
	profile, err := e.Logs.PitcherProfile(ctx, req.Pitcher)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no game logs for %s", ErrNotFound, req.Pitcher)
		}
		return nil, fmt.Errorf("loading logs for %s: %w", req.Pitcher, err)
	}

	hand := profile.Hand
	if hand == "" {
		hand = "R"
	}

	ratings, ok := e.Pitchers.Resolve(req.Pitcher)
	if !ok {
		return nil, fmt.Errorf("%w: pitcher %s not in ratings table", ErrNotFound, req.Pitcher)
	}

	opponent := req.Opponent
	if code, ok := models.NormalizeTeam(opponent); ok {
		opponent = code
	}

	park := req.Park
	if park == "" {
		if home, ok := models.HomePark(opponent); ok {
			park = home
		}
	}

	rawLineup, err := e.Lineups.Lineup(ctx, opponent)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no lineup posted for %s", ErrNotFound, opponent)
		}
		return nil, fmt.Errorf("loading lineup for %s: %w", opponent, err)
	}

	putaway := e.putawayPitch(ratings, rawLineup)
	cat := models.PitchCategoryFor(putaway)

	lineup := e.attachSplits(rawLineup, cat)
	if len(lineup) == 0 {
		return nil, fmt.Errorf("%w: no usable batters for %s", ErrNotFound, opponent)
	}

	mods := models.ModifierBreakdown{
		Matchup:   MatchupModifier(e.opponentKPct(opponent, hand)),
		Platoon:   LineupPlatoonModifier(hand, lineup),
		Park:      ParkModifier(park),
		TeamTrend: TeamTrendModifier(opponent, hand, e.Trends),
		Stuff:     StuffModifier(ratings, profile.Logs),
		Framing:   FramingModifier(e.framingRuns(req.Catcher)),
	}
	vuln, matchRate := BatterVulnerabilityModifier(lineup, cat, hand, 1.0)
	mods.BatterVuln = vuln

	weights := DynamicWeights(hand, e.pitchCategories(ratings))
	total := 1.0 +
		weights.Matchup*(mods.Matchup-1.0) +
		weights.Platoon*(mods.Platoon-1.0) +
		weights.Park*(mods.Park-1.0) +
		weights.TeamTrend*(mods.TeamTrend-1.0) +
		weights.BatterVuln*(mods.BatterVuln-1.0)
	total = clamp(total*mods.Stuff*mods.Framing, 0.85, 1.15)
	mods.Total = total

	ks := profile.RecentStrikeouts()
	baseMean := models.LeagueAvgStrikeouts
	if len(ks) > 0 {
		baseMean = CalculateEWMA(ks, e.Alpha)
	}
	adjustedMean := baseMean * total

	baseIP := CalculateEWMA(profile.RecentInnings(), e.Alpha)
	scaledIP := ScaleIPMean(baseIP, opponent, hand, park, e.Trends)

	samples := simulation.SimulateStrikeouts(adjustedMean, baseIP, scaledIP, e.SimRuns, nil)

	result := &models.ProjectionResult{
		Pitcher:         profile.Name,
		Opponent:        opponent,
		Park:            park,
		Mean:            adjustedMean,
		BaseIP:          baseIP,
		ScaledIP:        scaledIP,
		Dispersion:      e.dispersion(ks),
		Distribution:    simulation.Summarize(samples),
		ProbOver55:      simulation.ProbOver(samples, 5.5),
		ProbOver65:      simulation.ProbOver(samples, 6.5),
		ProbOver75:      simulation.ProbOver(samples, 7.5),
		Modifiers:       mods,
		BatterMatchRate: matchRate,
	}
	if result.Pitcher == "" {
		result.Pitcher = req.Pitcher
	}
	return result, nil
}

// putawayPitch picks the pitcher's putaway offering for the side of the
// plate most of the lineup hits from.
func (e *Engine) putawayPitch(ratings models.PitcherRatings, lineup models.Lineup) string {
	pitch := ratings.PutawayVsRHB
	if lineup.LeftHandedCount() > len(lineup)/2 {
		pitch = ratings.PutawayVsLHB
	}
	if pitch == "" {
		pitch = "SL"
	}
	return strings.ToUpper(pitch)
}

// pitchCategories returns the distinct arsenal categories the weight
// selector keys on.
func (e *Engine) pitchCategories(ratings models.PitcherRatings) []string {
	var cats []string
	for _, pitch := range []string{ratings.PutawayVsLHB, ratings.PutawayVsRHB} {
		if pitch == "" {
			continue
		}
		cats = append(cats, string(models.PitchCategoryFor(strings.ToUpper(pitch))))
	}
	if len(cats) == 0 {
		cats = []string{string(models.Breaking)}
	}
	return cats
}

// attachSplits resolves each lineup name against the batter table,
// marking which batters matched real splits.
func (e *Engine) attachSplits(lineup models.Lineup, cat models.PitchCategory) models.Lineup {
	out := make(models.Lineup, 0, len(lineup))
	for _, b := range lineup {
		if strings.TrimSpace(b.Name) == "" {
			continue
		}
		if stats, ok := e.Batters.Resolve(b.Name, cat); ok {
			b.Stats = stats
			b.Matched = true
		} else {
			b.Stats = models.DefaultBatterStats(cat)
			b.Matched = false
		}
		b.Pitch = cat
		out = append(out, b)
	}
	return out
}

func (e *Engine) opponentKPct(opponent, hand string) float64 {
	if row, ok := resolveTeamRow(e.Trends.Recent(hand), opponent); ok {
		if k := row.NormalizedKPct(); k > 0 {
			return k
		}
	}
	return models.LeagueAvgTeamKPct
}

func (e *Engine) framingRuns(catcher string) float64 {
	if catcher == "" {
		return 0.0
	}
	runs, ok := e.Framing[catcher]
	if !ok {
		log.Printf("framing: no data for catcher %q, using neutral", catcher)
		return 0.0
	}
	return runs
}

// dispersion is the standard deviation of the last five strikeout
// totals, reported alongside the projection as a volatility gauge.
// Fewer than five starts reports the neutral 1.0.
func (e *Engine) dispersion(ks []float64) float64 {
	if len(ks) < 5 {
		return 1.0
	}
	last := ks[len(ks)-5:]
	var mean float64
	for _, v := range last {
		mean += v
	}
	mean /= float64(len(last))
	var ss float64
	for _, v := range last {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(last)))
}
