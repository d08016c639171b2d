package projection

import (
	"projection-engine/models"
)

// Fuzzy-match cutoffs tuned for each lookup. Pitcher names come from a
// single hand-entered slate so the net is wide; batter names come from
// scraped lineups where a loose match risks crediting the wrong player.
const (
	pitcherMatchCutoff = 0.6
	batterMatchCutoff  = 0.85
	teamMatchCutoff    = 0.8
)

// PitcherIndex resolves pitcher names against the ratings reference
// table: exact cleaned match first, then fuzzy over the top candidates.
type PitcherIndex struct {
	ratings map[string]models.PitcherRatings
	names   []string
}

func NewPitcherIndex(rows map[string]models.PitcherRatings) *PitcherIndex {
	idx := &PitcherIndex{ratings: make(map[string]models.PitcherRatings, len(rows))}
	for name, r := range rows {
		key := CleanName(name)
		idx.ratings[key] = r
		idx.names = append(idx.names, key)
	}
	return idx
}

// Resolve returns the ratings for name, or ok=false when no table row
// matches even after fuzzy search.
func (idx *PitcherIndex) Resolve(name string) (models.PitcherRatings, bool) {
	key := CleanName(name)
	if r, ok := idx.ratings[key]; ok {
		return r, true
	}
	matches := ClosestMatches(key, idx.names, 3, pitcherMatchCutoff)
	if len(matches) == 0 {
		return models.PitcherRatings{}, false
	}
	return idx.ratings[matches[0]], true
}

// BatterIndex resolves batter names against per-pitch-category splits.
type BatterIndex struct {
	stats map[string]map[models.PitchCategory]models.BatterPitchStats
	names []string
}

func NewBatterIndex() *BatterIndex {
	return &BatterIndex{stats: make(map[string]map[models.PitchCategory]models.BatterPitchStats)}
}

// Add records one batter's splits for one pitch category.
func (idx *BatterIndex) Add(name string, cat models.PitchCategory, stats models.BatterPitchStats) {
	key := CleanName(name)
	if _, ok := idx.stats[key]; !ok {
		idx.stats[key] = make(map[models.PitchCategory]models.BatterPitchStats)
		idx.names = append(idx.names, key)
	}
	idx.stats[key][cat] = stats
}

// Resolve looks a batter up by cleaned name, then by the abbreviated
// first-initial form, then fuzzily. ok=false means the batter will run
// on league-average splits.
func (idx *BatterIndex) Resolve(name string, cat models.PitchCategory) (models.BatterPitchStats, bool) {
	key := CleanName(name)
	if s, ok := idx.lookup(key, cat); ok {
		return s, true
	}
	if flast := FirstInitialLastName(name); flast != key {
		if s, ok := idx.lookup(flast, cat); ok {
			return s, true
		}
	}
	if matches := ClosestMatches(key, idx.names, 1, batterMatchCutoff); len(matches) > 0 {
		if s, ok := idx.lookup(matches[0], cat); ok {
			return s, true
		}
	}
	return models.BatterPitchStats{}, false
}

func (idx *BatterIndex) lookup(key string, cat models.PitchCategory) (models.BatterPitchStats, bool) {
	byCat, ok := idx.stats[key]
	if !ok {
		return models.BatterPitchStats{}, false
	}
	s, ok := byCat[cat]
	return s, ok
}

// resolveTeamRow finds a team's row in a trend table, tolerating minor
// naming drift between sources.
func resolveTeamRow(table models.TrendTable, team string) (models.TeamTrendRow, bool) {
	if row, ok := table[team]; ok {
		return row, true
	}
	if code, ok := models.NormalizeTeam(team); ok {
		if row, ok := table[code]; ok {
			return row, true
		}
	}
	matches := ClosestMatches(team, table.Teams(), 1, teamMatchCutoff)
	if len(matches) == 0 {
		return models.TeamTrendRow{}, false
	}
	return table[matches[0]], true
}
