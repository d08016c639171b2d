package providers

import (
	"context"
	"fmt"
	"log"

	"projection-engine/models"
	"projection-engine/projection"
)

// Reference-table loaders. Each one reads a full table at startup and
// hands back the in-memory structure the engine queries; the tables
// are small (hundreds of rows) and refresh with the daily ingest.

// LoadPitcherIndex loads the pitcher ratings table. Nullable columns
// come back zero, which the stuff grade treats as league average.
func (s *Store) LoadPitcherIndex(ctx context.Context) (*projection.PitcherIndex, error) {
	query := `
		SELECT name,
		       COALESCE(stuff_plus, 0),
		       COALESCE(k_pct, 0),
		       COALESCE(swstr_pct, 0),
		       COALESCE(csw_pct, 0),
		       COALESCE(fastball_velo, 0),
		       COALESCE(chase_pct, 0),
		       COALESCE(zone_contact_pct, 0),
		       COALESCE(putaway_vs_lhb, ''),
		       COALESCE(putaway_vs_rhb, '')
		FROM pitcher_ratings
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading pitcher ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[string]models.PitcherRatings)
	for rows.Next() {
		var name string
		var r models.PitcherRatings
		if err := rows.Scan(&name, &r.StuffPlus, &r.KPct, &r.SwStrPct, &r.CSWPct,
			&r.FastballVelo, &r.ChasePct, &r.ZoneContactPct,
			&r.PutawayVsLHB, &r.PutawayVsRHB); err != nil {
			return nil, fmt.Errorf("scanning pitcher ratings: %w", err)
		}
		ratings[name] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading pitcher ratings: %w", err)
	}

	log.Printf("Loaded %d pitcher ratings", len(ratings))
	return projection.NewPitcherIndex(ratings), nil
}

// LoadBatterIndex loads per-pitch-category batter splits.
func (s *Store) LoadBatterIndex(ctx context.Context) (*projection.BatterIndex, error) {
	query := `
		SELECT name, pitch_category,
		       COALESCE(k_percent, 0),
		       COALESCE(woba, 0),
		       COALESCE(whiff_percent, 0),
		       COALESCE(put_away, 0)
		FROM batter_splits
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading batter splits: %w", err)
	}
	defer rows.Close()

	idx := projection.NewBatterIndex()
	count := 0
	for rows.Next() {
		var name, category string
		var stats models.BatterPitchStats
		if err := rows.Scan(&name, &category, &stats.KPercent, &stats.WOBA,
			&stats.WhiffPercent, &stats.PutAway); err != nil {
			return nil, fmt.Errorf("scanning batter splits: %w", err)
		}
		idx.Add(name, models.PitchCategory(category), stats)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading batter splits: %w", err)
	}

	log.Printf("Loaded %d batter split rows", count)
	return idx, nil
}

// LoadTrendTables loads the four team trend tables: recent strikeout
// rates and wRC+ deltas, each split by pitcher hand.
func (s *Store) LoadTrendTables(ctx context.Context) (models.TrendTables, error) {
	query := `
		SELECT team, vs_hand, table_kind,
		       COALESCE(k_pct, 0),
		       COALESCE(wrc_delta, 0)
		FROM team_trends
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return models.TrendTables{}, fmt.Errorf("loading team trends: %w", err)
	}
	defer rows.Close()

	tables := models.TrendTables{
		RecentVsLHP: make(models.TrendTable),
		RecentVsRHP: make(models.TrendTable),
		DeltaVsLHP:  make(models.TrendTable),
		DeltaVsRHP:  make(models.TrendTable),
	}

	for rows.Next() {
		var team, hand, kind string
		var row models.TeamTrendRow
		if err := rows.Scan(&team, &hand, &kind, &row.KPct, &row.WRCDelta); err != nil {
			return models.TrendTables{}, fmt.Errorf("scanning team trends: %w", err)
		}
		row.Team = team

		var table models.TrendTable
		switch {
		case kind == "recent" && hand == "L":
			table = tables.RecentVsLHP
		case kind == "recent" && hand == "R":
			table = tables.RecentVsRHP
		case kind == "delta" && hand == "L":
			table = tables.DeltaVsLHP
		case kind == "delta" && hand == "R":
			table = tables.DeltaVsRHP
		default:
			log.Printf("team trends: skipping unknown row kind=%s hand=%s for %s", kind, hand, team)
			continue
		}
		table[team] = row
	}
	if err := rows.Err(); err != nil {
		return models.TrendTables{}, fmt.Errorf("reading team trends: %w", err)
	}

	return tables, nil
}

// LoadFramingTable loads catcher framing runs per game, falling back to
// the built-in table when the database has none.
func (s *Store) LoadFramingTable(ctx context.Context) (models.FramingTable, error) {
	query := `SELECT catcher, COALESCE(framing_runs_per_game, 0) FROM catcher_framing`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading catcher framing: %w", err)
	}
	defer rows.Close()

	table := make(models.FramingTable)
	for rows.Next() {
		var catcher string
		var runs float64
		if err := rows.Scan(&catcher, &runs); err != nil {
			return nil, fmt.Errorf("scanning catcher framing: %w", err)
		}
		table[catcher] = runs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catcher framing: %w", err)
	}

	if len(table) == 0 {
		log.Printf("catcher framing table empty, using built-in defaults")
		return models.DefaultFramingTable(), nil
	}
	return table, nil
}
