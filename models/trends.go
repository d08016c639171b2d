package models

// TeamTrendRow is one team's aggregate strikeout trend against a given
// pitcher handedness. Recent tables carry the last-21-day K%; delta
// tables carry the change in K% and wRC+ versus the team's baseline.
type TeamTrendRow struct {
	Team     string  `json:"team"`
	KPct     float64 `json:"k_pct"`
	WRCDelta float64 `json:"wrc_plus_delta"`
}

// TrendTable maps canonical team codes to trend rows.
type TrendTable map[string]TeamTrendRow

// TrendTables bundles the four team-trend tables: recent window and delta,
// each split by opposing pitcher handedness.
type TrendTables struct {
	RecentVsLHP TrendTable
	RecentVsRHP TrendTable
	DeltaVsLHP  TrendTable
	DeltaVsRHP  TrendTable
}

// Recent returns the recent-window table for a pitcher handedness.
func (t TrendTables) Recent(hand string) TrendTable {
	if hand == "L" {
		return t.RecentVsLHP
	}
	return t.RecentVsRHP
}

// Delta returns the delta table for a pitcher handedness.
func (t TrendTables) Delta(hand string) TrendTable {
	if hand == "L" {
		return t.DeltaVsLHP
	}
	return t.DeltaVsRHP
}

// Teams returns the team codes present in the table, for fuzzy matching.
func (t TrendTable) Teams() []string {
	teams := make([]string, 0, len(t))
	for team := range t {
		teams = append(teams, team)
	}
	return teams
}

// NormalizedKPct returns a row's K% on the 0-1 scale, tolerating tables
// that store percentages as 19.5 instead of 0.195.
func (r TeamTrendRow) NormalizedKPct() float64 {
	if r.KPct > 1.0 {
		return r.KPct / 100.0
	}
	return r.KPct
}
