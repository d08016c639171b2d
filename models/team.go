package models

import "strings"

// teamInfo carries the static identity data for one club.
type teamInfo struct {
	FullName       string
	AlternateNames []string
	Park           string
}

var teamSystem = map[string]teamInfo{
	"ARI": {"Arizona Diamondbacks", []string{"D-backs", "Dbacks", "Diamondbacks", "Arizona"}, "Chase Field"},
	"ATL": {"Atlanta Braves", []string{"Braves"}, "Truist Park"},
	"BAL": {"Baltimore Orioles", []string{"O's", "Os", "Orioles", "Baltimore"}, "Oriole Park at Camden Yards"},
	"BOS": {"Boston Red Sox", []string{"Red Sox", "BoSox", "Boston"}, "Fenway Park"},
	"CHC": {"Chicago Cubs", []string{"Cubs", "Chicago NL"}, "Wrigley Field"},
	"CWS": {"Chicago White Sox", []string{"White Sox", "Pale Hose", "Chicago AL"}, "Guaranteed Rate Field"},
	"CIN": {"Cincinnati Reds", []string{"Reds", "Redlegs", "Cincinnati"}, "Great American Ball Park"},
	"CLE": {"Cleveland Guardians", []string{"Guardians", "Indians", "Cleveland"}, "Progressive Field"},
	"COL": {"Colorado Rockies", []string{"Rockies", "Colorado"}, "Coors Field"},
	"DET": {"Detroit Tigers", []string{"Tigers", "Detroit"}, "Comerica Park"},
	"HOU": {"Houston Astros", []string{"Astros", "Stros", "Houston"}, "Minute Maid Park"},
	"KC":  {"Kansas City Royals", []string{"Royals", "Kansas City"}, "Kauffman Stadium"},
	"LAA": {"Los Angeles Angels", []string{"Angels", "Halos", "LA Angels"}, "Angel Stadium"},
	"LAD": {"Los Angeles Dodgers", []string{"Dodgers", "Los Angeles"}, "Dodger Stadium"},
	"MIA": {"Miami Marlins", []string{"Marlins", "Miami"}, "loanDepot Park"},
	"MIL": {"Milwaukee Brewers", []string{"Brewers", "Milwaukee"}, "American Family Field"},
	"MIN": {"Minnesota Twins", []string{"Twins", "Minnesota"}, "Target Field"},
	"NYM": {"New York Mets", []string{"Mets", "New York NL"}, "Citi Field"},
	"NYY": {"New York Yankees", []string{"Yankees", "Yanks", "New York AL"}, "Yankee Stadium"},
	"OAK": {"Oakland Athletics", []string{"Athletics", "A's", "As", "Oakland"}, "Oakland Coliseum"},
	"PHI": {"Philadelphia Phillies", []string{"Phillies", "Phils", "Philadelphia"}, "Citizens Bank Park"},
	"PIT": {"Pittsburgh Pirates", []string{"Pirates", "Bucs", "Pittsburgh"}, "PNC Park"},
	"SD":  {"San Diego Padres", []string{"Padres", "Friars", "San Diego"}, "Petco Park"},
	"SF":  {"San Francisco Giants", []string{"Giants", "San Francisco"}, "Oracle Park"},
	"SEA": {"Seattle Mariners", []string{"Mariners", "M's", "Ms", "Seattle"}, "T-Mobile Park"},
	"STL": {"St. Louis Cardinals", []string{"Cardinals", "Cards", "St. Louis"}, "Busch Stadium"},
	"TB":  {"Tampa Bay Rays", []string{"Rays", "Tampa", "Tampa Bay"}, "Tropicana Field"},
	"TEX": {"Texas Rangers", []string{"Rangers", "Texas"}, "Globe Life Field"},
	"TOR": {"Toronto Blue Jays", []string{"Blue Jays", "Jays", "Toronto"}, "Rogers Centre"},
	"WSH": {"Washington Nationals", []string{"Nationals", "Nats", "Washington"}, "Nationals Park"},
}

// Common alternate abbreviations mapped to the canonical code.
var teamAbbrevAliases = map[string]string{
	"WAS": "WSH", "WSN": "WSH",
	"SFG": "SF",
	"LA":  "LAD",
	"ANA": "LAA",
	"FLA": "MIA",
	"SDP": "SD",
	"TBR": "TB", "TBA": "TB",
	"KCR": "KC",
	"CHW": "CWS",
	"NYA": "NYY",
	"NYN": "NYM",
	"CHN": "CHC",
}

var teamNameToAbbrev = buildNameIndex()

func buildNameIndex() map[string]string {
	idx := make(map[string]string)
	for abbr, info := range teamSystem {
		idx[strings.ToLower(info.FullName)] = abbr
		for _, alt := range info.AlternateNames {
			idx[strings.ToLower(alt)] = abbr
		}
	}
	return idx
}

// NormalizeTeam resolves any team abbreviation or name variant to the
// canonical code. Returns false when nothing matches.
func NormalizeTeam(input string) (string, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(input))
	if cleaned == "" {
		return "", false
	}

	if _, ok := teamSystem[cleaned]; ok {
		return cleaned, true
	}
	if canonical, ok := teamAbbrevAliases[cleaned]; ok {
		return canonical, true
	}

	// Strip non-alphabetic characters ("NY-M" -> "NYM") and retry.
	alpha := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return r
		}
		return -1
	}, cleaned)
	if _, ok := teamSystem[alpha]; ok {
		return alpha, true
	}
	if canonical, ok := teamAbbrevAliases[alpha]; ok {
		return canonical, true
	}

	// Full names and nicknames.
	if abbr, ok := teamNameToAbbrev[strings.ToLower(strings.TrimSpace(input))]; ok {
		return abbr, true
	}

	return "", false
}

// HomePark returns a team's home park name, or false for unknown teams.
func HomePark(team string) (string, bool) {
	canonical, ok := NormalizeTeam(team)
	if !ok {
		return "", false
	}
	return teamSystem[canonical].Park, true
}

// TeamCodes returns every canonical team code, for fuzzy candidate sets.
func TeamCodes() []string {
	codes := make([]string, 0, len(teamSystem))
	for abbr := range teamSystem {
		codes = append(codes, abbr)
	}
	return codes
}
