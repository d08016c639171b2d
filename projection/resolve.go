package projection

import (
	"sort"
	"strings"
)

// nicknameMap folds common nickname spellings into the reference table's
// canonical cleaned names.
var nicknameMap = map[string]string{
	"vladimirguerrerojr": "vladimirguerrero",
	"ronaldacuna":        "ronaldacunajr",
	"mikeozuna":          "marcellozuna",
	"mikeharris":         "michaelharrisii",
	"joshsmith":          "joshuasmith",
	"miketrout":          "michaeltrout",
	"chrisrodriguez":     "christianrodriguez",
	"nickmartinez":       "nicholasmartinez",
}

// CleanName normalizes a player name for matching: lowercase, letters
// only, nicknames folded to their canonical form.
func CleanName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if canonical, ok := nicknameMap[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// FirstInitialLastName collapses "Aaron Nola" to "anola", the form some
// lineup sources abbreviate names to.
func FirstInitialLastName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) < 2 {
		return CleanName(name)
	}
	return CleanName(string(parts[0][0]) + strings.Join(parts[1:], ""))
}

// levenshtein computes the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func minInt(a, b, c int) int {
	if a < b && a < c {
		return a
	}
	if b < c {
		return b
	}
	return c
}

// Similarity scores two strings in [0, 1], 1.0 being identical.
func Similarity(s1, s2 string) float64 {
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(s1, s2))/float64(maxLen)
}

// ClosestMatches returns up to n candidates scoring at or above cutoff
// against target, best first. Ties keep the earlier candidate.
func ClosestMatches(target string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		value string
		score float64
	}

	var hits []scored
	for _, c := range candidates {
		if s := Similarity(target, c); s >= cutoff {
			hits = append(hits, scored{c, s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
