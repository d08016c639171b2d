package projection

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Gerrit Cole", "gerritcole"},
		{"Luis García Jr.", "luisgarcajr"},
		{"J.T. Realmuto", "jtrealmuto"},
		{"Vladimir Guerrero Jr.", "vladimirguerrero"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanName(tt.input); got != tt.expected {
			t.Errorf("CleanName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFirstInitialLastName(t *testing.T) {
	if got := FirstInitialLastName("Aaron Nola"); got != "anola" {
		t.Errorf("FirstInitialLastName(Aaron Nola) = %q, expected anola", got)
	}
	if got := FirstInitialLastName("Ichiro"); got != "ichiro" {
		t.Errorf("single-word name = %q, expected ichiro", got)
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("cole", "cole"); got != 1.0 {
		t.Errorf("identical strings = %f, expected 1.0", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("empty strings = %f, expected 1.0", got)
	}
	if got := Similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("disjoint strings = %f, expected 0.0", got)
	}
	if got := Similarity("gerritcole", "gerritcale"); got < 0.85 {
		t.Errorf("one-letter typo = %f, expected high similarity", got)
	}
}

func TestClosestMatches(t *testing.T) {
	candidates := []string{"gerritcole", "geraldcole", "sandykoufax", "corbinburnes"}

	matches := ClosestMatches("gerritcole", candidates, 3, 0.6)
	if len(matches) == 0 || matches[0] != "gerritcole" {
		t.Fatalf("expected exact candidate first, got %v", matches)
	}

	if matches := ClosestMatches("zzzzzz", candidates, 3, 0.6); len(matches) != 0 {
		t.Errorf("expected no matches below cutoff, got %v", matches)
	}

	if matches := ClosestMatches("gerritcole", candidates, 1, 0.5); len(matches) != 1 {
		t.Errorf("expected n to cap results, got %v", matches)
	}
}
