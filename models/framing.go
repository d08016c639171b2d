package models

// FramingTable maps catcher names to framing runs per game (roughly
// ±0.5 run per nine innings). Positive runs help the pitcher's called
// strikes; negative runs cost them.
type FramingTable map[string]float64

// DefaultFramingTable returns the built-in framing table used when no
// external table is supplied.
func DefaultFramingTable() FramingTable {
	return FramingTable{
		"Jonah Heim":        0.00,
		"Logan O'Hoppe":     -0.33,
		"Francisco Alvarez": -0.22,
		"Connor Wong":       0.11,
		"Korey Lee":         0.00,
		"Jose Trevino":      0.00,
		"Henry Davis":       -0.11,
		"Salvador Perez":    0.11,
		"Keibert Ruiz":      -0.44,
		"Sean Murphy":       0.00,
		"Kyle Higashioka":   0.11,
		"Cal Raleigh":       0.22,
		"Patrick Bailey":    0.44,
		"Yainer Diaz":       -0.22,
		"Gabriel Moreno":    0.33,
	}
}
