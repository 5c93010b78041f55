package panchanga

import (
	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/tables"
)

// NakshatraOf derives the 0..26 lunar mansion, its pada (1..4), and whether
// the longitude falls in the intercalary Abhijit band, from Moon's
// longitude.
func NakshatraOf(moonLong float64) (index, pada int, abhijit bool) {
	return angles.Nakshatra(moonLong), angles.Pada(moonLong), angles.InAbhijit(moonLong)
}

// NakshatraName gives the classical name for a 0..26 nakshatra index.
func NakshatraName(index int) string {
	if index < 0 || index > 26 {
		return "Unknown"
	}
	return tables.NakshatraName[index]
}
