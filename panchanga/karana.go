package panchanga

import (
	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/tables"
)

// karanaNameIndex maps a half-tithi number (1..60) to its index into
// tables.KaranaName. Half-tithi 1 is the fixed Kimstughna; 58..60 are the
// fixed Shakuni, Chatushpada, Naga; the remaining 56 half-tithis cycle the
// seven movable karanas (Bava..Vishti) eight times.
func karanaNameIndex(halfTithi int) int {
	switch halfTithi {
	case 1:
		return 10 // Kimstughna
	case 58:
		return 7 // Shakuni
	case 59:
		return 8 // Chatushpada
	case 60:
		return 9 // Naga
	default:
		return (halfTithi - 2) % 7 // Bava..Vishti
	}
}

// KaranaOf returns the 1..60 half-tithi number for the given Sun/Moon
// longitudes.
func KaranaOf(sunLong, moonLong float64) int {
	diff := angles.Normalize(moonLong - sunLong)
	n := int(diff/6.0) + 1
	if n > 60 {
		n = 60
	}
	return n
}

// KaranaName gives the classical name for a 1..60 half-tithi number.
func KaranaName(halfTithi int) string {
	if halfTithi < 1 || halfTithi > 60 {
		return "Unknown"
	}
	return tables.KaranaName[karanaNameIndex(halfTithi)]
}
