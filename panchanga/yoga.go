package panchanga

import (
	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/tables"
)

// YogaOf returns the 1..27 nitya yoga number for the given Sun/Moon
// longitudes: floor(((long(Sun) + long(Moon)) mod 360) / 13°20′) + 1.
func YogaOf(sunLong, moonLong float64) int {
	sum := angles.Normalize(sunLong + moonLong)
	n := int(sum/(40.0/3.0)) + 1
	if n > 27 {
		n = 27
	}
	return n
}

// YogaName gives the classical name for a 1..27 yoga number.
func YogaName(yoga int) string {
	if yoga < 1 || yoga > 27 {
		return "Unknown"
	}
	return tables.YogaName[yoga-1]
}
