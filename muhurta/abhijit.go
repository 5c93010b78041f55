package muhurta

import (
	"time"

	"github.com/parashari-jyotish/jyotish/tables"
)

// AbhijitMuhurta returns the [start, end) window of the 8th of 15 equal
// daytime muhurtas — spanning 1/15th of daylight around local noon — per
// spec.md §4.10.
func AbhijitMuhurta(w Window) (start, end time.Time) {
	bounds := splitInterval(w.Sunrise, w.Sunset, tables.MuhurtasPerHalfDay)
	i := tables.AbhijitMuhurtaIndex - 1
	return bounds[i], bounds[i+1]
}

// BrahmaMuhurta returns the [start, end) window of the 14th of 15 equal
// nighttime muhurtas, counted from sunset to the next sunrise — the
// window just before sunrise.
func BrahmaMuhurta(w Window) (start, end time.Time) {
	bounds := splitInterval(w.Sunset, w.NextSunrise, tables.MuhurtasPerHalfDay)
	i := tables.BrahmaMuhurtaIndex - 1
	return bounds[i], bounds[i+1]
}

// InAbhijit reports whether t falls within w's Abhijit Muhurta.
func InAbhijit(w Window, t time.Time) bool {
	start, end := AbhijitMuhurta(w)
	return !t.Before(start) && t.Before(end)
}

// InBrahmaMuhurta reports whether t falls within w's Brahma Muhurta.
func InBrahmaMuhurta(w Window, t time.Time) bool {
	start, end := BrahmaMuhurta(w)
	return !t.Before(start) && t.Before(end)
}
