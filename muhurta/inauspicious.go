package muhurta

import (
	"time"

	"github.com/parashari-jyotish/jyotish/tables"
)

// eighthSpan returns the [start, end) instants of the 1-indexed eighth
// (1..8) of daytime.
func eighthSpan(w Window, eighth int) (time.Time, time.Time) {
	bounds := splitInterval(w.Sunrise, w.Sunset, 8)
	return bounds[eighth-1], bounds[eighth]
}

func weekdayIndex(weekday int) int { return ((weekday % 7) + 7) % 7 }

// Rahukalam returns Rahukalam's [start, end) window for w's civil day,
// per tables.RahukalamEighth. This module has no classical nighttime
// Rahukalam table available (the corpus's tables.go only carries the
// daytime eighth-index maps), so Rahukalam/Gulikalam/Yamagandam are
// treated as daytime-only here; recorded as an Open Question resolution
// in DESIGN.md.
func Rahukalam(w Window) (start, end time.Time) {
	return eighthSpan(w, tables.RahukalamEighth[weekdayIndex(w.Weekday)])
}

// Gulikalam returns Gulikalam's [start, end) window for w's civil day,
// per tables.GulikalamEighth.
func Gulikalam(w Window) (start, end time.Time) {
	return eighthSpan(w, tables.GulikalamEighth[weekdayIndex(w.Weekday)])
}

// Yamagandam returns Yamagandam's [start, end) window for w's civil day,
// per tables.YamagandamEighth.
func Yamagandam(w Window) (start, end time.Time) {
	return eighthSpan(w, tables.YamagandamEighth[weekdayIndex(w.Weekday)])
}
