// Package muhurta computes the classical auspicious-timing subsystems
// (Hora, Choghadiya, Rahukalam/Gulikalam/Yamagandam, Abhijit, Brahma
// Muhurta) per spec.md §4.10, plus the Upagraha shadow-point longitudes
// supplemented in SPEC_FULL.md §5.
package muhurta

import (
	"time"

	"github.com/parashari-jyotish/jyotish/jyerr"
)

// splitInterval divides [start, end) into n equal-width boundaries,
// returning n+1 instants: boundaries[i] is the start of the i-th slot and
// boundaries[i+1] its end. Every weekday-indexed time-of-day subsystem in
// this package (Hora's 12+12, Choghadiya's 8+8, the inauspicious-slot
// eighths, Abhijit/Brahma's fifteenths) is a thin lookup over this one
// division.
func splitInterval(start, end time.Time, n int) []time.Time {
	span := end.Sub(start)
	boundaries := make([]time.Time, n+1)
	for i := 0; i <= n; i++ {
		boundaries[i] = start.Add(span * time.Duration(i) / time.Duration(n))
	}
	return boundaries
}

// slotIndex returns the 0-indexed slot in boundaries (length n+1) that t
// falls in, clamped to [0, n-1].
func slotIndex(boundaries []time.Time, t time.Time) int {
	n := len(boundaries) - 1
	for i := 0; i < n; i++ {
		if !t.Before(boundaries[i]) && t.Before(boundaries[i+1]) {
			return i
		}
	}
	if t.Before(boundaries[0]) {
		return 0
	}
	return n - 1
}

// Window carries the three JulianDay-adjacent instants every muhurta
// calculation needs: the civil day's own sunrise/sunset and the following
// sunrise, bounding the daytime and nighttime halves.
type Window struct {
	Weekday     int
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time
}

func (w Window) validate(op string) error {
	if !w.Sunrise.Before(w.Sunset) || !w.Sunset.Before(w.NextSunrise) {
		return jyerr.Newf(jyerr.InvalidInput, op, "window must satisfy sunrise < sunset < nextSunrise")
	}
	return nil
}
