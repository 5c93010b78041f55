package panchanga

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// VaraOf returns the 0..6 weekday index (Sunday = 0) ruling ut at the given
// location: the weekday of sunrise, so an instant between midnight and
// sunrise belongs to the previous day's lord.
func VaraOf(ctx context.Context, handle *ephemeris.Handle, ut time.Time, latitude, longitude float64) (int, error) {
	jd := handle.JulianDay(ut)
	sunrise, _, err := handle.SunriseSunset(ctx, jd, latitude, longitude)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "panchanga.VaraOf", err)
	}
	civilDay := ut
	if jd < sunrise {
		civilDay = ut.Add(-24 * time.Hour)
	}
	return int(civilDay.Weekday()), nil
}

// VaraLord gives the ruling planet for a 0..6 weekday index.
func VaraLord(weekday int) tables.Planet {
	return tables.VaraLord[((weekday%7)+7)%7]
}

// VaraName gives the classical Sanskrit name for a 0..6 weekday index.
func VaraName(weekday int) string {
	return tables.VaraName[((weekday%7)+7)%7]
}
