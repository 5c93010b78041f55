package panchanga

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// TithiOf returns the 1..30 tithi number and its fractional completion for
// the given Sun/Moon longitudes: tithi 1 begins at 0° Moon-Sun separation.
func TithiOf(sunLong, moonLong float64) (number int, fraction float64) {
	diff := angles.Normalize(moonLong - sunLong)
	exact := diff / 12.0
	number = int(exact) + 1
	if number > 30 {
		number = 30
	}
	fraction = exact - float64(number-1)
	return number, fraction
}

// Paksha reports the lunar fortnight a 1..30 tithi number falls in.
func Paksha(tithi int) string {
	if tithi <= 15 {
		return "Shukla"
	}
	return "Krishna"
}

// TithiName gives the classical name for a 1..30 tithi number, using the
// shared 15-entry table for both fortnights.
func TithiName(tithi int) string {
	inPaksha := tithi
	if inPaksha > 15 {
		inPaksha -= 15
	}
	if inPaksha < 1 || inPaksha > 15 {
		return "Unknown"
	}
	return tables.TithiName[inPaksha-1]
}

// maxJunctionIterations caps the tithi-junction binary search; halving a
// 48-hour window this many times reaches sub-second resolution long before
// the cap is hit, so reaching it signals a non-monotone bracket.
const maxJunctionIterations = 50

// defaultJunctionAccuracy is the default window-closure target.
const defaultJunctionAccuracy = time.Second

// tithiPhase evaluates f(t) = ((long(Moon,t) - long(Sun,t)) mod 360)/12,
// unwrapped so it increases monotonically across a single tithi's span
// instead of wrapping at the 0/30 boundary.
func tithiPhase(ctx context.Context, handle *ephemeris.Handle, t time.Time, referenceNumber int) (float64, error) {
	jd := handle.JulianDay(t)
	sun, err := handle.Position(ctx, jd, tables.Sun)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "panchanga.tithiPhase", err)
	}
	moon, err := handle.Position(ctx, jd, tables.Moon)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "panchanga.tithiPhase", err)
	}
	diff := angles.Normalize(moon.Longitude - sun.Longitude)
	phase := diff / 12.0
	// Unwrap near the reference tithi so a search spanning the 360°/0°
	// seam still sees a monotone function.
	for phase < float64(referenceNumber-1)-15 {
		phase += 30
	}
	for phase > float64(referenceNumber-1)+15 {
		phase -= 30
	}
	return phase, nil
}

// TithiJunction finds the instant the tithi transitions to targetNumber
// (1..30), searching within +/- 48h of around, by binary search over
// f(t) = ((long(Moon,t) − long(Sun,t)) mod 360)/12 − (targetNumber−1),
// halving the bracket until its width is at most accuracy (zero or
// negative defaults to one second) or maxJunctionIterations is reached.
func TithiJunction(ctx context.Context, handle *ephemeris.Handle, around time.Time, targetNumber int, accuracy time.Duration) (time.Time, error) {
	if accuracy <= 0 {
		accuracy = defaultJunctionAccuracy
	}
	if targetNumber < 1 || targetNumber > 30 {
		return time.Time{}, jyerr.Newf(jyerr.InvalidInput, "panchanga.TithiJunction", "tithi %d out of range", targetNumber)
	}
	window := 48 * time.Hour
	lo := around.Add(-window)
	hi := around.Add(window)
	target := float64(targetNumber - 1)

	loVal, err := tithiPhase(ctx, handle, lo, targetNumber)
	if err != nil {
		return time.Time{}, err
	}
	hiVal, err := tithiPhase(ctx, handle, hi, targetNumber)
	if err != nil {
		return time.Time{}, err
	}
	if (loVal-target)*(hiVal-target) > 0 {
		return time.Time{}, jyerr.Newf(jyerr.NumericFailure, "panchanga.TithiJunction", "no sign change bracketing tithi %d within 48h of %s", targetNumber, around)
	}

	for i := 0; i < maxJunctionIterations; i++ {
		if hi.Sub(lo) <= accuracy {
			break
		}
		mid := lo.Add(hi.Sub(lo) / 2)
		midVal, err := tithiPhase(ctx, handle, mid, targetNumber)
		if err != nil {
			return time.Time{}, err
		}
		if (midVal-target)*(loVal-target) <= 0 {
			hi = mid
			hiVal = midVal
		} else {
			lo = mid
			loVal = midVal
		}
	}
	if hi.Sub(lo) > accuracy {
		return time.Time{}, jyerr.Newf(jyerr.NumericFailure, "panchanga.TithiJunction", "bracket for tithi %d still wider than %s after %d iterations", targetNumber, accuracy, maxJunctionIterations)
	}
	return lo.Add(hi.Sub(lo) / 2), nil
}
