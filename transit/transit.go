// Package transit evaluates ephemeris positions at an arbitrary instant
// against a natal Chart, finds sign-ingress and aspect-exactness events by
// bracketed binary search, and flags the classical special transits
// (Sade Sati, Dhaiya, Panchak), per spec.md §4.9.
package transit

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// Position is one planet's transiting placement evaluated against a natal
// chart's ascendant and Moon.
type Position struct {
	Planet              tables.Planet
	Longitude           float64
	Sign                int
	HouseFromAscendant  int
	HouseFromNatalMoon  int
}

// Current evaluates every traditional planet's position at t and reports
// its house counted from the natal ascendant and, separately, from the
// natal Moon.
func Current(ctx context.Context, handle *ephemeris.Handle, natal *chart.Chart, t time.Time) (map[tables.Planet]Position, error) {
	jd := handle.JulianDay(t)
	natalMoon, ok := natal.Positions[tables.Moon]
	if !ok {
		return nil, jyerr.Newf(jyerr.InvalidInput, "transit.Current", "natal chart missing Moon position")
	}
	ascSign := natal.AscendantSign()
	moonSign := natalMoon.Sign

	planets := append([]tables.Planet{}, tables.SevenPlanets...)
	planets = append(planets, tables.Rahu, tables.Ketu)

	out := make(map[tables.Planet]Position, len(planets))
	for _, p := range planets {
		var long float64
		if p == tables.Ketu {
			rahu, err := handle.Position(ctx, jd, tables.Rahu)
			if err != nil {
				return nil, jyerr.New(jyerr.EphemerisUnavailable, "transit.Current", err)
			}
			long = angles.Normalize(rahu.Longitude + 180)
		} else {
			pos, err := handle.Position(ctx, jd, p)
			if err != nil {
				return nil, jyerr.New(jyerr.EphemerisUnavailable, "transit.Current", err)
			}
			long = pos.Longitude
		}
		sign := angles.Sign(long)
		out[p] = Position{
			Planet:             p,
			Longitude:          long,
			Sign:               sign,
			HouseFromAscendant: angles.HouseFromAscendant(sign, ascSign),
			HouseFromNatalMoon: angles.HouseFromAscendant(sign, moonSign),
		}
	}
	return out, nil
}

func longitudeAt(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, t time.Time) (float64, error) {
	jd := handle.JulianDay(t)
	if p == tables.Ketu {
		rahu, err := handle.Position(ctx, jd, tables.Rahu)
		if err != nil {
			return 0, jyerr.New(jyerr.EphemerisUnavailable, "transit.longitudeAt", err)
		}
		return angles.Normalize(rahu.Longitude + 180), nil
	}
	pos, err := handle.Position(ctx, jd, p)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "transit.longitudeAt", err)
	}
	return pos.Longitude, nil
}
