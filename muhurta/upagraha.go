package muhurta

import (
	"context"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
)

// Upagraha is the set of classical shadow-point longitudes derived from
// the Sun's longitude and the weekday/sunrise-fraction slot machinery this
// package already builds for Rahukalam — SPEC_FULL.md §5's supplemented
// feature, added because it shares that same derivation family.
type Upagraha struct {
	Gulika      float64
	Mandi       float64
	Dhuma       float64
	Vyatipata   float64
	Parivesha   float64
	Indrachapa  float64
	Upaketu     float64
}

// fixedOffsetUpagrahas derives Dhuma, Vyatipata, Parivesha, Indrachapa, and
// Upaketu from the Sun's longitude via the classical chain of fixed
// angular offsets: Dhuma = Sun + 133°20′; each subsequent point mirrors or
// advances the previous by a fixed amount.
func fixedOffsetUpagrahas(sunLongitude float64) (dhuma, vyatipata, parivesha, indrachapa, upaketu float64) {
	dhuma = angles.Normalize(sunLongitude + 133 + 20.0/60.0)
	vyatipata = angles.Normalize(360 - dhuma)
	parivesha = angles.Normalize(vyatipata + 180)
	indrachapa = angles.Normalize(360 - parivesha)
	upaketu = angles.Normalize(indrachapa + 16 + 40.0/60.0)
	return
}

// ComputeUpagraha derives the full Upagraha set: Gulika and Mandi (the
// same point under two names) from the ascendant degree rising at the
// start of w's Gulikalam slot, and the remaining five from sunLongitude
// via fixed classical offsets.
func ComputeUpagraha(ctx context.Context, handle *ephemeris.Handle, w Window, sunLongitude, latitude, longitude float64, houseSystem ephemeris.HouseSystem) (Upagraha, error) {
	start, _ := Gulikalam(w)
	jd := handle.JulianDay(start)
	cusps, err := handle.Houses(ctx, jd, latitude, longitude, houseSystem)
	if err != nil {
		return Upagraha{}, jyerr.New(jyerr.EphemerisUnavailable, "muhurta.ComputeUpagraha", err)
	}
	gulika := angles.Normalize(cusps[0])

	dhuma, vyatipata, parivesha, indrachapa, upaketu := fixedOffsetUpagrahas(sunLongitude)
	return Upagraha{
		Gulika:     gulika,
		Mandi:      gulika,
		Dhuma:      dhuma,
		Vyatipata:  vyatipata,
		Parivesha:  parivesha,
		Indrachapa: indrachapa,
		Upaketu:    upaketu,
	}, nil
}

