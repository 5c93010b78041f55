// Package chart builds the immutable Chart snapshot every derivation
// service in this module reads from: ephemeris positions plus ascendant
// cusp, reduced into sign/nakshatra/pada/combustion/dignity per planet.
package chart

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/log"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
	"go.opentelemetry.io/otel/attribute"
)

// Location is a geographic point for ephemeris and house calculations.
type Location struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// PlanetPosition is a single body's fully-derived placement within a Chart.
type PlanetPosition struct {
	Planet         tables.Planet
	Longitude      float64
	Latitude       float64
	Distance       float64
	Speed          float64
	Sign           int
	PositionInSign float64
	Nakshatra      int
	Pada           int
	Retrograde     bool
	Combust        bool
	Dignity        tables.Dignity
	AtWar          bool // Graha Yuddha: true when in planetary war and losing
}

// Chart is an immutable snapshot of a moment and place: ascendant, house
// cusps, and every requested planet's derived position. Built once from
// ephemeris output and shared read-only by every derivation package.
type Chart struct {
	Timestamp  time.Time
	Location   Location
	Ayanamsa   float64
	Ascendant  float64
	Cusps      [12]float64
	Positions  map[tables.Planet]PlanetPosition
	Houses     map[int][]tables.Planet
	Flags      config.CalculationFlags
}

// combustOrb gives the direct-motion combustion orb in degrees for the
// planets that can combust; Mercury and Venus tighten when retrograde.
func combustOrb(p tables.Planet, retrograde bool) (float64, bool) {
	switch p {
	case tables.Moon:
		return 12, true
	case tables.Mars:
		return 17, true
	case tables.Mercury:
		if retrograde {
			return 12, true
		}
		return 14, true
	case tables.Jupiter:
		return 11, true
	case tables.Venus:
		if retrograde {
			return 8, true
		}
		return 10, true
	case tables.Saturn:
		return 15, true
	default:
		return 0, false
	}
}

// AscendantSign returns the 0..11 sign housing the ascendant.
func (c *Chart) AscendantSign() int {
	return angles.Sign(c.Ascendant)
}

// Build constructs a Chart from ephemeris output for the given instant,
// location, and flags, per spec.md §4.1's ordered steps.
func Build(ctx context.Context, handle *ephemeris.Handle, ut time.Time, loc Location, flags config.CalculationFlags) (*Chart, error) {
	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "chart.Build")
	defer span.End()
	span.SetAttributes(
		attribute.String("timestamp", ut.Format(time.RFC3339)),
		attribute.Float64("latitude", loc.Latitude),
		attribute.Float64("longitude", loc.Longitude),
	)

	if loc.Latitude < -90 || loc.Latitude > 90 {
		return nil, jyerr.Newf(jyerr.InvalidInput, "chart.Build", "latitude %f out of range", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return nil, jyerr.Newf(jyerr.InvalidInput, "chart.Build", "longitude %f out of range", loc.Longitude)
	}

	jd := handle.JulianDay(ut)

	ayanamsaMode := ephemeris.Lahiri
	switch flags.SiderealMode {
	case config.KPNewAyanamsa:
		ayanamsaMode = ephemeris.KPNewAyanamsa
	case config.KPOldAyanamsa:
		ayanamsaMode = ephemeris.KPOldAyanamsa
	}
	ayanamsa, err := handle.Ayanamsa(ctx, jd, ayanamsaMode)
	if err != nil {
		span.RecordError(err)
		return nil, jyerr.New(jyerr.EphemerisUnavailable, "chart.Build.Ayanamsa", err)
	}

	planets := append([]tables.Planet{}, tables.SevenPlanets...)
	planets = append(planets, tables.Rahu)
	if flags.IncludeOuterPlanets {
		planets = append(planets, tables.OuterPlanets...)
	}

	raw := make(map[tables.Planet]ephemeris.Position, len(planets)+1)
	for _, p := range planets {
		pos, err := handle.Position(ctx, jd, p)
		if err != nil {
			span.RecordError(err)
			return nil, jyerr.New(jyerr.EphemerisUnavailable, "chart.Build.Position", err)
		}
		raw[p] = pos
	}

	// Ketu is always exactly opposite Rahu, never queried directly.
	rahuPos := raw[tables.Rahu]
	raw[tables.Ketu] = ephemeris.Position{
		Longitude: angles.Normalize(rahuPos.Longitude + 180),
		Latitude:  -rahuPos.Latitude,
		Distance:  rahuPos.Distance,
		Speed:     rahuPos.Speed,
	}

	houseSystem := ephemeris.WholeSignHouses
	switch flags.HouseSystem {
	case config.Placidus:
		houseSystem = ephemeris.PlacidusHouses
	case config.KochHouse:
		houseSystem = ephemeris.KochHouses
	case config.Equal:
		houseSystem = ephemeris.EqualHouses
	}
	cusps, err := handle.Houses(ctx, jd, loc.Latitude, loc.Longitude, houseSystem)
	if err != nil {
		span.RecordError(err)
		return nil, jyerr.New(jyerr.EphemerisUnavailable, "chart.Build.Houses", err)
	}
	ascendant := cusps[0]
	ascSign := angles.Sign(ascendant)
	if flags.HouseSystem == config.WholeSign {
		for i := 0; i < 12; i++ {
			cusps[i] = float64((ascSign+i)%12) * 30
		}
	}

	sunLong := raw[tables.Sun].Longitude

	positions := make(map[tables.Planet]PlanetPosition, len(raw))
	for p, pos := range raw {
		sign := angles.Sign(pos.Longitude)
		retrograde := pos.Speed < 0

		var combust bool
		if orb, ok := combustOrb(p, retrograde); ok {
			combust = angles.AbsArc(sunLong, pos.Longitude) <= orb
		}

		positions[p] = PlanetPosition{
			Planet:         p,
			Longitude:      pos.Longitude,
			Latitude:       pos.Latitude,
			Distance:       pos.Distance,
			Speed:          pos.Speed,
			Sign:           sign,
			PositionInSign: angles.PositionInSign(pos.Longitude),
			Nakshatra:      angles.Nakshatra(pos.Longitude),
			Pada:           angles.Pada(pos.Longitude),
			Retrograde:     retrograde,
			Combust:        combust,
			Dignity:        tables.DignityOf(p, pos.Longitude),
		}
	}

	markGrahaYuddha(positions)

	houses := make(map[int][]tables.Planet)
	for p, pp := range positions {
		h := angles.HouseFromAscendant(pp.Sign, ascSign)
		houses[h] = append(houses[h], p)
	}

	log.Logger().DebugContext(ctx, "chart built",
		"timestamp", ut, "ascendant_sign", tables.SignName[ascSign], "ayanamsa", ayanamsa)

	return &Chart{
		Timestamp: ut,
		Location:  loc,
		Ayanamsa:  ayanamsa,
		Ascendant: ascendant,
		Cusps:     cusps,
		Positions: positions,
		Houses:    houses,
		Flags:     flags,
	}, nil
}

// markGrahaYuddha flags the loser of a planetary war: among the five
// non-luminary, non-node classical planets, when two share a sign within
// 1° of longitude, the one with the greater longitude (closer to the
// next sign) loses and is marked AtWar.
func markGrahaYuddha(positions map[tables.Planet]PlanetPosition) {
	combatants := []tables.Planet{tables.Mars, tables.Mercury, tables.Jupiter, tables.Venus, tables.Saturn}
	for i := 0; i < len(combatants); i++ {
		for j := i + 1; j < len(combatants); j++ {
			a, okA := positions[combatants[i]]
			b, okB := positions[combatants[j]]
			if !okA || !okB || a.Sign != b.Sign {
				continue
			}
			if angles.AbsArc(a.Longitude, b.Longitude) > 1.0 {
				continue
			}
			loser := combatants[i]
			if a.PositionInSign < b.PositionInSign {
				loser = combatants[j]
			}
			pp := positions[loser]
			pp.AtWar = true
			positions[loser] = pp
		}
	}
}
