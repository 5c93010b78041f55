// Package ephemeristest supplies a deterministic fake ephemeris.Provider
// built from simplified mean-orbital-element formulas, not a real
// ephemeris, so engine tests exercise real numeric code paths without a
// network or data-file dependency.
package ephemeristest

import (
	"context"
	"math"
	"time"

	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/tables"
)

// meanElement gives a body's longitude at J2000 and its mean daily motion
// in degrees/day, enough to produce plausible, deterministic, continuously
// moving test longitudes (not astronomically accurate).
type meanElement struct {
	epochLongitude float64
	dailyMotion    float64
}

var meanElements = map[tables.Planet]meanElement{
	tables.Sun:     {epochLongitude: 280.460, dailyMotion: 0.9856},
	tables.Moon:    {epochLongitude: 218.316, dailyMotion: 13.1764},
	tables.Mars:    {epochLongitude: 355.433, dailyMotion: 0.5240},
	tables.Mercury: {epochLongitude: 252.251, dailyMotion: 4.0923},
	tables.Jupiter: {epochLongitude: 34.351, dailyMotion: 0.0831},
	tables.Venus:   {epochLongitude: 181.980, dailyMotion: 1.6021},
	tables.Saturn:  {epochLongitude: 50.077, dailyMotion: 0.0334},
	tables.Rahu:    {epochLongitude: 125.044, dailyMotion: -0.0529},
	tables.Uranus:  {epochLongitude: 314.055, dailyMotion: 0.0117},
	tables.Neptune: {epochLongitude: 304.348, dailyMotion: 0.0060},
	tables.Pluto:   {epochLongitude: 238.958, dailyMotion: 0.0040},
	tables.Chiron:  {epochLongitude: 209.0, dailyMotion: 0.0196},
	tables.Ceres:   {epochLongitude: 95.0, dailyMotion: 0.2140},
	tables.Pallas:  {epochLongitude: 15.0, dailyMotion: 0.1811},
	tables.Juno:    {epochLongitude: 275.0, dailyMotion: 0.1568},
	tables.Vesta:   {epochLongitude: 42.0, dailyMotion: 0.2717},
}

// j2000JD is the Julian day of the J2000.0 epoch.
const j2000JD = 2451545.0

// lahiriBaseAyanamsa is the approximate Lahiri ayanamsa at J2000, with a
// fixed annual precession rate; adequate for deterministic test fixtures.
const lahiriBaseAyanamsa = 23.85
const ayanamsaRatePerDay = 50.29 / 3600.0 / 365.25

// Provider is a deterministic fake implementing ephemeris.Provider.
type Provider struct{}

// New creates a fake Provider.
func New() *Provider { return &Provider{} }

var _ ephemeris.Provider = (*Provider)(nil)

func (p *Provider) Ayanamsa(ctx context.Context, jd ephemeris.JulianDay, mode ephemeris.AyanamsaMode) (float64, error) {
	days := float64(jd) - j2000JD
	base := lahiriBaseAyanamsa + ayanamsaRatePerDay*days
	switch mode {
	case ephemeris.KPNewAyanamsa:
		return base - 0.13, nil
	case ephemeris.KPOldAyanamsa:
		return base - 0.10, nil
	default:
		return base, nil
	}
}

func (p *Provider) Position(ctx context.Context, jd ephemeris.JulianDay, planet tables.Planet) (ephemeris.Position, error) {
	el, ok := meanElements[planet]
	if !ok {
		return ephemeris.Position{}, errUnknownBody(planet)
	}
	days := float64(jd) - j2000JD
	lon := math.Mod(el.epochLongitude+el.dailyMotion*days, 360)
	if lon < 0 {
		lon += 360
	}
	ayan, _ := p.Ayanamsa(ctx, jd, ephemeris.Lahiri)
	sidereal := lon - ayan
	sidereal = math.Mod(sidereal, 360)
	if sidereal < 0 {
		sidereal += 360
	}
	return ephemeris.Position{
		Longitude: sidereal,
		Latitude:  0,
		Distance:  1,
		Speed:     el.dailyMotion,
	}, nil
}

func (p *Provider) Houses(ctx context.Context, jd ephemeris.JulianDay, latitude, longitude float64, system ephemeris.HouseSystem) ([12]float64, error) {
	sunPos, _ := p.Position(ctx, jd, tables.Sun)
	asc := math.Mod(sunPos.Longitude+90+longitude/15, 360)
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		cusps[i] = math.Mod(asc+float64(i)*30, 360)
	}
	return cusps, nil
}

func (p *Provider) RiseSet(ctx context.Context, jd ephemeris.JulianDay, planet tables.Planet, latitude, longitude float64) (ephemeris.JulianDay, ephemeris.JulianDay, error) {
	dayStart := ephemeris.JulianDay(math.Floor(float64(jd)))
	return dayStart + 0.25, dayStart + 0.75, nil
}

func (p *Provider) SunriseSunset(ctx context.Context, jd ephemeris.JulianDay, latitude, longitude float64) (ephemeris.JulianDay, ephemeris.JulianDay, error) {
	dayStart := ephemeris.JulianDay(math.Floor(float64(jd)-0.5) + 0.5)
	return dayStart + 0.25, dayStart + 0.75, nil
}

func (p *Provider) JulianDay(t time.Time) ephemeris.JulianDay {
	return ephemeris.TimeToJulianDay(t)
}

func (p *Provider) TimeFromJulianDay(jd ephemeris.JulianDay) time.Time {
	return ephemeris.JulianDayToTime(jd)
}

func (p *Provider) IsAvailable(ctx context.Context) bool { return true }

func (p *Provider) GetHealthStatus(ctx context.Context) (*ephemeris.HealthStatus, error) {
	return &ephemeris.HealthStatus{Available: true, LastCheck: time.Now(), Source: "ephemeristest"}, nil
}

func (p *Provider) GetProviderName() string { return "ephemeristest" }
func (p *Provider) GetVersion() string      { return "fixture-1" }
func (p *Provider) Close() error            { return nil }

type unknownBodyError struct{ planet tables.Planet }

func (e unknownBodyError) Error() string { return "ephemeristest: unknown body " + e.planet.String() }

func errUnknownBody(p tables.Planet) error { return unknownBodyError{planet: p} }
