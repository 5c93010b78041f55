package shadbala

import (
	"context"
	"math"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/tables"
)

// meanDailyMotion gives each planet's mean daily motion in degrees,
// against which Chesta Bala measures the current speed deviation.
var meanDailyMotion = map[tables.Planet]float64{
	tables.Mars:    0.5240,
	tables.Mercury: 1.3833, // mean, ignoring its wide speed swing
	tables.Jupiter: 0.0831,
	tables.Venus:   1.2000,
	tables.Saturn:  0.0334,
}

// stationSearchDays bounds how far ahead ChestaBala looks for an
// upcoming station before giving up on the proximity bonus.
const stationSearchDays = 15

// stationBonusVirupas is the maximum extra Chesta Bala awarded to a
// planet sitting exactly at an upcoming station.
const stationBonusVirupas = 10.0

// ChestaBala scores motional strength: retrograde planets always score
// 60, stationary planets 30, direct planets scale linearly with how far
// below mean motion their current speed is slower/faster, and any planet
// approaching a station within stationSearchDays gets a proximity bonus.
// Luminaries and nodes get fixed conventional values since they never
// retrograde in the usual sense (nodes always regress).
func ChestaBala(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart, p tables.Planet) float64 {
	if p == tables.Sun || p == tables.Moon {
		return 30
	}
	if p == tables.Rahu || p == tables.Ketu {
		return 60
	}
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	if math.Abs(pp.Speed) < 0.01 {
		return 30
	}

	var score float64
	switch {
	case pp.Retrograde:
		score = 60
	default:
		mean, ok := meanDailyMotion[p]
		if !ok || mean == 0 {
			score = 30
		} else {
			ratio := pp.Speed / mean
			score = 30 * (2 - ratio)
		}
	}

	score += stationProximityBonus(ctx, handle, ch, p)
	if score < 0 {
		return 0
	}
	if score > 60 {
		return 60
	}
	return score
}

// stationProximityBonus adds extra Chesta Bala the closer p sits to an
// upcoming station, per the classical rule that a planet nearing a halt
// gains strength before its speed actually reaches zero.
func stationProximityBonus(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart, p tables.Planet) float64 {
	jd := handle.JulianDay(ch.Timestamp)
	station, err := ephemeris.NewRetrogradeDetector(handle).FindPlanetaryStation(ctx, jd, p, stationSearchDays)
	if err != nil || station == nil {
		return 0
	}
	daysAway := math.Abs(float64(station.JulianDay) - float64(jd))
	if daysAway >= stationSearchDays {
		return 0
	}
	return stationBonusVirupas * (1 - daysAway/stationSearchDays)
}
