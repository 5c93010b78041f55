package shadbala

import (
	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/tables"
)

// digStrongHouse gives the 1-indexed house in which each planet is at its
// directional peak.
var digStrongHouse = map[tables.Planet]int{
	tables.Sun: 10, tables.Mars: 10,
	tables.Moon: 4, tables.Venus: 4,
	tables.Mercury: 1, tables.Jupiter: 1,
	tables.Saturn: 7,
}

// DigBala scores directional strength: 60 virupas at the planet-specific
// strong house cusp, falling off linearly to 0 at the opposite cusp.
func DigBala(ch *chart.Chart, p tables.Planet) float64 {
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	house, ok := digStrongHouse[p]
	if !ok {
		return 30 // outer/nodal bodies: no classical dig-bala rule, neutral midpoint
	}
	cusp := ch.Cusps[(house-1)%12]
	dist := angles.AbsArc(pp.Longitude, cusp)
	return 60 * (1 - dist/180)
}
