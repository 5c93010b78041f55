package shadbala

import "github.com/parashari-jyotish/jyotish/tables"

// NaisargikaBalaVirupas gives each strength-planet's fixed natural
// strength, per spec.md §4.5's classical constants.
var NaisargikaBalaVirupas = map[tables.Planet]float64{
	tables.Sun:     60.00,
	tables.Moon:    51.43,
	tables.Venus:   42.86,
	tables.Jupiter: 34.29,
	tables.Mercury: 25.71,
	tables.Mars:    17.14,
	tables.Saturn:  8.57,
}

// NaisargikaBala returns p's fixed natural strength, 0 for any body
// outside the seven traditional strength-planets.
func NaisargikaBala(p tables.Planet) float64 {
	return NaisargikaBalaVirupas[p]
}
