// Package jaimini implements the Jaimini karaka and pada system —
// Atmakaraka, Karakamsa, Arudha Pada, and Upapada — per spec.md §4.11.
package jaimini

import (
	"context"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/divisional"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// Atmakaraka returns the planet with the highest degree within its own
// sign (0..30°), among the seven traditional planets, or the eight
// traditional-plus-Rahu set when karakas is config.EightKarakas.
func Atmakaraka(ch *chart.Chart, karakas config.AtmakarakaKarakaCount) (tables.Planet, error) {
	candidates := append([]tables.Planet{}, tables.SevenPlanets...)
	if karakas == config.EightKarakas {
		candidates = append(candidates, tables.Rahu)
	}
	var best tables.Planet
	bestDegree := -1.0
	for _, p := range candidates {
		pp, ok := ch.Positions[p]
		if !ok {
			continue
		}
		if pp.PositionInSign > bestDegree {
			bestDegree = pp.PositionInSign
			best = p
		}
	}
	if bestDegree < 0 {
		return 0, jyerr.Newf(jyerr.InvalidInput, "jaimini.Atmakaraka", "chart has no candidate planet positions")
	}
	return best, nil
}

// Karakamsa returns the 0..11 sign containing the Atmakaraka in the
// Navamsa (D9) chart.
func Karakamsa(ctx context.Context, ch *chart.Chart, ak tables.Planet) (int, error) {
	navamsa, err := divisional.Project(ctx, ch, divisional.D9)
	if err != nil {
		return 0, err
	}
	pp, ok := navamsa.Positions[ak]
	if !ok {
		return 0, jyerr.Newf(jyerr.InvalidInput, "jaimini.Karakamsa", "Navamsa chart missing %s", ak)
	}
	return pp.Sign, nil
}

// ArudhaPada computes the Arudha for house (1..12): let d be the house
// distance from house's sign to its lord's occupied sign, and count d
// signs forward from the lord's sign; when that coincides with house
// itself or its 7th, advance by the 10th or 4th house respectively, per
// spec.md §4.11's classical exception.
func ArudhaPada(ch *chart.Chart, house int) int {
	ascSign := ch.AscendantSign()
	hSign := angles.SignFromHouse(ascSign, house)
	lord := tables.SignLord[hSign]

	lordSign := hSign
	if pp, ok := ch.Positions[lord]; ok {
		lordSign = pp.Sign
	}

	d := angles.HouseDistance(hSign, lordSign)
	arudha := angles.SignFromHouse(lordSign, d)

	switch angles.HouseDistance(hSign, arudha) {
	case 1:
		arudha = angles.SignFromHouse(arudha, 10)
	case 7:
		arudha = angles.SignFromHouse(arudha, 4)
	}
	return arudha
}

// Upapada returns the Arudha of the 12th house (UL), the classical
// marriage-and-spouse significator pada.
func Upapada(ch *chart.Chart) int {
	return ArudhaPada(ch, 12)
}
