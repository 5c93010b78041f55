// Package kp implements the Krishnamurti Paddhati sub-lord engine and
// ABCD significator grouping, per spec.md §4.6.
package kp

import (
	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/tables"
)

// nakshatraSpan is the width of one of the 27 lunar mansions, in degrees.
const nakshatraSpan = 360.0 / 27.0

// Position is a single longitude's full KP decomposition.
type Position struct {
	Longitude  float64
	Sign       int
	SignLord   tables.Planet
	Star       int
	StarLord   tables.Planet
	SubLord    tables.Planet
	SubSubLord tables.Planet
	SubStart   float64
	SubEnd     float64
}

func vimshottariIndex(p tables.Planet) int {
	for i, l := range tables.VimshottariOrder {
		if l == p {
			return i
		}
	}
	return 0
}

// proportionalSplit walks the nine Vimshottari lords starting at
// startLord, each given a share of spanWidth proportional to its
// mahadasha years, and returns whichever lord's share contains offset
// (measured from spanStart) along with that lord's own sub-span bounds.
func proportionalSplit(startLord tables.Planet, spanStart, spanWidth, offset float64) (lord tables.Planet, segStart, segEnd float64) {
	startIdx := vimshottariIndex(startLord)
	cumulative := 0.0
	for i := 0; i < 9; i++ {
		l := tables.VimshottariOrder[(startIdx+i)%9]
		share := tables.VimshottariYears[l] / tables.VimshottariTotalYears * spanWidth
		if i == 8 || offset < cumulative+share {
			return l, spanStart + cumulative, spanStart + cumulative + share
		}
		cumulative += share
	}
	l := tables.VimshottariOrder[startIdx]
	return l, spanStart, spanStart + spanWidth
}

// Decompose produces longitude's full KP position: sign and sign lord,
// nakshatra (star) and star lord, sub-lord (a proportional split of the
// nakshatra span starting at the star lord), and sub-sub-lord (the same
// proportional split applied again within the sub-span, starting at the
// sub-lord).
func Decompose(longitude float64) Position {
	longitude = angles.Normalize(longitude)
	sign := angles.Sign(longitude)
	star := angles.Nakshatra(longitude)
	starLord := tables.NakshatraLord(star)
	nakStart := float64(star) * nakshatraSpan

	subLord, subStart, subEnd := proportionalSplit(starLord, nakStart, nakshatraSpan, longitude-nakStart)
	subSubLord, _, _ := proportionalSplit(subLord, subStart, subEnd-subStart, longitude-subStart)

	return Position{
		Longitude:  longitude,
		Sign:       sign,
		SignLord:   tables.SignLord[sign],
		Star:       star,
		StarLord:   starLord,
		SubLord:    subLord,
		SubSubLord: subSubLord,
		SubStart:   subStart,
		SubEnd:     subEnd,
	}
}

// Significators is the ABCD house-significator grouping for one planet.
type Significators struct {
	Planet tables.Planet
	A      []int // houses occupied by the planet's sign lord
	B      []int // houses occupied by the star lord
	C      []int // houses owned by the planet
	D      []int // houses owned by the sign lord
}

func occupiedHouses(ch *chart.Chart, occupant tables.Planet) []int {
	var houses []int
	for h, occupants := range ch.Houses {
		for _, o := range occupants {
			if o == occupant {
				houses = append(houses, h)
				break
			}
		}
	}
	return houses
}

func ownedHouses(ch *chart.Chart, lord tables.Planet) []int {
	var houses []int
	ascSign := ch.AscendantSign()
	for sign, l := range tables.SignLord {
		if l != lord {
			continue
		}
		houses = append(houses, angles.HouseFromAscendant(sign, ascSign))
	}
	return houses
}

// ComputeSignificators builds p's ABCD significator groups from its KP
// decomposition and the chart's house occupation.
func ComputeSignificators(ch *chart.Chart, p tables.Planet) Significators {
	pp, ok := ch.Positions[p]
	if !ok {
		return Significators{Planet: p}
	}
	pos := Decompose(pp.Longitude)

	return Significators{
		Planet: p,
		A:      occupiedHouses(ch, pos.SignLord),
		B:      occupiedHouses(ch, pos.StarLord),
		C:      ownedHouses(ch, p),
		D:      ownedHouses(ch, pos.SignLord),
	}
}
