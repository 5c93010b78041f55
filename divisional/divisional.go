// Package divisional projects a Chart's longitudes through the classical
// Varga (divisional chart) mapping functions, D1 through D249.
package divisional

import (
	"context"
	"math"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
)

// Type enumerates the supported divisional chart types.
type Type string

const (
	D1   Type = "D1"
	D2   Type = "D2"
	D3   Type = "D3"
	D4   Type = "D4"
	D5   Type = "D5"
	D6   Type = "D6"
	D7   Type = "D7"
	D8   Type = "D8"
	D9   Type = "D9"
	D10  Type = "D10"
	D11  Type = "D11"
	D12  Type = "D12"
	D16  Type = "D16"
	D20  Type = "D20"
	D24  Type = "D24"
	D27  Type = "D27"
	D30  Type = "D30"
	D40  Type = "D40"
	D45  Type = "D45"
	D60  Type = "D60"
	D150 Type = "D150"
	D249 Type = "D249"
)

var partsOf = map[Type]int{
	D1: 1, D2: 2, D3: 3, D4: 4, D5: 5, D6: 6, D7: 7, D8: 8, D9: 9, D10: 10,
	D11: 11, D12: 12, D16: 16, D20: 20, D24: 24, D27: 27, D30: 30, D40: 40,
	D45: 45, D60: 60, D150: 150,
}

// projected is a single division's mapping result for one longitude.
type projected struct {
	sign      int
	degree    float64 // position within destination sign, 0..30
	hasDegree bool    // false means caller should use the midpoint convention
}

// Project applies t's mapping to every position in c (and the ascendant),
// returning a new Chart whose longitudes are the projected values. D1 is
// the identity mapping and returns a value-equal copy of c.
func Project(ctx context.Context, c *chart.Chart, t Type) (*chart.Chart, error) {
	observer := observability.Observer()
	_, span := observer.CreateSpan(ctx, "divisional.Project")
	defer span.End()

	if t == D1 {
		return copyChart(c), nil
	}
	if _, ok := partsOf[t]; !ok && t != D249 {
		return nil, jyerr.Newf(jyerr.UnsupportedDivision, "divisional.Project", "unknown division %s", t)
	}

	out := copyChart(c)
	out.Ascendant = projectLongitude(t, c.Ascendant)
	ascSign := angles.Sign(out.Ascendant)
	for i := 0; i < 12; i++ {
		out.Cusps[i] = float64((ascSign+i)%12) * 30
	}

	positions := make(map[tables.Planet]chart.PlanetPosition, len(c.Positions))
	houses := make(map[int][]tables.Planet)
	for p, pp := range c.Positions {
		newLong := projectLongitude(t, pp.Longitude)
		sign := angles.Sign(newLong)
		projPP := pp
		projPP.Longitude = newLong
		projPP.Sign = sign
		projPP.PositionInSign = angles.PositionInSign(newLong)
		projPP.Nakshatra = angles.Nakshatra(newLong)
		projPP.Pada = angles.Pada(newLong)
		projPP.Dignity = tables.DignityOf(p, newLong)
		positions[p] = projPP

		h := angles.HouseFromAscendant(sign, ascSign)
		houses[h] = append(houses[h], p)
	}
	out.Positions = positions
	out.Houses = houses
	return out, nil
}

func copyChart(c *chart.Chart) *chart.Chart {
	cp := *c
	cp.Positions = make(map[tables.Planet]chart.PlanetPosition, len(c.Positions))
	for k, v := range c.Positions {
		cp.Positions[k] = v
	}
	cp.Houses = make(map[int][]tables.Planet, len(c.Houses))
	for k, v := range c.Houses {
		cp.Houses[k] = append([]tables.Planet{}, v...)
	}
	return &cp
}

// projectLongitude maps a single longitude through type t's division rule,
// returning destSign*30+15 unless the rule supplies an exact sub-degree
// (only D249 does).
func projectLongitude(t Type, longitude float64) float64 {
	sign := angles.Sign(longitude)
	posInSign := angles.PositionInSign(longitude)

	p := mapSign(t, sign, posInSign)
	if p.hasDegree {
		return float64(p.sign)*30 + p.degree
	}
	return float64(p.sign)*30 + 15
}

func mapSign(t Type, sign int, posInSign float64) projected {
	switch t {
	case D2:
		return mapD2(sign, posInSign)
	case D3:
		return projected{sign: (sign + [3]int{0, 4, 8}[bucket(posInSign, 3)]) % 12}
	case D4:
		return projected{sign: (sign + [4]int{0, 3, 6, 9}[bucket(posInSign, 4)]) % 12}
	case D5:
		return projected{sign: (sign + bucket(posInSign, 5)) % 12}
	case D6:
		return projected{sign: (sign + bucket(posInSign, 6)) % 12}
	case D7:
		return mapParityOffset(sign, posInSign, 7, 0, 6)
	case D8:
		return mapParityOffset(sign, posInSign, 8, 0, 8)
	case D9:
		return mapQualityRelative(sign, posInSign, 9)
	case D10:
		return mapParityOffset(sign, posInSign, 10, 0, 8)
	case D11:
		return projected{sign: (sign + bucket(posInSign, 11)) % 12}
	case D12:
		return projected{sign: (sign + bucket(posInSign, 12)) % 12}
	case D16:
		return mapQualityAbsolute(sign, posInSign, 16, 0, 4, 8)
	case D20:
		return mapQualityAbsolute(sign, posInSign, 20, 0, 8, 4)
	case D24:
		return mapParityAbsolute(sign, posInSign, 24, 4, 3)
	case D27:
		return mapQualityAbsolute(sign, posInSign, 27, 0, 8, 4)
	case D30:
		return mapD30(sign, posInSign)
	case D40:
		return mapParityAbsolute(sign, posInSign, 40, 0, 6)
	case D45:
		return mapQualityAbsolute(sign, posInSign, 45, 0, 4, 8)
	case D60:
		return mapD60(sign, posInSign)
	case D150:
		return projected{sign: (sign + bucket(posInSign, 150)%12) % 12}
	case D249:
		return mapD249(sign, posInSign)
	default:
		return projected{sign: sign}
	}
}

// bucket returns the 0..n-1 division index for a 0..30 position-in-sign.
func bucket(posInSign float64, n int) int {
	idx := int(math.Floor(posInSign / (30.0 / float64(n))))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// mapD2 implements the Hora division: odd signs map 0-15° to Leo,
// 15-30° to Cancer; even signs the reverse.
func mapD2(sign int, posInSign float64) projected {
	firstHalf := posInSign < 15
	if tables.IsOddSign(sign) {
		if firstHalf {
			return projected{sign: 4} // Leo
		}
		return projected{sign: 3} // Cancer
	}
	if firstHalf {
		return projected{sign: 3}
	}
	return projected{sign: 4}
}

// mapQualityRelative implements the D9-family rule: movable signs start
// counting from their own sign, fixed signs from the 9th, dual from the
// 5th, advancing one sign per bucket of n parts.
func mapQualityRelative(sign int, posInSign float64, n int) projected {
	var startOffset int
	switch tables.SignQualityOf(sign) {
	case tables.Movable:
		startOffset = 0
	case tables.Fixed:
		startOffset = 8
	case tables.Dual:
		startOffset = 4
	}
	idx := bucket(posInSign, n)
	return projected{sign: (sign + startOffset + idx) % 12}
}

// mapParityOffset implements the family where odd signs count forward
// from themselves and even signs count forward from a fixed relative
// offset (e.g. the 7th or 9th from the sign).
func mapParityOffset(sign int, posInSign float64, n int, oddOffset, evenOffset int) projected {
	idx := bucket(posInSign, n)
	if tables.IsOddSign(sign) {
		return projected{sign: (sign + oddOffset + idx) % 12}
	}
	return projected{sign: (sign + evenOffset + idx) % 12}
}

// mapQualityAbsolute implements the family keyed to an absolute starting
// sign by quality (movable/fixed/dual), independent of the planet's own
// sign, advancing one sign per bucket.
func mapQualityAbsolute(sign int, posInSign float64, n int, movableStart, fixedStart, dualStart int) projected {
	var start int
	switch tables.SignQualityOf(sign) {
	case tables.Movable:
		start = movableStart
	case tables.Fixed:
		start = fixedStart
	case tables.Dual:
		start = dualStart
	}
	idx := bucket(posInSign, n)
	return projected{sign: (start + idx) % 12}
}

// mapParityAbsolute implements the family keyed to an absolute starting
// sign by odd/even parity of the planet's own sign.
func mapParityAbsolute(sign int, posInSign float64, n int, oddStart int, evenStartOffsets ...int) projected {
	evenStart := oddStart
	if len(evenStartOffsets) > 0 {
		evenStart = evenStartOffsets[0]
	}
	idx := bucket(posInSign, n)
	if tables.IsOddSign(sign) {
		return projected{sign: (oddStart + idx) % 12}
	}
	return projected{sign: (evenStart + idx) % 12}
}

type trimsamsaBand struct {
	startDeg float64
	sign     int
}

var trimsamsaOdd = []trimsamsaBand{
	{0, 0}, {5, 10}, {10, 8}, {18, 2}, {25, 6},
}
var trimsamsaEven = []trimsamsaBand{
	{0, 1}, {5, 5}, {12, 11}, {20, 9}, {25, 7},
}

// mapD30 implements the classical unequal-degree Trimsamsa: five bands per
// parity, each ruled by one of Mars/Saturn/Jupiter/Mercury/Venus.
func mapD30(sign int, posInSign float64) projected {
	bands := trimsamsaEven
	if tables.IsOddSign(sign) {
		bands = trimsamsaOdd
	}
	dest := bands[len(bands)-1].sign
	for i, b := range bands {
		next := 30.0
		if i+1 < len(bands) {
			next = bands[i+1].startDeg
		}
		if posInSign >= b.startDeg && posInSign < next {
			dest = b.sign
			break
		}
	}
	return projected{sign: dest}
}

// mapD60 implements the Shashtiamsa: 60 parts of 0.5°, cycling forward one
// sign per bucket from the planet's own sign, with a deity name (carried
// by callers via tables.D60Deity, not stored on the projected chart).
func mapD60(sign int, posInSign float64) projected {
	n := bucket(posInSign, 60)
	return projected{sign: (sign + n) % 12}
}

// D60DeityFor returns the Shashtiamsa deity name for a source longitude,
// exposed separately since Chart carries no deity field.
func D60DeityFor(longitude float64) string {
	sign := angles.Sign(longitude)
	posInSign := angles.PositionInSign(longitude)
	n := bucket(posInSign, 60) + 1
	return tables.D60Deity(n, tables.IsOddSign(sign))
}

// mapD249 implements the ruler-proportional D249 division: the cycle of
// bucket widths follows the Vimshottari 9-lord years (summing to 120), not
// equal 1/249ths, repeating 27 full times plus a partial 28th cycle
// covering the 6-bucket remainder (27*9+6 = 249). Returns both destination
// sign and an exact sub-degree, per spec.md's explicit requirement that
// D249 supply a sub-position rather than the midpoint convention.
func mapD249(sign int, posInSign float64) projected {
	fraction := posInSign / 30.0
	// The 249 buckets (27 full 9-lord cycles plus the first 6 lords of a
	// 28th) together span totalWidth units; target is the position along it.
	totalWidth := 0.0
	for i := 0; i < 249; i++ {
		totalWidth += tables.VimshottariYears[tables.VimshottariOrder[i%9]] / 120.0 * 9.0
	}
	target := fraction * totalWidth

	// Walk buckets in Vimshottari order, each bucket's width proportional to
	// its ruler's years (summing to 120 per full 9-lord cycle), until the
	// cumulative width exceeds target; target is expressed in the same
	// units as the bucket widths.
	cumulative := 0.0
	bucketIndex := 0
	lordIdx := 0
	for cumulative < target && bucketIndex < 249 {
		lord := tables.VimshottariOrder[lordIdx%9]
		width := tables.VimshottariYears[lord] / 120.0 * 9.0 // width in same "bucket-year" units per lord within a 9-bucket cycle of total width 9
		if cumulative+width > target {
			break
		}
		cumulative += width
		bucketIndex++
		lordIdx++
	}

	destSign := (sign + bucketIndex) % 12
	// Sub-degree: how far into the current bucket's own span we are,
	// scaled back into a 0..30 degree position within destSign.
	remainder := target - cumulative
	lord := tables.VimshottariOrder[lordIdx%9]
	width := tables.VimshottariYears[lord] / 120.0 * 9.0
	within := 0.0
	if width > 0 {
		within = remainder / width
	}
	return projected{sign: destSign, degree: within * 30.0, hasDegree: true}
}
