// Package dasha implements the Vimshottari, Yogini, and Chara dasha
// (planetary period) systems, per spec.md §4.8, each producing a
// recursively nested Period tree queryable by date.
package dasha

import (
	"time"

	"github.com/parashari-jyotish/jyotish/tables"
)

// Period is one node of a dasha tree: a lord ruling [Start, End), nested up
// to five levels (mahadasha..level 4) via SubPeriods, each sub-period
// proportionally sized within its parent and ordered starting at the
// parent's own lord.
type Period struct {
	Lord        tables.Planet
	Label       string
	Start       time.Time
	End         time.Time
	Level       int
	SubPeriods  []Period
}

// maxLevel caps nesting at five levels: mahadasha (0) through
// pratyantardasha and its own two further subdivisions (4), per spec.md
// §4.8's explicit "up to five levels".
const maxLevel = 4

// At returns the chain of active periods at t, one per level from the
// mahadasha down to the deepest level containing t, or nil if t falls
// outside root's span.
func At(root []Period, t time.Time) []Period {
	var chain []Period
	periods := root
	for {
		found := false
		for _, p := range periods {
			if !t.Before(p.Start) && t.Before(p.End) {
				chain = append(chain, p)
				periods = p.SubPeriods
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}

// subdivide lays out order's lords (nine for Vimshottari) starting at
// startIdx, each occupying a share of [start, end) proportional to its own
// full-cycle weight in weights (keyed by the same lord), and recurses to
// depth maxLevel.
func subdivide(order []tables.Planet, weights map[tables.Planet]float64, totalYears float64, startIdx int, start, end time.Time, level int) []Period {
	if level > maxLevel {
		return nil
	}
	n := len(order)
	span := end.Sub(start)
	var periods []Period
	cursor := start
	for i := 0; i < n; i++ {
		lord := order[(startIdx+i)%n]
		fraction := weights[lord] / totalYears
		length := time.Duration(float64(span) * fraction)
		periodEnd := cursor.Add(length)
		if i == n-1 {
			periodEnd = end
		}
		p := Period{
			Lord:  lord,
			Label: lord.String(),
			Start: cursor,
			End:   periodEnd,
			Level: level,
		}
		if level < maxLevel {
			lordIdx := indexOf(order, lord)
			p.SubPeriods = subdivide(order, weights, totalYears, lordIdx, cursor, periodEnd, level+1)
		}
		periods = append(periods, p)
		cursor = periodEnd
	}
	return periods
}

func indexOf(order []tables.Planet, p tables.Planet) int {
	for i, l := range order {
		if l == p {
			return i
		}
	}
	return 0
}
