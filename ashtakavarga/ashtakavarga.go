// Package ashtakavarga computes Bhinnashtakavarga and Sarvashtakavarga
// bindu counts, their Trikona/Ekadhipati reductions, Pinda, and transit
// favorability, per spec.md §4.4.
package ashtakavarga

import (
	"context"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
)

// contributorSign resolves an AshtakavargaContributor to its occupied
// sign (0..11) in the given chart; Lagna resolves to the ascendant sign.
func contributorSign(c tables.AshtakavargaContributor, ch *chart.Chart) int {
	switch c {
	case tables.ContribSun:
		return ch.Positions[tables.Sun].Sign
	case tables.ContribMoon:
		return ch.Positions[tables.Moon].Sign
	case tables.ContribMars:
		return ch.Positions[tables.Mars].Sign
	case tables.ContribMercury:
		return ch.Positions[tables.Mercury].Sign
	case tables.ContribJupiter:
		return ch.Positions[tables.Jupiter].Sign
	case tables.ContribVenus:
		return ch.Positions[tables.Venus].Sign
	case tables.ContribSaturn:
		return ch.Positions[tables.Saturn].Sign
	case tables.ContribLagna:
		return ch.AscendantSign()
	default:
		return 0
	}
}

// Bhinnashtakavarga computes subject's 12-sign bindu row: for each sign
// s, the number of contributors whose fixed bindu pattern awards a bindu
// at the house counted from that contributor's own occupied sign to s.
func Bhinnashtakavarga(ctx context.Context, ch *chart.Chart, subject tables.Planet) [12]int {
	observer := observability.Observer()
	_, span := observer.CreateSpan(ctx, "ashtakavarga.Bhinnashtakavarga")
	defer span.End()

	matrix := tables.AshtakavargaMatrix[subject]
	var row [12]int
	for s := 0; s < 12; s++ {
		for idx, contributor := range tables.AshtakavargaContributors {
			cSign := contributorSign(contributor, ch)
			house := ((s-cSign)%12 + 12) % 12
			if matrix[idx][house] {
				row[s]++
			}
		}
	}
	return row
}

// Sarvashtakavarga sums Bhinnashtakavarga across the seven planetary
// subjects (Lagna's own row is excluded from the total, per classical
// practice and this module's Open Question resolution).
func Sarvashtakavarga(ctx context.Context, ch *chart.Chart) [12]int {
	observer := observability.Observer()
	_, span := observer.CreateSpan(ctx, "ashtakavarga.Sarvashtakavarga")
	defer span.End()

	var sav [12]int
	for _, p := range tables.AshtakavargaSubjects {
		bav := Bhinnashtakavarga(ctx, ch, p)
		for s := 0; s < 12; s++ {
			sav[s] += bav[s]
		}
	}
	return sav
}

// TrikonaShodhana subtracts, within each of the four trine groups
// (1-5-9, 2-6-10, 3-7-11, 4-8-12), the group's minimum from all three.
func TrikonaShodhana(bav [12]int) [12]int {
	out := bav
	for _, group := range tables.TrikonaGroups {
		min := out[group[0]]
		for _, idx := range group[1:] {
			if out[idx] < min {
				min = out[idx]
			}
		}
		for _, idx := range group {
			out[idx] -= min
		}
	}
	return out
}

// EkadhipatiShodhana subtracts, for each pair of signs sharing a lord,
// the lesser value from the greater (the greater is reduced, the lesser
// is unchanged). Sun and Moon each own a single sign, so they never form
// a pair and are naturally exempt.
func EkadhipatiShodhana(bav [12]int) [12]int {
	out := bav
	signsByLord := make(map[tables.Planet][]int)
	for s := 0; s < 12; s++ {
		lord := tables.SignLord[s]
		signsByLord[lord] = append(signsByLord[lord], s)
	}
	for _, signs := range signsByLord {
		if len(signs) != 2 {
			continue
		}
		a, b := signs[0], signs[1]
		if out[a] > out[b] {
			out[a] -= out[b]
		} else {
			out[b] -= out[a]
		}
	}
	return out
}

// Reduce applies Trikona Shodhana followed by Ekadhipati Shodhana, the
// standard reduction order.
func Reduce(bav [12]int) [12]int {
	return EkadhipatiShodhana(TrikonaShodhana(bav))
}

// Pinda computes the classical weighted bindu total: each sign's reduced
// bindu count times its Rasi Pinda (sign weight), summed and scaled by
// the subject's Graha Pinda (planet weight) divided by 8.
func Pinda(reduced [12]int, subject tables.Planet) float64 {
	var sum float64
	for s := 0; s < 12; s++ {
		sum += float64(reduced[s]) * float64(tables.PindaSignWeight[s])
	}
	return sum * float64(tables.PindaPlanetWeight[subject]) / 8.0
}

// bavFavorableThreshold and savFavorableThreshold resolve spec.md §4.4's
// literal ">28 and >28" transit-favorability rule: SAV legitimately
// ranges 0..56 per sign (mean ~28, matching spec's threshold exactly),
// but BAV only ranges 0..8 per sign under the eight-contributor model, so
// a literal ">28" can never be satisfied. Read proportionally instead:
// BAV favorable above half its own range (>4 of 8), mirroring SAV's
// above-half-of-56(~28) rule.
const (
	bavFavorableThreshold = 4
	savFavorableThreshold = 28
)

// TransitAnalysis is the transit-favorability verdict for one planet
// transiting one sign.
type TransitAnalysis struct {
	Planet     tables.Planet
	Sign       int
	BAV        int
	SAV        int
	Favorable  bool
	Score      float64 // normalized 0-100
}

// AnalyzeTransit reports whether sign s is favorable for planet p's
// transit (BAV>4-of-8 and SAV>28-of-56 simultaneously) and a normalized
// 0-100 score, upweighted slightly for Saturn and Jupiter since their
// slow transits make a favorable placement matter longer.
func AnalyzeTransit(ctx context.Context, ch *chart.Chart, p tables.Planet, s int) TransitAnalysis {
	bav := Bhinnashtakavarga(ctx, ch, p)
	sav := Sarvashtakavarga(ctx, ch)

	score := (float64(bav[s])/8.0)*50 + (float64(sav[s])/56.0)*50
	if p == tables.Saturn || p == tables.Jupiter {
		score *= 1.1
	}
	if score > 100 {
		score = 100
	}

	return TransitAnalysis{
		Planet:    p,
		Sign:      s,
		BAV:       bav[s],
		SAV:       sav[s],
		Favorable: bav[s] > bavFavorableThreshold && sav[s] > savFavorableThreshold,
		Score:     score,
	}
}
