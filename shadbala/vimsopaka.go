package shadbala

import (
	"context"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/divisional"
	"github.com/parashari-jyotish/jyotish/tables"
)

// shadvargaWeight gives the classical Shadvarga weighting scheme's six
// divisional charts, weights summing to the full 20-point Vimsopaka scale.
var shadvargaWeight = []struct {
	division divisional.Type
	weight   float64
}{
	{divisional.D1, 6},
	{divisional.D2, 2},
	{divisional.D3, 4},
	{divisional.D9, 5},
	{divisional.D12, 2},
	{divisional.D30, 1},
}

// dignityFraction converts a dignity tier into the fraction of a
// division's weight it earns for Vimsopaka Bala.
func dignityFraction(d tables.Dignity) float64 {
	switch d {
	case tables.Exalted, tables.OwnSign:
		return 1.0
	case tables.FriendSign:
		return 0.75
	case tables.NeutralSign:
		return 0.5
	case tables.EnemySign:
		return 0.25
	default:
		return 0
	}
}

// VimsopakaBala scores a planet's dignity-weighted strength across the
// classical Shadvarga (six divisional charts), scaled to a 20-point
// total — a supplementary strength measure alongside the six-fold
// Shadbala, commonly used to compare planets' overall varga strength.
func VimsopakaBala(ctx context.Context, ch *chart.Chart, p tables.Planet) float64 {
	var total float64
	for _, sv := range shadvargaWeight {
		proj, err := divisional.Project(ctx, ch, sv.division)
		if err != nil {
			continue
		}
		pp, ok := proj.Positions[p]
		if !ok {
			continue
		}
		total += sv.weight * dignityFraction(pp.Dignity)
	}
	return total
}
