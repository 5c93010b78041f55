package shadbala

import (
	"context"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/divisional"
	"github.com/parashari-jyotish/jyotish/tables"
)

// saptavargas are the seven divisional charts Saptavargaja Bala scores
// dignity across.
var saptavargas = []divisional.Type{
	divisional.D1, divisional.D2, divisional.D3, divisional.D7,
	divisional.D9, divisional.D12, divisional.D30,
}

// dignityTierScore maps a dignity tier to its Saptavargaja Bala virupas.
func dignityTierScore(d tables.Dignity) float64 {
	switch d {
	case tables.Exalted:
		return 45
	case tables.OwnSign:
		return 30
	case tables.FriendSign:
		return 22.5
	case tables.NeutralSign:
		return 15
	case tables.EnemySign:
		return 7.5
	default: // Debilitated
		return 0
	}
}

// saptavargajaBala sums dignity-tier scores across the seven divisional
// charts listed in saptavargas.
func saptavargajaBala(ctx context.Context, ch *chart.Chart, p tables.Planet) float64 {
	var total float64
	for _, t := range saptavargas {
		proj, err := divisional.Project(ctx, ch, t)
		if err != nil {
			continue
		}
		pp, ok := proj.Positions[p]
		if !ok {
			continue
		}
		total += dignityTierScore(pp.Dignity)
	}
	return total
}

// maleGraha, femaleGraha and neuterGraha classify planets for the
// ojayugma and drekkana rules.
var maleGraha = map[tables.Planet]bool{tables.Sun: true, tables.Mars: true, tables.Jupiter: true}
var femaleGraha = map[tables.Planet]bool{tables.Moon: true, tables.Venus: true}
var neuterGraha = map[tables.Planet]bool{tables.Mercury: true, tables.Saturn: true}

// ojayugmaBala scores sign and navamsa odd/even parity agreement with the
// planet's gender: male planets favor odd signs/navamsas, female favor
// even, neuter planets get half credit either way.
func ojayugmaBala(ch *chart.Chart, navamsaSign int, p tables.Planet) float64 {
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	var score float64
	signOdd := tables.IsOddSign(pp.Sign)
	navamsaOdd := tables.IsOddSign(navamsaSign)
	switch {
	case maleGraha[p]:
		if signOdd {
			score += 15
		}
		if navamsaOdd {
			score += 15
		}
	case femaleGraha[p]:
		if !signOdd {
			score += 15
		}
		if !navamsaOdd {
			score += 15
		}
	case neuterGraha[p]:
		score += 7.5
		score += 7.5
	}
	return score
}

// kendradiBala scores a planet's house from the ascendant: 60 for angular
// houses (1/4/7/10), 30 for succedent (2/5/8/11), 15 for cadent (3/6/9/12).
func kendradiBala(ch *chart.Chart, p tables.Planet) float64 {
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	house := ((pp.Sign-ch.AscendantSign())%12+12)%12 + 1
	switch house {
	case 1, 4, 7, 10:
		return 60
	case 2, 5, 8, 11:
		return 30
	default:
		return 15
	}
}

// drekkanaBala awards 15 virupas when a planet sits in the drekkana (10°
// third) matching its gender: 1st (0-10°) male, 2nd (10-20°) female, 3rd
// (20-30°) neuter.
func drekkanaBala(ch *chart.Chart, p tables.Planet) float64 {
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	third := int(pp.PositionInSign / 10)
	switch {
	case third == 0 && maleGraha[p]:
		return 15
	case third == 1 && femaleGraha[p]:
		return 15
	case third == 2 && neuterGraha[p]:
		return 15
	default:
		return 0
	}
}

// SthanaBala is the positional-strength component: uccha-bala +
// saptavargaja-bala + ojayugma-bala + kendradi-bala + drekkana-bala.
func SthanaBala(ctx context.Context, ch *chart.Chart, p tables.Planet) float64 {
	pp, ok := ch.Positions[p]
	if !ok {
		return 0
	}
	uccha := tables.UcchaBalaVirupas(p, pp.Longitude)
	sapta := saptavargajaBala(ctx, ch, p)

	navamsaSign := pp.Sign
	if proj, err := divisional.Project(ctx, ch, divisional.D9); err == nil {
		if navProj, ok := proj.Positions[p]; ok {
			navamsaSign = navProj.Sign
		}
	}
	ojayugma := ojayugmaBala(ch, navamsaSign, p)
	kendradi := kendradiBala(ch, p)
	drekkana := drekkanaBala(ch, p)

	return uccha + sapta + ojayugma + kendradi + drekkana
}
