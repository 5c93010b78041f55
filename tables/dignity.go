package tables

import "math"

// OwnSigns maps each of the seven traditional planets to the signs it
// rules (two for all but the luminaries, which rule one each).
var OwnSigns = map[Planet][]int{
	Sun:     {4},     // Leo
	Moon:    {3},      // Cancer
	Mars:    {0, 7},   // Aries, Scorpio
	Mercury: {2, 5},   // Gemini, Virgo
	Jupiter: {8, 11},  // Sagittarius, Pisces
	Venus:   {1, 6},   // Taurus, Libra
	Saturn:  {9, 10},  // Capricorn, Aquarius
}

// DignityOf classifies planet p's dignity at longitude deg (0..360), by
// exaltation proximity, own sign, and natural friendship with the sign
// lord. The distance-to-exaltation scoring used for Sthana Bala's
// uccha-bala is computed separately in package shadbala; this function
// returns only the discrete dignity tier used by divisional-chart dignity
// lookups.
func DignityOf(p Planet, deg float64) Dignity {
	sign := int(math.Floor(math.Mod(deg, 360) / 30))
	if sign < 0 {
		sign += 12
	}

	exalt, hasExalt := ExaltationDegree[p]
	if hasExalt {
		exaltSign := int(math.Floor(exalt / 30))
		debilSign := (exaltSign + 6) % 12
		if sign == exaltSign {
			return Exalted
		}
		if sign == debilSign {
			return Debilitated
		}
	}

	for _, s := range OwnSigns[p] {
		if s == sign {
			return OwnSign
		}
	}

	lord := SignLord[sign]
	if lord == p {
		return OwnSign
	}

	rel, ok := NaturalRelation[p][lord]
	if !ok {
		return NeutralSign
	}
	switch rel {
	case Friend:
		return FriendSign
	case Enemy:
		return EnemySign
	default:
		return NeutralSign
	}
}

// UcchaBalaVirupas scores the Sthana Bala uccha-bala component: 60 virupas
// at exact exaltation, 0 at exact debilitation, linear in the shorter arc
// between the two.
func UcchaBalaVirupas(p Planet, deg float64) float64 {
	exalt, ok := ExaltationDegree[p]
	if !ok {
		return 30 // nodes score a fixed midpoint; no exaltation point defined
	}
	debil := math.Mod(exalt+180, 360)

	d := math.Mod(deg-debil, 360)
	if d < 0 {
		d += 360
	}
	// d is the angular distance travelled from the debilitation point
	// towards the exaltation point, 0..360; the shorter arc caps at 180.
	if d > 180 {
		d = 360 - d
	}
	return d / 180 * 60
}
