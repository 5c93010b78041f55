package tables

// AshtakavargaContributor enumerates the eight bindu sources: the seven
// traditional planets plus the ascendant (Lagna). Lagna is never itself a
// subject of a contributor lookup elsewhere in the module, only a source
// here and a subject of its own Bhinnashtakavarga.
type AshtakavargaContributor int

const (
	ContribSun AshtakavargaContributor = iota
	ContribMoon
	ContribMars
	ContribMercury
	ContribJupiter
	ContribVenus
	ContribSaturn
	ContribLagna
)

// AshtakavargaContributors lists the eight contributor identities in a
// fixed order, matching the column order of AshtakavargaMatrix rows.
var AshtakavargaContributors = []AshtakavargaContributor{
	ContribSun, ContribMoon, ContribMars, ContribMercury,
	ContribJupiter, ContribVenus, ContribSaturn, ContribLagna,
}

// AshtakavargaSubjects lists the seven planets whose Bhinnashtakavarga
// feeds the Sarvashtakavarga sum. Lagna also gets its own
// Bhinnashtakavarga (AshtakavargaMatrix[LagnaSubject]) but it is excluded
// from the Sarvashtakavarga total, matching classical practice.
var AshtakavargaSubjects = SevenPlanets

// LagnaSubject is the pseudo-subject key for Lagna's own Bhinnashtakavarga.
const LagnaSubject Planet = -1

// bhouses turns a list of 1..12 house numbers (counted from the subject)
// into a [12]bool bit row, index 0 = house 1.
func bhouses(hs ...int) [12]bool {
	var row [12]bool
	for _, h := range hs {
		row[h-1] = true
	}
	return row
}

// AshtakavargaMatrix holds, for each subject (the seven planets and
// Lagna), eight 12-element bit rows — one per contributor in
// AshtakavargaContributors order — where row[h-1] set means that
// contributor awards a bindu in house h counted from the subject.
// Transcribed from the classical Parashari tables; each planet's total
// bindu count matches its well-known classical total (Sun 48, Moon 49,
// Mars 39, Mercury 54, Jupiter 56, Venus 52, Saturn 39 — summing to the
// canonical 337 Sarvashtakavarga total; see DESIGN.md).
var AshtakavargaMatrix = map[Planet][8][12]bool{
	Sun: {
		bhouses(1, 2, 4, 7, 8, 9, 10, 11),  // from Sun
		bhouses(3, 6, 10, 11),              // from Moon
		bhouses(1, 2, 4, 7, 8, 9, 10, 11),  // from Mars
		bhouses(3, 5, 6, 9, 10, 11, 12),    // from Mercury
		bhouses(5, 6, 9, 11),               // from Jupiter
		bhouses(6, 7, 12),                  // from Venus
		bhouses(1, 2, 4, 7, 8, 9, 10, 11),  // from Saturn
		bhouses(3, 4, 6, 10, 11, 12),       // from Lagna
	},
	Moon: {
		bhouses(3, 6, 7, 8, 10, 11),
		bhouses(1, 3, 6, 7, 9, 10, 11),
		bhouses(2, 3, 5, 6, 9, 10, 11),
		bhouses(1, 3, 4, 5, 7, 8, 10),
		bhouses(1, 4, 7, 8, 10, 11, 12),
		bhouses(3, 4, 5, 7, 9, 10, 11),
		bhouses(3, 5, 6, 11),
		bhouses(3, 6, 10, 11),
	},
	Mars: {
		bhouses(3, 5, 6, 10, 11),
		bhouses(3, 6, 11),
		bhouses(1, 2, 4, 7, 8, 10, 11),
		bhouses(3, 5, 6, 11),
		bhouses(6, 10, 11, 12),
		bhouses(6, 8, 11, 12),
		bhouses(1, 4, 7, 8, 9, 10, 11),
		bhouses(1, 3, 6, 10, 11),
	},
	Mercury: {
		bhouses(5, 6, 9, 11, 12),
		bhouses(2, 4, 6, 8, 10, 11),
		bhouses(1, 2, 4, 7, 8, 9, 10, 11),
		bhouses(1, 3, 5, 6, 9, 10, 11, 12),
		bhouses(6, 8, 11, 12),
		bhouses(1, 2, 3, 4, 5, 8, 9, 11),
		bhouses(1, 2, 4, 7, 8, 9, 10, 11),
		bhouses(1, 2, 4, 6, 8, 10, 11),
	},
	Jupiter: {
		bhouses(1, 2, 3, 4, 7, 8, 9, 10, 11),
		bhouses(2, 5, 7, 9, 11),
		bhouses(1, 2, 4, 7, 8, 10, 11),
		bhouses(1, 2, 4, 5, 6, 9, 10, 11),
		bhouses(1, 2, 3, 4, 7, 8, 10, 11),
		bhouses(2, 5, 6, 9, 10, 11),
		bhouses(3, 5, 6, 12),
		bhouses(1, 2, 4, 5, 6, 7, 9, 10, 11),
	},
	Venus: {
		bhouses(8, 11, 12),
		bhouses(1, 2, 3, 4, 5, 8, 9, 11, 12),
		bhouses(3, 5, 6, 9, 11, 12),
		bhouses(3, 5, 6, 9, 11),
		bhouses(5, 8, 9, 10, 11),
		bhouses(1, 2, 3, 4, 5, 8, 9, 10, 11),
		bhouses(3, 4, 5, 8, 9, 10, 11),
		bhouses(1, 2, 3, 4, 5, 8, 9, 11),
	},
	Saturn: {
		bhouses(1, 2, 4, 7, 8, 10, 11),
		bhouses(3, 6, 11),
		bhouses(3, 5, 6, 10, 11, 12),
		bhouses(6, 8, 9, 10, 11, 12),
		bhouses(5, 6, 11, 12),
		bhouses(6, 11, 12),
		bhouses(3, 5, 6, 11),
		bhouses(1, 3, 4, 6, 9, 11),
	},
	LagnaSubject: {
		bhouses(3, 4, 6, 10, 11, 12),
		bhouses(3, 6, 10, 11),
		bhouses(1, 3, 6, 10, 11),
		bhouses(1, 2, 4, 6, 8, 10, 11),
		bhouses(1, 2, 4, 5, 6, 7, 9, 10, 11),
		bhouses(1, 2, 3, 4, 5, 8, 9, 11),
		bhouses(1, 3, 4, 6, 9, 11),
		bhouses(3, 6, 10, 11),
	},
}

// TrikonaGroups are the four trine groups (1-5-9, 2-6-10, 3-7-11, 4-8-12,
// 0-indexed) Trikona Shodhana equalizes.
var TrikonaGroups = [4][3]int{
	{0, 4, 8},
	{1, 5, 9},
	{2, 6, 10},
	{3, 7, 11},
}

// PindaSignWeight is the classical per-sign multiplier (Rasi Pinda) used
// by the Pinda reduction, indexed 0..11 (Aries..Pisces).
var PindaSignWeight = [12]int{
	7, 10, 8, 4, 10, 6, 7, 8, 9, 5, 11, 12,
}

// PindaPlanetWeight is the classical per-planet multiplier (Graha Pinda)
// used by the Pinda reduction.
var PindaPlanetWeight = map[Planet]int{
	Sun: 5, Moon: 6, Mars: 8, Mercury: 5, Jupiter: 10, Venus: 7, Saturn: 9,
}
