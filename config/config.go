// Package config holds the calculation flags that pass through every public
// facade operation: sidereal mode, node type, topocentric positions, house
// system, and the few other knobs spec.md leaves caller-selectable.
package config

// SiderealMode selects which ayanamsa the ephemeris provider applies.
type SiderealMode int

const (
	// Lahiri is the default ayanamsa used throughout the core.
	Lahiri SiderealMode = iota
	// KPNewAyanamsa is the Krishnamurti VP291 ayanamsa used by the KP engine.
	KPNewAyanamsa
	// KPOldAyanamsa is the legacy KP offset, selectable for compatibility.
	KPOldAyanamsa
)

// NodeType names a lunar-node definition for Rahu/Ketu. It is carried on
// CalculationFlags, but chart.Build does not read it: Rahu is whatever node
// the Provider's Position returns, and Provider takes no node parameter.
type NodeType int

const (
	MeanNode NodeType = iota
	TrueNode
)

// HouseSystem selects the house-cusp convention the ephemeris provider uses.
type HouseSystem int

const (
	WholeSign HouseSystem = iota
	Placidus
	KochHouse
	Equal
)

// AtmakarakaKarakaCount selects whether the Jaimini karaka scheme considers
// the traditional seven planets or includes Rahu as an eighth.
type AtmakarakaKarakaCount int

const (
	SevenKarakas AtmakarakaKarakaCount = 7
	EightKarakas AtmakarakaKarakaCount = 8
)

// CalculationFlags carries every caller-selectable option through chart
// construction and every derivation service that reads from it.
type CalculationFlags struct {
	SiderealMode      SiderealMode
	NodeType          NodeType
	Topocentric       bool
	IncludeOuterPlanets bool
	HouseSystem       HouseSystem
	AtmakarakaKarakas AtmakarakaKarakaCount
	VimshottariYearLength float64 // days per Vimshottari year; 365.25 default, 360 for Savana
}

// DefaultFlags mirrors the classical Parashari default: Lahiri ayanamsa,
// mean node, geocentric positions, Whole Sign houses, seven-karaka
// Atmakaraka, and the solar (365.25-day) Vimshottari year.
func DefaultFlags() CalculationFlags {
	return CalculationFlags{
		SiderealMode:          Lahiri,
		NodeType:              MeanNode,
		Topocentric:           false,
		IncludeOuterPlanets:   true,
		HouseSystem:           WholeSign,
		AtmakarakaKarakas:     SevenKarakas,
		VimshottariYearLength: 365.25,
	}
}

// SavanaVimshottariYearLength is the alternate 360-day year some traditions
// use for Vimshottari sub-period lengths.
const SavanaVimshottariYearLength = 360.0

// CharaDashaDirection names the forward/backward traversal rule for Chara
// Dasha.
type CharaDashaDirection int

const (
	Forward CharaDashaDirection = iota
	Backward
)

// SignQualityDirection maps sign parity (true = odd) to the Chara Dasha
// traversal direction from Lagna. The dasha package applies the same rule
// through tables.IsOddSign and does not read this map.
var SignQualityDirection = map[bool]CharaDashaDirection{
	true:  Forward,  // odd sign counts forward
	false: Backward, // even sign counts backward
}
