// Package tables holds the static rule data every derivation service reads:
// sign lords, exaltation degrees, natural friendships, the eight
// Ashtakavarga contribution matrices, the nakshatra-lord cycle, Vimshottari
// and Yogini dasha durations, Choghadiya/Hora sequences, Rahukalam slot
// maps, Samvatsara names, Nadi buckets, and Gowri periods.
package tables

// Planet is the tagged variant over every body the core reasons about.
// Rahu and Ketu are always exactly 180° apart; Ketu is derived, never
// queried from the ephemeris directly.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu // lunar node as returned by the Provider; config.NodeType is not read
	Ketu // derived: Rahu + 180
	Uranus
	Neptune
	Pluto
	Chiron
	Ceres
	Pallas
	Juno
	Vesta
)

func (p Planet) String() string {
	switch p {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mars:
		return "Mars"
	case Mercury:
		return "Mercury"
	case Jupiter:
		return "Jupiter"
	case Venus:
		return "Venus"
	case Saturn:
		return "Saturn"
	case Rahu:
		return "Rahu"
	case Ketu:
		return "Ketu"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case Chiron:
		return "Chiron"
	case Ceres:
		return "Ceres"
	case Pallas:
		return "Pallas"
	case Juno:
		return "Juno"
	case Vesta:
		return "Vesta"
	default:
		return "Unknown"
	}
}

// SevenPlanets are the traditional Parashari strength-planets: the two
// luminaries and the five classical grahas, excluding the nodes.
var SevenPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// NinePlanets adds Rahu and Ketu to SevenPlanets, the cycle Vimshottari and
// the sub-lord engines traverse.
var NinePlanets = []Planet{Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury, Ketu, Venus}

// OuterPlanets are the modern, non-classical bodies an implementer may
// optionally include in a chart (config.IncludeOuterPlanets).
var OuterPlanets = []Planet{Uranus, Neptune, Pluto, Chiron, Ceres, Pallas, Juno, Vesta}

// SignQuality classifies a sign's movable/fixed/dual character.
type SignQuality int

const (
	Movable SignQuality = iota
	Fixed
	Dual
)

// SignName returns the classical name for a 0..11 sign index.
var SignName = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignLord maps a 0..11 sign index to its ruling planet.
var SignLord = [12]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// SignQualityOf returns the quality of a 0..11 sign index: Aries/Cancer/
// Libra/Capricorn are movable, Taurus/Leo/Scorpio/Aquarius fixed, the
// remaining four dual.
func SignQualityOf(sign int) SignQuality {
	switch sign % 3 {
	case 0:
		return Movable
	case 1:
		return Fixed
	default:
		return Dual
	}
}

// IsOddSign reports whether a 0..11 sign index is odd-numbered (Aries = 0
// counts as odd in the classical convention, i.e. sign index is even).
func IsOddSign(sign int) bool {
	return sign%2 == 0
}

// NaturalBenefic classifies the seven traditional planets' fixed natural
// disposition, excluding Moon (whose benefic/malefic status swings with
// paksha — use IsMoonBenefic) and the nodes (always malefic).
var NaturalBenefic = map[Planet]bool{
	Sun: false, Mars: false, Saturn: false, Rahu: false, Ketu: false,
	Mercury: true, Jupiter: true, Venus: true,
}

// IsMoonBenefic reports Moon's paksha-dependent disposition: benefic when
// waxing (shukla paksha), malefic when waning.
func IsMoonBenefic(waxing bool) bool {
	return waxing
}

// ExaltationDegree gives the exact exaltation longitude (sign*30+degree)
// for each of the seven traditional planets, and debilitation is always
// exactly 180° opposite.
var ExaltationDegree = map[Planet]float64{
	Sun:     10.0,       // Aries 10°
	Moon:    33.0,       // Taurus 3°
	Mars:    298.0,      // Capricorn 28°
	Mercury: 165.0,      // Virgo 15°
	Jupiter: 95.0,       // Cancer 5°
	Venus:   357.0,      // Pisces 27°
	Saturn:  200.0,      // Libra 20°
}

// NaturalFriendship classifies the natural relationship between two
// planets: friend, neutral, or enemy, used by dignity lookups.
type NaturalFriendship int

const (
	Friend NaturalFriendship = iota
	Neutral
	Enemy
)

// NaturalRelation is the fixed natural-friendship table among the seven
// traditional planets (Parashari Naisargika Maitri).
var NaturalRelation = map[Planet]map[Planet]NaturalFriendship{
	Sun: {
		Moon: Friend, Mars: Friend, Jupiter: Friend, Mercury: Neutral,
		Venus: Enemy, Saturn: Enemy,
	},
	Moon: {
		Sun: Friend, Mercury: Friend, Mars: Neutral, Jupiter: Neutral,
		Venus: Neutral, Saturn: Neutral,
	},
	Mars: {
		Sun: Friend, Moon: Friend, Jupiter: Friend, Venus: Neutral,
		Saturn: Neutral, Mercury: Enemy,
	},
	Mercury: {
		Sun: Friend, Venus: Friend, Mars: Neutral, Jupiter: Neutral,
		Saturn: Neutral, Moon: Enemy,
	},
	Jupiter: {
		Sun: Friend, Moon: Friend, Mars: Friend, Saturn: Neutral,
		Mercury: Enemy, Venus: Enemy,
	},
	Venus: {
		Mercury: Friend, Saturn: Friend, Mars: Neutral, Jupiter: Neutral,
		Sun: Enemy, Moon: Enemy,
	},
	Saturn: {
		Mercury: Friend, Venus: Friend, Jupiter: Neutral, Sun: Enemy,
		Moon: Enemy, Mars: Enemy,
	},
}

// Dignity classifies a planet's placement-derived strength tier.
type Dignity int

const (
	Debilitated Dignity = iota
	GreatEnemy
	EnemySign
	NeutralSign
	FriendSign
	GreatFriend
	OwnSign
	Exalted
)
