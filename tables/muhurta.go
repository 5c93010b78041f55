package tables

// Weekday indexes 0..6 with Sunday=0, matching time.Weekday.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// VaraLord maps a weekday index to its ruling planet.
var VaraLord = [7]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// VaraName gives the classical Sanskrit name for a weekday index.
var VaraName = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara", "Guruvara", "Shukravara", "Shanivara",
}

// ChaldeanOrder is the fixed planetary-hour sequence Hora lords follow:
// Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon, wrapping.
var ChaldeanOrder = []Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// ChoghadiyaType classifies a Choghadiya period's auspiciousness.
type ChoghadiyaType int

const (
	Amrit ChoghadiyaType = iota
	Shubh
	Labh
	Char
	Udveg
	Kaal
	Rog
)

func (c ChoghadiyaType) String() string {
	switch c {
	case Amrit:
		return "Amrit"
	case Shubh:
		return "Shubh"
	case Labh:
		return "Labh"
	case Char:
		return "Char"
	case Udveg:
		return "Udveg"
	case Kaal:
		return "Kaal"
	case Rog:
		return "Rog"
	default:
		return "Unknown"
	}
}

// ChoghadiyaAuspicious reports whether the type is one of the four
// favorable Choghadiya types (Amrit, Shubh, Labh, and the neutral-favorable
// Char); Udveg, Kaal, Rog are inauspicious.
func ChoghadiyaAuspicious(c ChoghadiyaType) bool {
	switch c {
	case Amrit, Shubh, Labh, Char:
		return true
	default:
		return false
	}
}

// ChoghadiyaDaySequence gives the 8 daytime Choghadiya types in order,
// keyed by weekday index, starting from the first period after sunrise.
var ChoghadiyaDaySequence = [7][8]ChoghadiyaType{
	{Udveg, Char, Labh, Amrit, Kaal, Shubh, Rog, Udveg},    // Sunday
	{Amrit, Kaal, Shubh, Rog, Udveg, Char, Labh, Amrit},    // Monday
	{Rog, Udveg, Char, Labh, Amrit, Kaal, Shubh, Rog},      // Tuesday
	{Labh, Amrit, Kaal, Shubh, Rog, Udveg, Char, Labh},     // Wednesday
	{Shubh, Rog, Udveg, Char, Labh, Amrit, Kaal, Shubh},    // Thursday
	{Char, Labh, Amrit, Kaal, Shubh, Rog, Udveg, Char},     // Friday
	{Kaal, Shubh, Rog, Udveg, Char, Labh, Amrit, Kaal},     // Saturday
}

// ChoghadiyaNightSequence gives the 8 nighttime Choghadiya types in order,
// keyed by weekday index, starting from the first period after sunset.
var ChoghadiyaNightSequence = [7][8]ChoghadiyaType{
	{Shubh, Amrit, Char, Rog, Kaal, Labh, Udveg, Shubh},    // Sunday
	{Char, Rog, Kaal, Labh, Udveg, Shubh, Amrit, Char},     // Monday
	{Kaal, Labh, Udveg, Shubh, Amrit, Char, Rog, Kaal},     // Tuesday
	{Udveg, Shubh, Amrit, Char, Rog, Kaal, Labh, Udveg},    // Wednesday
	{Amrit, Char, Rog, Kaal, Labh, Udveg, Shubh, Amrit},    // Thursday
	{Rog, Kaal, Labh, Udveg, Shubh, Amrit, Char, Rog},      // Friday
	{Labh, Udveg, Shubh, Amrit, Char, Rog, Kaal, Labh},     // Saturday
}

// RahukalamEighth gives, per weekday, the 1-indexed eighth of daytime
// Rahukalam occupies.
var RahukalamEighth = [7]int{8, 2, 7, 5, 6, 4, 3}

// GulikalamEighth gives, per weekday, the 1-indexed eighth of daytime
// Gulikalam occupies.
var GulikalamEighth = [7]int{7, 6, 5, 4, 3, 2, 1}

// YamagandamEighth gives, per weekday, the 1-indexed eighth of daytime
// Yamagandam occupies.
var YamagandamEighth = [7]int{5, 4, 3, 2, 1, 7, 6}

// AbhijitMuhurtaIndex is the 1-indexed muhurta (of 15 equal daytime
// muhurtas) Abhijit occupies, spanning 1/15th of daylight around local noon.
const AbhijitMuhurtaIndex = 8

// BrahmaMuhurtaIndex is the 1-indexed muhurta (of 15 equal nighttime
// muhurtas counted from sunset) Brahma Muhurta occupies, just before sunrise.
const BrahmaMuhurtaIndex = 14

// MuhurtasPerHalfDay is the classical division of both day and night into
// 15 equal muhurtas.
const MuhurtasPerHalfDay = 15

// SamvatsaraNames is the 60-year Jovian-cycle (Brihaspati) Samvatsara name
// sequence, indexed 0..59.
var SamvatsaraNames = [60]string{
	"Prabhava", "Vibhava", "Shukla", "Pramoda", "Prajapati", "Angirasa",
	"Shrimukha", "Bhava", "Yuva", "Dhatu", "Ishvara", "Bahudhanya",
	"Pramathi", "Vikrama", "Vrisha", "Chitrabhanu", "Svabhanu", "Tarana",
	"Parthiva", "Vyaya", "Sarvajit", "Sarvadhari", "Virodhi", "Vikriti",
	"Khara", "Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukhi",
	"Hemalambi", "Vilambi", "Vikari", "Sharvari", "Plava", "Shubhakrit",
	"Shobhakrit", "Krodhi", "Vishvavasu", "Parabhava", "Plavanga", "Kilaka",
	"Saumya", "Sadharana", "Virodhikrita", "Paridhavi", "Pramadicha", "Ananda",
	"Rakshasa", "Nala", "Pingala", "Kalayukta", "Siddharthi", "Raudra",
	"Durmati", "Dundubhi", "Rudhirodgari", "Raktakshi", "Krodhana", "Akshaya",
}

// GowriPeriodSequence names each of the 8 equal daytime/nighttime Gowri
// (a simplified 8-period auspiciousness cycle, distinct from Choghadiya's
// weekday-varying sequence) panchanga periods.
var GowriPeriodSequence = [8]string{
	"Udyoga", "Amrit", "Rog", "Labh", "Dhana", "Sudhi", "Shubh", "Kantaka",
}
