package tables

// TithiName gives the 1..15 paksha-relative tithi name, shared by both
// Shukla and Krishna paksha (the 15th differs: Purnima vs Amavasya).
var TithiName = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima/Amavasya",
}

// TithiType classifies a tithi (1..30) into its Nanda/Bhadra/Jaya/Rikta/
// Purna quintet, cycling every five tithis within each paksha.
type TithiType int

const (
	Nanda TithiType = iota
	Bhadra
	Jaya
	Rikta
	Purna
)

func (t TithiType) String() string {
	switch t {
	case Nanda:
		return "Nanda"
	case Bhadra:
		return "Bhadra"
	case Jaya:
		return "Jaya"
	case Rikta:
		return "Rikta"
	case Purna:
		return "Purna"
	default:
		return "Unknown"
	}
}

// TithiTypeOf classifies a 1..30 tithi number by its position mod 5 within
// the paksha (1..15 numbering).
func TithiTypeOf(tithiInPaksha int) TithiType {
	return TithiType((tithiInPaksha - 1) % 5)
}

// KaranaName gives the name for each of the 11 named karanas: the 7
// repeating (movable) karanas followed by the 4 fixed karanas anchored at
// the Purnima/Amavasya transitions.
var KaranaName = [11]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
	"Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

// YogaName gives the 27 Nitya Yoga names, indexed 0..26.
var YogaName = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva",
	"Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana",
	"Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla",
	"Brahma", "Indra", "Vaidhriti",
}
