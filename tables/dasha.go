package tables

// VimshottariYears gives each of the nine Vimshottari lords' mahadasha
// length in years, summing to the classical 120-year cycle.
var VimshottariYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// VimshottariOrder is the fixed nine-lord sequence Vimshottari, the D249/
// KP sub-lord proportions, and Chara Dasha's ruler sequence all share.
var VimshottariOrder = []Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariTotalYears is the full 120-year Vimshottari cycle length.
const VimshottariTotalYears = 120.0

// YoginiYears gives each of the eight yoginis' duration in years, summing
// to the classical 36-year cycle.
var YoginiYears = map[string]float64{
	"Mangala": 1, "Pingala": 2, "Dhanya": 3, "Bhramari": 4,
	"Bhadrika": 5, "Ulka": 6, "Siddha": 7, "Sankata": 8,
}

// YoginiOrder is the fixed eight-yogini sequence, each keyed to its ruling
// planet for antardasha nesting.
var YoginiOrder = []string{"Mangala", "Pingala", "Dhanya", "Bhramari", "Bhadrika", "Ulka", "Siddha", "Sankata"}

// YoginiLord maps each yogini name to its ruling planet.
var YoginiLord = map[string]Planet{
	"Mangala": Moon, "Pingala": Sun, "Dhanya": Jupiter, "Bhramari": Mars,
	"Bhadrika": Mercury, "Ulka": Saturn, "Siddha": Venus, "Sankata": Rahu,
}

// YoginiStartLord maps a nakshatra index (0..26) to the yogini whose
// mahadasha begins the cycle, stepping through the eight-yogini order one
// nakshatra at a time (index mod 8).
func YoginiStartLord(nakshatra int) string {
	return YoginiOrder[nakshatra%8]
}

// NakshatraLord maps a nakshatra index (0..26) to its Vimshottari ruling
// planet, repeating the nine-lord order three times across the 27
// nakshatras.
func NakshatraLord(nakshatra int) Planet {
	return VimshottariOrder[nakshatra%9]
}

// NakshatraName gives the classical name for a nakshatra index (0..26).
var NakshatraName = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NadiOf classifies a nakshatra index into its Adi/Madhya/Antya Nadi
// bucket, used by matching/compatibility rule tables.
func NadiOf(nakshatra int) string {
	buckets := []string{"Adi", "Madhya", "Antya"}
	return buckets[nakshatra%3]
}
