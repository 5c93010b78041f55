package tables

// D60DeityName gives the 60 Shashtiamsa deity names in Parashari order,
// indexed 0..59. Odd signs count forward from bucket 1; even signs count
// the same sequence in reverse (bucket 60 down to 1), per the classical
// D60 rule.
var D60DeityName = [60]string{
	"Ghora", "Rakshasa", "Deva", "Kubera", "Yaksha", "Kinnara", "Bhrashta", "Kulaghna", "Garala", "Vahni",
	"Maya", "Purishaka", "Apampati", "Marut", "Kaala", "Sarpa", "Amrita", "Indu", "Mridu", "Komala",
	"Heramba", "Brahma", "Vishnu", "Maheshwara", "Deva", "Ardra", "Kalinasa", "Kshitisha", "Kamalakara", "Gulika",
	"Mrityu", "Kaala", "Davagni", "Ghora", "Yama", "Kantaka", "Sudha", "Amrita", "Poornachandra", "Vishadagdha",
	"Kulanasa", "Vamshakshaya", "Utpata", "Kaala", "Saumya", "Komala", "Sheetala", "Karaladamshtra", "Chandramukhi", "Praveena",
	"Kaladanta", "Dandayudha", "Nirmala", "Saumya", "Kroora", "Atisheetala", "Amrita", "Payodhi", "Bhramana", "Chandrarekha",
}

// D60Deity returns the deity name for bucket 1..60 in a sign of the given
// parity (true = odd/Aries-type sign, counted forward; false = even sign,
// counted in reverse).
func D60Deity(bucket int, oddSign bool) string {
	if oddSign {
		return D60DeityName[bucket-1]
	}
	return D60DeityName[60-bucket]
}
