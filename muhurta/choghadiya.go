package muhurta

import (
	"time"

	"github.com/parashari-jyotish/jyotish/tables"
)

// CurrentChoghadiya returns the 0-indexed period (0..7), its type, and
// whether t falls in daytime or nighttime, for instant t within w.
func CurrentChoghadiya(w Window, t time.Time) (index int, ctype tables.ChoghadiyaType, daytime bool, err error) {
	if err = w.validate("muhurta.CurrentChoghadiya"); err != nil {
		return 0, 0, false, err
	}
	weekday := ((w.Weekday % 7) + 7) % 7
	if t.Before(w.Sunset) {
		bounds := splitInterval(w.Sunrise, w.Sunset, 8)
		index = slotIndex(bounds, t)
		return index, tables.ChoghadiyaDaySequence[weekday][index], true, nil
	}
	bounds := splitInterval(w.Sunset, w.NextSunrise, 8)
	index = slotIndex(bounds, t)
	return index, tables.ChoghadiyaNightSequence[weekday][index], false, nil
}
