package muhurta

import (
	"time"

	"github.com/parashari-jyotish/jyotish/tables"
)

// HoraLords returns the 24 Hora lords for a civil day on weekday: the first hora's
// lord is the weekday lord, each subsequent hora following the Chaldean
// order, wrapping across both the 12 daytime and 12 nighttime horas.
func HoraLords(weekday int) [24]tables.Planet {
	startLord := tables.VaraLord[((weekday%7)+7)%7]
	startIdx := 0
	for i, l := range tables.ChaldeanOrder {
		if l == startLord {
			startIdx = i
			break
		}
	}
	var lords [24]tables.Planet
	for i := 0; i < 24; i++ {
		lords[i] = tables.ChaldeanOrder[(startIdx+i)%len(tables.ChaldeanOrder)]
	}
	return lords
}

// CurrentHora returns the 0-indexed hora (0..23) and its ruling planet for
// instant t within w.
func CurrentHora(w Window, t time.Time) (index int, lord tables.Planet, err error) {
	if err = w.validate("muhurta.CurrentHora"); err != nil {
		return 0, 0, err
	}
	lords := HoraLords(w.Weekday)
	if t.Before(w.Sunset) {
		bounds := splitInterval(w.Sunrise, w.Sunset, 12)
		index = slotIndex(bounds, t)
	} else {
		bounds := splitInterval(w.Sunset, w.NextSunrise, 12)
		index = 12 + slotIndex(bounds, t)
	}
	return index, lords[index], nil
}
