package dasha

import (
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/tables"
)

// solarYear is the default Gregorian year used throughout this package
// wherever a caller does not supply config.VimshottariYearLength or
// config.SavanaVimshottariYearLength explicitly (e.g. Yogini and Chara,
// which spec.md never offers a Savana-year option for).
const solarYear = 365.25 * 24 * time.Hour

// Vimshottari builds the full 120-year Vimshottari mahadasha tree starting
// at birth, anchored on the Moon's nakshatra and the fraction of it
// already traversed at moonLongitude, per spec.md §4.8 steps 1-4.
// yearLengthDays converts lord-years into elapsed time — pass
// config.CalculationFlags.VimshottariYearLength (365.25 by default, or
// config.SavanaVimshottariYearLength for the Savana 360-day convention).
func Vimshottari(birth time.Time, moonLongitude float64, yearLengthDays float64) []Period {
	year := time.Duration(yearLengthDays * 24 * float64(time.Hour))

	nak := angles.Nakshatra(moonLongitude)
	nakStart := float64(nak) * (360.0 / 27.0)
	fraction := (moonLongitude - nakStart) / (360.0 / 27.0)

	firstLord := tables.NakshatraLord(nak)
	startIdx := indexOf(tables.VimshottariOrder, firstLord)

	remainingYears := (1 - fraction) * tables.VimshottariYears[firstLord]
	firstStart := birth
	firstEnd := birth.Add(time.Duration(remainingYears * float64(year)))

	var periods []Period
	cursor := firstStart
	for i := 0; i < 9; i++ {
		lord := tables.VimshottariOrder[(startIdx+i)%9]
		var length time.Duration
		var start time.Time
		if i == 0 {
			start = firstStart
			length = firstEnd.Sub(firstStart)
		} else {
			start = cursor
			length = time.Duration(tables.VimshottariYears[lord] * float64(year))
		}
		end := start.Add(length)
		p := Period{
			Lord:  lord,
			Label: lord.String(),
			Start: start,
			End:   end,
			Level: 0,
		}
		p.SubPeriods = subdivide(tables.VimshottariOrder, tables.VimshottariYears, tables.VimshottariTotalYears, indexOf(tables.VimshottariOrder, lord), start, end, 1)
		periods = append(periods, p)
		cursor = end
	}
	return periods
}
