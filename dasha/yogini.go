package dasha

import (
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/tables"
)

// yoginiTotalYears is the full eight-yogini cycle length.
const yoginiTotalYears = 36.0

// YoginiPeriod mirrors Period but keys on the yogini's name rather than a
// bare Planet tag, since a yogini's ruling planet alone does not identify
// which of the eight periods is active.
type YoginiPeriod struct {
	Yogini     string
	Lord       tables.Planet
	Start      time.Time
	End        time.Time
	Level      int
	SubPeriods []YoginiPeriod
}

func yoginiIndexOf(name string) int {
	for i, n := range tables.YoginiOrder {
		if n == name {
			return i
		}
	}
	return 0
}

func yoginiSubdivide(startIdx int, start, end time.Time, level int) []YoginiPeriod {
	if level > maxLevel {
		return nil
	}
	n := len(tables.YoginiOrder)
	span := end.Sub(start)
	var periods []YoginiPeriod
	cursor := start
	for i := 0; i < n; i++ {
		name := tables.YoginiOrder[(startIdx+i)%n]
		fraction := tables.YoginiYears[name] / yoginiTotalYears
		length := time.Duration(float64(span) * fraction)
		periodEnd := cursor.Add(length)
		if i == n-1 {
			periodEnd = end
		}
		p := YoginiPeriod{
			Yogini: name,
			Lord:   tables.YoginiLord[name],
			Start:  cursor,
			End:    periodEnd,
			Level:  level,
		}
		if level < maxLevel {
			p.SubPeriods = yoginiSubdivide(yoginiIndexOf(name), cursor, periodEnd, level+1)
		}
		periods = append(periods, p)
		cursor = periodEnd
	}
	return periods
}

// Yogini builds the 36-year Yogini dasha tree starting at birth, anchored
// on the Moon's nakshatra via tables.YoginiStartLord, with antardashas
// nesting proportionally per the same rule as Vimshottari.
func Yogini(birth time.Time, moonLongitude float64) []YoginiPeriod {
	nak := angles.Nakshatra(moonLongitude)
	startName := tables.YoginiStartLord(nak)
	startIdx := yoginiIndexOf(startName)

	year := solarYear
	totalSpan := time.Duration(yoginiTotalYears * float64(year))
	end := birth.Add(totalSpan)
	return yoginiSubdivide(startIdx, birth, end, 0)
}

// YoginiAt returns the chain of active Yogini periods at t.
func YoginiAt(root []YoginiPeriod, t time.Time) []YoginiPeriod {
	var chain []YoginiPeriod
	periods := root
	for {
		found := false
		for _, p := range periods {
			if !t.Before(p.Start) && t.Before(p.End) {
				chain = append(chain, p)
				periods = p.SubPeriods
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}
