package transit

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// SadeSatiPhase names where transiting Saturn sits relative to natal Moon
// during the seven-and-a-half-year Sade Sati cycle.
type SadeSatiPhase string

const (
	SadeSatiRising  SadeSatiPhase = "Rising"  // Saturn in the 12th from Moon
	SadeSatiPeak    SadeSatiPhase = "Peak"    // Saturn in the 1st from Moon
	SadeSatiSetting SadeSatiPhase = "Setting" // Saturn in the 2nd from Moon
)

// SadeSati reports whether transiting Saturn's sign is in the 12th, 1st,
// or 2nd from natal Moon's sign, and if so, which phase.
func SadeSati(transitSaturnSign, natalMoonSign int) (active bool, phase SadeSatiPhase) {
	house := angles.HouseFromAscendant(transitSaturnSign, natalMoonSign)
	switch house {
	case 12:
		return true, SadeSatiRising
	case 1:
		return true, SadeSatiPeak
	case 2:
		return true, SadeSatiSetting
	default:
		return false, ""
	}
}

// SadeSatiWindow brackets the start (first 12th-from-Moon ingress) and end
// (last 2nd-from-Moon egress) of a Sade Sati cycle around `around`, each
// located via ScanSignEntries.
func SadeSatiWindow(ctx context.Context, handle *ephemeris.Handle, natalMoonSign int, around time.Time, coarseStep time.Duration) (start, end time.Time, err error) {
	window := 15 * 365 * 24 * time.Hour
	entries, err := ScanSignEntries(ctx, handle, tables.Saturn, around.Add(-window), around.Add(window), coarseStep)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	riseSign := ((natalMoonSign - 1) % 12 + 12) % 12  // 12th from Moon
	exitSign := ((natalMoonSign + 2) % 12 + 12) % 12  // sign just after the 2nd from Moon

	for _, e := range entries {
		if e.ToSign == riseSign && e.Time.Before(around) {
			start = e.Time
			break
		}
	}
	for _, e := range entries {
		if e.ToSign == exitSign && !e.Time.Before(around) {
			end = e.Time
		}
	}
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, jyerr.Newf(jyerr.NumericFailure, "transit.SadeSatiWindow", "could not bracket Sade Sati window within %s of %s", window, around)
	}
	return start, end, nil
}

// Dhaiya reports Saturn's Ardhashtama (4th-from-Moon) or Ashtama (8th-from-
// Moon) affliction; the 8th case is flagged Ashtama Shani.
func Dhaiya(transitSaturnSign, natalMoonSign int) (active bool, ashtamaShani bool) {
	house := angles.HouseFromAscendant(transitSaturnSign, natalMoonSign)
	switch house {
	case 4:
		return true, false
	case 8:
		return true, true
	default:
		return false, false
	}
}

// PanchakSubBand names the five 12° Panchaka Rahita sub-classifications
// splitting the [300°, 360°) Panchak band.
type PanchakSubBand string

const (
	MrityuPanchaka PanchakSubBand = "Mrityu"
	AgniPanchaka   PanchakSubBand = "Agni"
	RajaPanchaka   PanchakSubBand = "Raja"
	ChorPanchaka   PanchakSubBand = "Chor"
	RogaPanchaka   PanchakSubBand = "Roga"
)

var panchakSubBands = []PanchakSubBand{MrityuPanchaka, AgniPanchaka, RajaPanchaka, ChorPanchaka, RogaPanchaka}

// PanchakStatus reports whether Moon is transiting the Panchak band
// ([300°, 360°)), which 12° sub-band it falls in, and the estimated days
// remaining until exit, projected from Moon's current longitude speed.
type PanchakStatus struct {
	Active      bool
	SubBand     PanchakSubBand
	DaysToExit  float64
}

// Panchak evaluates Moon's current longitude and speed (degrees/day)
// against the [300°, 360°) band.
func Panchak(moonLongitude, moonSpeed float64) PanchakStatus {
	long := angles.Normalize(moonLongitude)
	if long < 300 {
		return PanchakStatus{Active: false}
	}
	bandOffset := long - 300
	subIndex := int(bandOffset / 12)
	if subIndex > 4 {
		subIndex = 4
	}
	remaining := 360 - long
	var days float64
	if moonSpeed > 0 {
		days = remaining / moonSpeed
	}
	return PanchakStatus{Active: true, SubBand: panchakSubBands[subIndex], DaysToExit: days}
}

// AtChart evaluates all three special transits at once for a transiting
// moment's Saturn and Moon positions against the natal chart.
func AtChart(natal *chart.Chart, transitSaturnSign int, transitMoonLong, transitMoonSpeed float64) (sadeSati SadeSatiPhase, sadeSatiActive bool, dhaiyaActive, ashtamaShani bool, panchak PanchakStatus) {
	natalMoon := natal.Positions[tables.Moon]
	sadeSatiActive, sadeSati = SadeSati(transitSaturnSign, natalMoon.Sign)
	dhaiyaActive, ashtamaShani = Dhaiya(transitSaturnSign, natalMoon.Sign)
	panchak = Panchak(transitMoonLong, transitMoonSpeed)
	return
}
