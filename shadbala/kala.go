package shadbala

import (
	"context"
	"math"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// obliquityOfEcliptic is the mean obliquity used by ayana-bala's
// declination estimate; a fixed constant is adequate at this precision.
const obliquityOfEcliptic = 23.4393

func isBenefic(p tables.Planet, waxingMoon bool) bool {
	if p == tables.Moon {
		return tables.IsMoonBenefic(waxingMoon)
	}
	return tables.NaturalBenefic[p]
}

// dayNightPhase expresses jd's position in the sunrise-sunset-next-sunrise
// cycle as degrees: 0 at sunrise, 180 at sunset, 360 at the next sunrise.
func dayNightPhase(jd, sunrise, sunset, nextSunrise ephemeris.JulianDay) (phase float64, daytime bool) {
	if jd >= sunrise && jd < sunset {
		frac := float64(jd-sunrise) / float64(sunset-sunrise)
		return frac * 180, true
	}
	span := nextSunrise - sunset
	if span <= 0 {
		return 270, false
	}
	frac := float64(jd-sunset) / float64(span)
	if frac < 0 {
		frac = 0
	}
	return 180 + frac*180, false
}

// natonnataBala scores day/night strength from the real phase angle:
// diurnal planets (Sun, Jupiter, Venus) peak at midday (phase 90),
// nocturnal planets (Moon, Mars, Saturn) peak at midnight (phase 270);
// Mercury is conventionally always strong.
func natonnataBala(p tables.Planet, phase float64) float64 {
	if p == tables.Mercury {
		return 60
	}
	ideal := 270.0
	if p == tables.Sun || p == tables.Jupiter || p == tables.Venus {
		ideal = 90.0
	}
	d := math.Abs(phase - ideal)
	if d > 180 {
		d = 360 - d
	}
	v := 60 * (1 - d/180)
	if v < 0 {
		return 0
	}
	return v
}

// pakshaBala scores bright/dark fortnight strength: benefics peak at full
// moon, malefics peak at new moon, symmetric across waxing and waning.
func pakshaBala(ch *chart.Chart, p tables.Planet) float64 {
	moon, okM := ch.Positions[tables.Moon]
	sun, okS := ch.Positions[tables.Sun]
	if !okM || !okS {
		return 0
	}
	tithiAngle := angles.Normalize(moon.Longitude - sun.Longitude)
	waxing := tithiAngle < 180
	fraction := 1 - math.Abs(tithiAngle-180)/180
	if isBenefic(p, waxing) {
		return fraction * 60
	}
	return (1 - fraction) * 60
}

var dayThirdLords = [3]tables.Planet{tables.Mercury, tables.Sun, tables.Saturn}
var nightThirdLords = [3]tables.Planet{tables.Moon, tables.Venus, tables.Mars}

// tribhagaBala scores day/night-third rulership: Jupiter always scores
// 60; otherwise the ruler of the current third scores 60, others 0.
func tribhagaBala(p tables.Planet, phase float64, daytime bool) float64 {
	if p == tables.Jupiter {
		return 60
	}
	var third int
	var lords [3]tables.Planet
	if daytime {
		third = int(phase / 60)
		lords = dayThirdLords
	} else {
		third = int((phase - 180) / 60)
		lords = nightThirdLords
	}
	if third < 0 {
		third = 0
	}
	if third > 2 {
		third = 2
	}
	if lords[third] == p {
		return 60
	}
	return 0
}

// varaBala awards 45 virupas to the weekday's ruling planet.
func varaBala(weekday int, p tables.Planet) float64 {
	if tables.VaraLord[((weekday%7)+7)%7] == p {
		return 45
	}
	return 0
}

// horaBala walks the Chaldean planetary-hour sequence, 12 hours across
// daytime and 12 across nighttime, starting from the weekday lord at
// sunrise, and awards 60 virupas to the current hour's ruler.
func horaBala(p tables.Planet, jd, sunrise, sunset, nextSunrise ephemeris.JulianDay, weekday int) float64 {
	startLord := tables.VaraLord[((weekday%7)+7)%7]
	startIdx := 0
	for i, lord := range tables.ChaldeanOrder {
		if lord == startLord {
			startIdx = i
			break
		}
	}

	var horaIndex int
	if jd >= sunrise && jd < sunset {
		length := (sunset - sunrise) / 12
		if length <= 0 {
			return 0
		}
		horaIndex = int(float64(jd-sunrise) / float64(length))
	} else {
		length := (nextSunrise - sunset) / 12
		if length <= 0 {
			return 0
		}
		idx := int(float64(jd-sunset) / float64(length))
		horaIndex = 12 + idx
	}
	if horaIndex < 0 {
		horaIndex = 0
	}
	if horaIndex > 23 {
		horaIndex = 23
	}

	lordIdx := (startIdx + horaIndex) % len(tables.ChaldeanOrder)
	if tables.ChaldeanOrder[lordIdx] == p {
		return 60
	}
	return 0
}

// masaBala awards 30 virupas to the lord of the sign the Sun currently
// occupies, the sidereal-derived stand-in for the Hindu lunar month lord.
func masaBala(ch *chart.Chart, p tables.Planet) float64 {
	sun, ok := ch.Positions[tables.Sun]
	if !ok {
		return 0
	}
	if tables.SignLord[sun.Sign] == p {
		return 30
	}
	return 0
}

// jupiterEpochJD anchors the 60-year Samvatsara cycle's estimate: at this
// Julian day, by this module's own convention, the cycle index is taken
// as 0. No epoch-exact Samvatsara table is available in this pack, so the
// index is estimated from elapsed 12-year Jupiter cycles plus Jupiter's
// current sign — still ephemeris-derived, never a calendar-year lookup.
const jupiterEpochJD = 2451545.0
const jupiterCycleYears = 12 * 365.2425

// abdaBala awards 15 virupas to the estimated Samvatsara year lord,
// picked across all seven traditional planets (never a 5-planet
// weekday-only approximation) via Jupiter's cycle position.
func abdaBala(handle *ephemeris.Handle, ch *chart.Chart, p tables.Planet) float64 {
	jupiter, ok := ch.Positions[tables.Jupiter]
	if !ok {
		return 0
	}
	jd := handle.JulianDay(ch.Timestamp)
	elapsedCycles := (float64(jd) - jupiterEpochJD) / jupiterCycleYears
	indexFloat := elapsedCycles*12 + float64(jupiter.Sign)
	index := int(math.Mod(math.Floor(indexFloat), 60))
	if index < 0 {
		index += 60
	}
	yearLord := tables.VaraLord[((index%7)+7)%7]
	if yearLord == p {
		return 15
	}
	return 0
}

// ayanaBala scores solstice-direction strength from the Sun's estimated
// tropical declination: benefics gain in Uttarayana (northern declination),
// malefics gain in Dakshinayana.
func ayanaBala(ch *chart.Chart, p tables.Planet) float64 {
	sun, ok := ch.Positions[tables.Sun]
	if !ok {
		return 30
	}
	tropicalLong := sun.Longitude + ch.Ayanamsa
	rad := tropicalLong * math.Pi / 180
	decl := math.Asin(math.Sin(obliquityOfEcliptic*math.Pi/180) * math.Sin(rad))
	normalized := decl / (obliquityOfEcliptic * math.Pi / 180)

	benefic := isBenefic(p, true)
	var score float64
	if benefic {
		score = 30 + 30*normalized
	} else {
		score = 30 - 30*normalized
	}
	if score < 0 {
		return 0
	}
	if score > 60 {
		return 60
	}
	return score
}

// KalaBala is the time-strength component, summing natonnata, paksha,
// tribhaga, abda, masa, vara, hora, and ayana bala. Every sub-component
// that depends on day/night timing uses the location's actual sunrise
// and sunset, never an approximation from the Sun's house.
func KalaBala(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart, p tables.Planet) (float64, error) {
	jd := handle.JulianDay(ch.Timestamp)
	sunrise, sunset, err := handle.SunriseSunset(ctx, jd, ch.Location.Latitude, ch.Location.Longitude)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "shadbala.KalaBala", err)
	}
	var dayStart ephemeris.JulianDay
	if jd >= sunrise {
		dayStart = ephemeris.JulianDay(math.Floor(float64(jd)))
	} else {
		dayStart = ephemeris.JulianDay(math.Floor(float64(jd)) - 1)
	}
	nextSunrise, _, err := handle.SunriseSunset(ctx, dayStart+1, ch.Location.Latitude, ch.Location.Longitude)
	if err != nil {
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "shadbala.KalaBala", err)
	}

	phase, daytime := dayNightPhase(jd, sunrise, sunset, nextSunrise)
	weekday := int(ch.Timestamp.Weekday())

	total := natonnataBala(p, phase)
	total += pakshaBala(ch, p)
	total += tribhagaBala(p, phase, daytime)
	total += varaBala(weekday, p)
	total += horaBala(p, jd, sunrise, sunset, nextSunrise, weekday)
	total += masaBala(ch, p)
	total += abdaBala(handle, ch, p)
	total += ayanaBala(ch, p)
	return total, nil
}
