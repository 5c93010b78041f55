// Package panchanga computes the five classical lunar-calendar limbs
// (tithi, yoga, karana, vara, nakshatra) from a Chart's Sun/Moon
// longitudes, per spec.md §4.7, plus the tithi-junction binary search
// used to find exact transition instants.
package panchanga

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/log"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
	"go.opentelemetry.io/otel/attribute"
)

// Panchanga is the five-limb lunar-calendar reading for a moment and place.
type Panchanga struct {
	Tithi         int
	TithiName     string
	Paksha        string
	Yoga          int
	YogaName      string
	Karana        int
	KaranaName    string
	Vara          int
	VaraName      string
	VaraLord      tables.Planet
	Nakshatra     int
	NakshatraName string
	Pada          int
	Abhijit       bool
	Sunrise       time.Time
	Sunset        time.Time
}

// Compute derives the full Panchanga for ch, using handle to resolve the
// location's sunrise and sunset for the Vara limb.
func Compute(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart) (*Panchanga, error) {
	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "panchanga.Compute")
	defer span.End()
	span.SetAttributes(attribute.String("timestamp", ch.Timestamp.Format(time.RFC3339)))

	sun, ok := ch.Positions[tables.Sun]
	if !ok {
		return nil, jyerr.Newf(jyerr.InvalidInput, "panchanga.Compute", "chart missing Sun position")
	}
	moon, ok := ch.Positions[tables.Moon]
	if !ok {
		return nil, jyerr.Newf(jyerr.InvalidInput, "panchanga.Compute", "chart missing Moon position")
	}

	tithiNum, _ := TithiOf(sun.Longitude, moon.Longitude)
	yogaNum := YogaOf(sun.Longitude, moon.Longitude)
	karanaNum := KaranaOf(sun.Longitude, moon.Longitude)
	nakIndex, pada, abhijit := NakshatraOf(moon.Longitude)

	jd := handle.JulianDay(ch.Timestamp)
	sunrise, sunset, err := handle.SunriseSunset(ctx, jd, ch.Location.Latitude, ch.Location.Longitude)
	if err != nil {
		span.RecordError(err)
		return nil, jyerr.New(jyerr.EphemerisUnavailable, "panchanga.Compute", err)
	}
	weekday, err := VaraOf(ctx, handle, ch.Timestamp, ch.Location.Latitude, ch.Location.Longitude)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	log.Logger().DebugContext(ctx, "panchanga computed",
		"tithi", tithiNum, "nakshatra", tables.NakshatraName[nakIndex], "vara", VaraName(weekday))

	return &Panchanga{
		Tithi:         tithiNum,
		TithiName:     TithiName(tithiNum),
		Paksha:        Paksha(tithiNum),
		Yoga:          yogaNum,
		YogaName:      YogaName(yogaNum),
		Karana:        karanaNum,
		KaranaName:    KaranaName(karanaNum),
		Vara:          weekday,
		VaraName:      VaraName(weekday),
		VaraLord:      VaraLord(weekday),
		Nakshatra:     nakIndex,
		NakshatraName: NakshatraName(nakIndex),
		Pada:          pada,
		Abhijit:       abhijit,
		Sunrise:       handle.TimeFromJulianDay(sunrise),
		Sunset:        handle.TimeFromJulianDay(sunset),
	}, nil
}
