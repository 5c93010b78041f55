package muhurta_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/muhurta"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/stretchr/testify/require"
)

func testWindow() muhurta.Window {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC) // a Sunday
	return muhurta.Window{
		Weekday:     int(day.Weekday()),
		Sunrise:     day.Add(6 * time.Hour),
		Sunset:      day.Add(18 * time.Hour),
		NextSunrise: day.Add(30 * time.Hour),
	}
}

func TestHoraLordsStartAtWeekdayLord(t *testing.T) {
	w := testWindow()
	lords := muhurta.HoraLords(w.Weekday)
	require.Equal(t, tables.VaraLord[w.Weekday], lords[0])
}

func TestCurrentHoraFindsSunriseHora(t *testing.T) {
	w := testWindow()
	index, lord, err := muhurta.CurrentHora(w, w.Sunrise.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 0, index)
	require.Equal(t, tables.VaraLord[w.Weekday], lord)
}

func TestCurrentChoghadiyaDaytimeVsNighttime(t *testing.T) {
	w := testWindow()
	_, _, daytime, err := muhurta.CurrentChoghadiya(w, w.Sunrise.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, daytime)

	_, _, daytime, err = muhurta.CurrentChoghadiya(w, w.Sunset.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, daytime)
}

func TestRahukalamFallsWithinDaytime(t *testing.T) {
	w := testWindow()
	start, end := muhurta.Rahukalam(w)
	require.True(t, !start.Before(w.Sunrise) && (end.Equal(w.Sunset) || end.Before(w.Sunset)))
	require.True(t, start.Before(end))
}

func TestAbhijitIsAroundLocalNoon(t *testing.T) {
	w := testWindow()
	start, end := muhurta.AbhijitMuhurta(w)
	noon := w.Sunrise.Add(w.Sunset.Sub(w.Sunrise) / 2)
	require.True(t, !start.After(noon) && !end.Before(noon))
}

func TestBrahmaMuhurtaPrecedesSunrise(t *testing.T) {
	w := testWindow()
	_, end := muhurta.BrahmaMuhurta(w)
	require.True(t, end.Before(w.NextSunrise))
}

func TestComputeUpagrahaDerivesAllSevenPoints(t *testing.T) {
	cache, err := ephemeris.NewLRUCache(128)
	require.NoError(t, err)
	handle := ephemeris.NewHandle(ephemeristest.New(), cache, nil)
	w := testWindow()
	up, err := muhurta.ComputeUpagraha(context.Background(), handle, w, 45.0, 28.6139, 77.2090, ephemeris.WholeSignHouses)
	require.NoError(t, err)
	require.Equal(t, up.Gulika, up.Mandi)
	require.GreaterOrEqual(t, up.Dhuma, 0.0)
	require.Less(t, up.Dhuma, 360.0)
}
