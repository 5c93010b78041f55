package transit_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/parashari-jyotish/jyotish/transit"
	"github.com/stretchr/testify/require"
)

func testSetup(t *testing.T) (*ephemeris.Handle, *chart.Chart) {
	t.Helper()
	cache, err := ephemeris.NewLRUCache(128)
	require.NoError(t, err)
	handle := ephemeris.NewHandle(ephemeristest.New(), cache, nil)
	ut := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	loc := chart.Location{Latitude: 28.6139, Longitude: 77.2090}
	c, err := chart.Build(context.Background(), handle, ut, loc, config.DefaultFlags())
	require.NoError(t, err)
	return handle, c
}

func TestCurrentPositionsCoverSevenPlanetsPlusNodes(t *testing.T) {
	handle, c := testSetup(t)
	positions, err := transit.Current(context.Background(), handle, c, c.Timestamp.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Len(t, positions, 9)
	for _, pos := range positions {
		require.GreaterOrEqual(t, pos.HouseFromAscendant, 1)
		require.LessOrEqual(t, pos.HouseFromAscendant, 12)
	}
}

func TestScanSignEntriesFindsIngressesAcrossAYear(t *testing.T) {
	handle, _ := testSetup(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	entries, err := transit.ScanSignEntries(context.Background(), handle, tables.Sun, from, to, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.True(t, e.Time.After(from) || e.Time.Equal(from))
		require.True(t, e.Time.Before(to))
	}
}

func TestSadeSatiPhases(t *testing.T) {
	active, phase := transit.SadeSati(11, 0) // Pisces transiting, natal Moon in Aries: 12th from Moon
	require.True(t, active)
	require.Equal(t, transit.SadeSatiRising, phase)

	active, _ = transit.SadeSati(5, 0) // not in 12/1/2 from Moon
	require.False(t, active)
}

func TestDhaiyaFlagsAshtamaShani(t *testing.T) {
	active, ashtama := transit.Dhaiya(7, 0) // 8th from Aries is Scorpio(7)
	require.True(t, active)
	require.True(t, ashtama)
}

func TestPanchakBandAndSubBand(t *testing.T) {
	status := transit.Panchak(305, 13.0)
	require.True(t, status.Active)
	require.Equal(t, transit.MrityuPanchaka, status.SubBand)
	require.Greater(t, status.DaysToExit, 0.0)

	status = transit.Panchak(100, 13.0)
	require.False(t, status.Active)
}
