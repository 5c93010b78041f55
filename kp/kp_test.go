package kp_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/kp"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T) *chart.Chart {
	t.Helper()
	cache, err := ephemeris.NewLRUCache(128)
	require.NoError(t, err)
	handle := ephemeris.NewHandle(ephemeristest.New(), cache, nil)
	ut := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	loc := chart.Location{Latitude: 28.6139, Longitude: 77.2090}
	flags := config.DefaultFlags()
	flags.SiderealMode = config.KPNewAyanamsa
	c, err := chart.Build(context.Background(), handle, ut, loc, flags)
	require.NoError(t, err)
	return c
}

func TestDecomposeSubSpansNestWithinNakshatra(t *testing.T) {
	pos := kp.Decompose(15.0)
	require.Equal(t, 1, pos.Star) // Bharani: 13.33-26.67
	require.GreaterOrEqual(t, pos.SubStart, 13.0+1.0/3.0)
	require.LessOrEqual(t, pos.SubEnd, 26.0+2.0/3.0)
	require.True(t, pos.SubStart <= 15.0 && 15.0 < pos.SubEnd)
}

func TestDecomposeStarLordMatchesNakshatraTable(t *testing.T) {
	pos := kp.Decompose(0.5) // Ashwini, lord Ketu
	require.Equal(t, tables.Ketu, pos.StarLord)
	require.Equal(t, tables.Ketu, pos.SubLord) // first sub-span always starts at the star lord
}

func TestSignificatorsPopulateAllFourGroups(t *testing.T) {
	c := testChart(t)
	sig := kp.ComputeSignificators(c, tables.Moon)
	require.Equal(t, tables.Moon, sig.Planet)
	require.NotEmpty(t, sig.C) // Moon always owns Cancer, which maps to exactly one house
	require.NotEmpty(t, sig.A)
	require.NotEmpty(t, sig.B)
	require.NotEmpty(t, sig.D)
}
