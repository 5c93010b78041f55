package shadbala_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/shadbala"
	"github.com/parashari-jyotish/jyotish/tables"
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

func TestComputeAllSevenPlanetsSucceeds(t *testing.T) {
	handle, c := testSetup(t)
	results, err := shadbala.ComputeAll(context.Background(), handle, c)
	require.NoError(t, err)
	require.Len(t, results, 7)
	for p, r := range results {
		require.Equal(t, p, r.Planet)
		require.Greater(t, r.Total, 0.0)
		require.NotEmpty(t, r.Category)
	}
}

func TestNaisargikaBalaMatchesClassicalConstants(t *testing.T) {
	require.InDelta(t, 60.00, shadbala.NaisargikaBala(tables.Sun), 1e-9)
	require.InDelta(t, 8.57, shadbala.NaisargikaBala(tables.Saturn), 1e-9)
}

func TestVimsopakaBalaStaysWithinScale(t *testing.T) {
	_, c := testSetup(t)
	for _, p := range tables.SevenPlanets {
		v := shadbala.VimsopakaBala(context.Background(), c, p)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 20.0)
	}
}

func TestChestaBalaFixedForLuminariesAndNodes(t *testing.T) {
	handle, c := testSetup(t)
	require.Equal(t, 30.0, shadbala.ChestaBala(context.Background(), handle, c, tables.Sun))
	require.Equal(t, 60.0, shadbala.ChestaBala(context.Background(), handle, c, tables.Rahu))
}

func TestChestaBalaStaysWithinClassicalRange(t *testing.T) {
	handle, c := testSetup(t)
	for _, p := range tables.SevenPlanets {
		score := shadbala.ChestaBala(context.Background(), handle, c, p)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 60.0)
	}
}
