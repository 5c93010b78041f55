package chart_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/stretchr/testify/require"
)

func testHandle(t *testing.T) *ephemeris.Handle {
	t.Helper()
	cache, err := ephemeris.NewLRUCache(128)
	require.NoError(t, err)
	return ephemeris.NewHandle(ephemeristest.New(), cache, nil)
}

func TestBuildChartBasicInvariants(t *testing.T) {
	handle := testHandle(t)
	ut := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	loc := chart.Location{Latitude: 28.6139, Longitude: 77.2090}

	c, err := chart.Build(context.Background(), handle, ut, loc, config.DefaultFlags())
	require.NoError(t, err)

	rahu := c.Positions[tables.Rahu]
	ketu := c.Positions[tables.Ketu]
	diff := rahu.Longitude + 180
	for diff >= 360 {
		diff -= 360
	}
	require.InDelta(t, ketu.Longitude, diff, 1e-6)

	for _, pp := range c.Positions {
		require.Equal(t, int(pp.Longitude/30), pp.Sign)
	}

	ascSign := c.AscendantSign()
	for _, pp := range c.Positions {
		house := ((pp.Sign-ascSign)%12 + 12) % 12 + 1
		require.Contains(t, c.Houses[house], pp.Planet)
	}
}

func TestBuildChartRejectsInvalidLatitude(t *testing.T) {
	handle := testHandle(t)
	ut := time.Now()
	_, err := chart.Build(context.Background(), handle, ut, chart.Location{Latitude: 120}, config.DefaultFlags())
	require.Error(t, err)
}

func TestBuildChartWholeSignCuspsSpanAscendantSign(t *testing.T) {
	handle := testHandle(t)
	ut := time.Date(2024, 3, 25, 6, 0, 0, 0, time.UTC)
	loc := chart.Location{Latitude: 28.6139, Longitude: 77.2090}

	c, err := chart.Build(context.Background(), handle, ut, loc, config.DefaultFlags())
	require.NoError(t, err)

	ascSign := c.AscendantSign()
	require.Equal(t, float64(ascSign)*30, c.Cusps[0])
	for i := 1; i < 12; i++ {
		require.Equal(t, float64((ascSign+i)%12)*30, c.Cusps[i])
	}
}
