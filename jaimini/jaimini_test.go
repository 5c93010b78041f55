package jaimini_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/jaimini"
	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T) *chart.Chart {
	t.Helper()
	cache, err := ephemeris.NewLRUCache(128)
	require.NoError(t, err)
	handle := ephemeris.NewHandle(ephemeristest.New(), cache, nil)
	ut := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	loc := chart.Location{Latitude: 28.6139, Longitude: 77.2090}
	c, err := chart.Build(context.Background(), handle, ut, loc, config.DefaultFlags())
	require.NoError(t, err)
	return c
}

func TestAtmakarakaIsHighestDegreePlanet(t *testing.T) {
	c := testChart(t)
	ak, err := jaimini.Atmakaraka(c, config.SevenKarakas)
	require.NoError(t, err)

	akDegree := c.Positions[ak].PositionInSign
	for _, pp := range c.Positions {
		if pp.Planet == ak {
			continue
		}
		if pp.Planet.String() == "Uranus" || pp.Planet.String() == "Neptune" || pp.Planet.String() == "Pluto" {
			continue
		}
		require.LessOrEqual(t, pp.PositionInSign, akDegree+1e-9)
	}
}

func TestKarakamsaReturnsValidSign(t *testing.T) {
	c := testChart(t)
	ak, err := jaimini.Atmakaraka(c, config.SevenKarakas)
	require.NoError(t, err)
	sign, err := jaimini.Karakamsa(context.Background(), c, ak)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sign, 0)
	require.LessOrEqual(t, sign, 11)
}

func TestArudhaPadaStaysInSignRange(t *testing.T) {
	c := testChart(t)
	for h := 1; h <= 12; h++ {
		arudha := jaimini.ArudhaPada(c, h)
		require.GreaterOrEqual(t, arudha, 0)
		require.LessOrEqual(t, arudha, 11)
	}
}

func TestUpapadaIsArudhaOfTwelfthHouse(t *testing.T) {
	c := testChart(t)
	require.Equal(t, jaimini.ArudhaPada(c, 12), jaimini.Upapada(c))
}
