package divisional_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/divisional"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
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

func TestD1IsIdentity(t *testing.T) {
	c := testChart(t)
	d1, err := divisional.Project(context.Background(), c, divisional.D1)
	require.NoError(t, err)
	for p, pp := range c.Positions {
		require.Equal(t, pp.Longitude, d1.Positions[p].Longitude)
	}
	require.Equal(t, c.Ascendant, d1.Ascendant)
}

func TestD2OnlyProducesLeoOrCancer(t *testing.T) {
	c := testChart(t)
	d2, err := divisional.Project(context.Background(), c, divisional.D2)
	require.NoError(t, err)
	for _, pp := range d2.Positions {
		require.Contains(t, []int{3, 4}, pp.Sign) // Cancer=3, Leo=4
	}
}

func TestD9HouseAndSignInvariantsHold(t *testing.T) {
	c := testChart(t)
	d9, err := divisional.Project(context.Background(), c, divisional.D9)
	require.NoError(t, err)

	ascSign := d9.AscendantSign()
	for _, pp := range d9.Positions {
		require.Equal(t, int(pp.Longitude/30), pp.Sign)
		house := ((pp.Sign-ascSign)%12+12)%12 + 1
		require.Contains(t, d9.Houses[house], pp.Planet)
	}
}

func TestD249SuppliesExactSubDegree(t *testing.T) {
	c := testChart(t)
	d249, err := divisional.Project(context.Background(), c, divisional.D249)
	require.NoError(t, err)
	for _, pp := range d249.Positions {
		require.GreaterOrEqual(t, pp.PositionInSign, 0.0)
		require.Less(t, pp.PositionInSign, 30.0)
	}
}

func TestUnknownDivisionErrors(t *testing.T) {
	c := testChart(t)
	_, err := divisional.Project(context.Background(), c, divisional.Type("D999"))
	require.Error(t, err)
}
