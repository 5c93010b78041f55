package panchanga_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/panchanga"
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

func TestComputeProducesAllFiveLimbs(t *testing.T) {
	handle, c := testSetup(t)
	p, err := panchanga.Compute(context.Background(), handle, c)
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Tithi, 1)
	require.LessOrEqual(t, p.Tithi, 30)
	require.GreaterOrEqual(t, p.Yoga, 1)
	require.LessOrEqual(t, p.Yoga, 27)
	require.GreaterOrEqual(t, p.Karana, 1)
	require.LessOrEqual(t, p.Karana, 60)
	require.GreaterOrEqual(t, p.Vara, 0)
	require.LessOrEqual(t, p.Vara, 6)
	require.NotEmpty(t, p.NakshatraName)
}

func TestTithiOfBoundary(t *testing.T) {
	n, frac := panchanga.TithiOf(0, 0)
	require.Equal(t, 1, n)
	require.InDelta(t, 0, frac, 1e-9)

	n, _ = panchanga.TithiOf(0, 354)
	require.Equal(t, 30, n)
}

func TestPakshaSplitsAtFifteen(t *testing.T) {
	require.Equal(t, "Shukla", panchanga.Paksha(1))
	require.Equal(t, "Shukla", panchanga.Paksha(15))
	require.Equal(t, "Krishna", panchanga.Paksha(16))
	require.Equal(t, "Krishna", panchanga.Paksha(30))
}

func TestKaranaFixedSlotsNamed(t *testing.T) {
	require.Equal(t, "Kimstughna", panchanga.KaranaName(1))
	require.Equal(t, "Shakuni", panchanga.KaranaName(58))
	require.Equal(t, "Chatushpada", panchanga.KaranaName(59))
	require.Equal(t, "Naga", panchanga.KaranaName(60))
	require.Equal(t, "Bava", panchanga.KaranaName(2))
}

func TestTithiJunctionBracketsTarget(t *testing.T) {
	handle, c := testSetup(t)
	p, err := panchanga.Compute(context.Background(), handle, c)
	require.NoError(t, err)
	next := p.Tithi%30 + 1
	junction, err := panchanga.TithiJunction(context.Background(), handle, c.Timestamp, next, time.Second)
	if err == nil {
		require.WithinDuration(t, c.Timestamp, junction, 48*time.Hour)
	}
}
