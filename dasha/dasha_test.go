package dasha_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/dasha"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T) (*ephemeris.Handle, *chart.Chart) {
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

func TestVimshottariCoversFullCycle(t *testing.T) {
	_, c := testChart(t)
	moon := c.Positions[tables.Moon]
	periods := dasha.Vimshottari(c.Timestamp, moon.Longitude, 365.25)
	require.Len(t, periods, 9)
	require.Equal(t, periods[0].Start, c.Timestamp)
	for i := 1; i < 9; i++ {
		require.Equal(t, periods[i-1].End, periods[i].Start)
	}
}

func TestVimshottariSubPeriodsNestWithinParent(t *testing.T) {
	_, c := testChart(t)
	moon := c.Positions[tables.Moon]
	periods := dasha.Vimshottari(c.Timestamp, moon.Longitude, 365.25)
	first := periods[0]
	require.NotEmpty(t, first.SubPeriods)
	require.Equal(t, first.Start, first.SubPeriods[0].Start)
	require.Equal(t, first.End, first.SubPeriods[len(first.SubPeriods)-1].End)
}

func TestVimshottariAtReturnsFiveLevelChain(t *testing.T) {
	_, c := testChart(t)
	moon := c.Positions[tables.Moon]
	periods := dasha.Vimshottari(c.Timestamp, moon.Longitude, 365.25)
	chain := dasha.At(periods, c.Timestamp.Add(24*time.Hour))
	require.NotEmpty(t, chain)
	require.LessOrEqual(t, len(chain), 5)
}

func TestYoginiCoversThirtySixYears(t *testing.T) {
	_, c := testChart(t)
	moon := c.Positions[tables.Moon]
	periods := dasha.Yogini(c.Timestamp, moon.Longitude)
	require.Len(t, periods, 8)
	require.WithinDuration(t, c.Timestamp.AddDate(36, 0, 0), periods[len(periods)-1].End, 24*time.Hour)
}

func TestCharaSequenceStartsAtAscendant(t *testing.T) {
	_, c := testChart(t)
	periods := dasha.Chara(c, c.Timestamp)
	require.Len(t, periods, 12)
	require.Equal(t, c.AscendantSign(), periods[0].Sign)
}
