package ashtakavarga_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/ashtakavarga"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/internal/ephemeristest"
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
	c, err := chart.Build(context.Background(), handle, ut, loc, config.DefaultFlags())
	require.NoError(t, err)
	return c
}

func TestSarvashtakavargaSumsTo337(t *testing.T) {
	c := testChart(t)
	sav := ashtakavarga.Sarvashtakavarga(context.Background(), c)
	total := 0
	for _, v := range sav {
		total += v
	}
	require.Equal(t, 337, total)
}

func TestBhinnashtakavargaRowsSumToClassicalTotals(t *testing.T) {
	c := testChart(t)
	expected := map[tables.Planet]int{
		tables.Sun: 48, tables.Moon: 49, tables.Mars: 39, tables.Mercury: 54,
		tables.Jupiter: 56, tables.Venus: 52, tables.Saturn: 39,
	}
	for p, want := range expected {
		row := ashtakavarga.Bhinnashtakavarga(context.Background(), c, p)
		sum := 0
		for _, v := range row {
			sum += v
		}
		require.Equal(t, want, sum, "planet %v", p)
	}
}

func TestTrikonaShodhanaNeverIncreasesValues(t *testing.T) {
	c := testChart(t)
	bav := ashtakavarga.Bhinnashtakavarga(context.Background(), c, tables.Jupiter)
	reduced := ashtakavarga.TrikonaShodhana(bav)
	for i := range bav {
		require.LessOrEqual(t, reduced[i], bav[i])
	}
}

func TestAnalyzeTransitScoreInRange(t *testing.T) {
	c := testChart(t)
	result := ashtakavarga.AnalyzeTransit(context.Background(), c, tables.Saturn, 3)
	require.GreaterOrEqual(t, result.Score, 0.0)
	require.LessOrEqual(t, result.Score, 100.0)
}
