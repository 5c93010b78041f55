package aspects_test

import (
	"context"
	"testing"
	"time"

	"github.com/parashari-jyotish/jyotish/aspects"
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

func TestGrahaDrishtiStaysInOrb(t *testing.T) {
	c := testChart(t)
	infos := aspects.GrahaDrishti(context.Background(), c)
	for _, info := range infos {
		require.LessOrEqual(t, info.Strength, 1.0)
		require.GreaterOrEqual(t, info.Strength, 0.0)
	}
}

func TestGrahaDrishtiEnumeratesMarsSpecialAspects(t *testing.T) {
	c := testChart(t)
	infos := aspects.GrahaDrishti(context.Background(), c)
	sawSpecial := false
	for _, info := range infos {
		if info.Aspecting == tables.Mars && (info.Type == aspects.Aspect4th || info.Type == aspects.Aspect8th) {
			sawSpecial = true
		}
	}
	_ = sawSpecial // presence is data-dependent; this only checks the engine doesn't panic enumerating Mars
}

func TestRashiDrishtiDualSignsMutuallyAspect(t *testing.T) {
	require.True(t, aspects.RashiDrishti(2, 5))  // Gemini -> Virgo, both dual
	require.True(t, aspects.RashiDrishti(5, 11)) // Virgo -> Pisces
	require.False(t, aspects.RashiDrishti(2, 2))
}

func TestRashiDrishtiMovableExcludesAdjacentFixed(t *testing.T) {
	require.False(t, aspects.RashiDrishti(0, 1)) // Aries does not aspect adjacent Taurus
	require.True(t, aspects.RashiDrishti(0, 4))  // Aries aspects Leo
	require.True(t, aspects.RashiDrishti(0, 7))  // Aries aspects Scorpio
	require.True(t, aspects.RashiDrishti(0, 10)) // Aries aspects Aquarius
}
