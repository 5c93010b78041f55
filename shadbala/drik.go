package shadbala

import (
	"context"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/aspects"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/tables"
)

// DrikBala sums every in-orb Graha Drishti landing on p: each aspect
// contributes its strength scaled to 60 virupas, added if the aspecting
// planet is a natural benefic, subtracted if malefic.
func DrikBala(ctx context.Context, ch *chart.Chart, p tables.Planet) float64 {
	infos := aspects.GrahaDrishti(ctx, ch)
	waxing := true
	if moon, ok := ch.Positions[tables.Moon]; ok {
		if sun, ok := ch.Positions[tables.Sun]; ok {
			waxing = angles.Normalize(moon.Longitude-sun.Longitude) < 180
		}
	}

	var total float64
	for _, info := range infos {
		if info.Aspected != p {
			continue
		}
		contribution := info.Strength * 60
		if isBenefic(info.Aspecting, waxing) {
			total += contribution
		} else {
			total -= contribution
		}
	}
	return total
}
