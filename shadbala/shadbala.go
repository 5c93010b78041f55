// Package shadbala computes the six-fold classical planetary strength
// (Sthana, Dig, Kala, Chesta, Naisargika, Drik Bala) per spec.md §4.5,
// plus the supplemented Vimsopaka Bala.
package shadbala

import (
	"context"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
)

// Category classifies a planet's total strength against its required
// minimum, per spec.md §4.5's Parashari thresholds.
type Category string

const (
	VeryStrong Category = "VeryStrong"
	Strong     Category = "Strong"
	Moderate   Category = "Moderate"
	Weak       Category = "Weak"
	VeryWeak   Category = "VeryWeak"
)

// MinimumRequired gives each strength-planet's classical minimum total
// Shadbala, in virupas.
var MinimumRequired = map[tables.Planet]float64{
	tables.Sun:     390,
	tables.Moon:    360,
	tables.Mars:    300,
	tables.Mercury: 420,
	tables.Jupiter: 390,
	tables.Venus:   330,
	tables.Saturn:  300,
}

// Result is one planet's full Shadbala breakdown.
type Result struct {
	Planet     tables.Planet
	Sthana     float64
	Dig        float64
	Kala       float64
	Chesta     float64
	Naisargika float64
	Drik       float64
	Total      float64
	Required   float64
	Category   Category
}

func categorize(total, required float64) Category {
	ratio := total / required
	switch {
	case ratio >= 1.25:
		return VeryStrong
	case ratio >= 1.0:
		return Strong
	case ratio >= 0.85:
		return Moderate
	case ratio >= 0.65:
		return Weak
	default:
		return VeryWeak
	}
}

// Compute produces p's full Shadbala result.
func Compute(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart, p tables.Planet) (Result, error) {
	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "shadbala.Compute")
	defer span.End()

	sthana := SthanaBala(ctx, ch, p)
	dig := DigBala(ch, p)
	kala, err := KalaBala(ctx, handle, ch, p)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	chesta := ChestaBala(ctx, handle, ch, p)
	naisargika := NaisargikaBala(p)
	drik := DrikBala(ctx, ch, p)

	total := sthana + dig + kala + chesta + naisargika + drik
	required := MinimumRequired[p]

	return Result{
		Planet:     p,
		Sthana:     sthana,
		Dig:        dig,
		Kala:       kala,
		Chesta:     chesta,
		Naisargika: naisargika,
		Drik:       drik,
		Total:      total,
		Required:   required,
		Category:   categorize(total, required),
	}, nil
}

// ComputeAll computes Shadbala for all seven strength-planets.
func ComputeAll(ctx context.Context, handle *ephemeris.Handle, ch *chart.Chart) (map[tables.Planet]Result, error) {
	out := make(map[tables.Planet]Result, len(tables.SevenPlanets))
	for _, p := range tables.SevenPlanets {
		r, err := Compute(ctx, handle, ch, p)
		if err != nil {
			return nil, err
		}
		out[p] = r
	}
	return out, nil
}
