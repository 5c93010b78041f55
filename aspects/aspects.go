// Package aspects implements the Graha Drishti (planet-to-planet) and
// Rashi Drishti (Jaimini sign-to-sign) aspect engines.
package aspects

import (
	"context"
	"math"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
)

// Type identifies one of the seven Graha Drishti offsets.
type Type int

const (
	Aspect3rd Type = iota
	Aspect4th
	Aspect5th
	Aspect7th
	Aspect8th
	Aspect9th
	Aspect10th
)

var aspectOffset = map[Type]float64{
	Aspect3rd:  60,
	Aspect4th:  90,
	Aspect5th:  120,
	Aspect7th:  180,
	Aspect8th:  210,
	Aspect9th:  240,
	Aspect10th: 270,
}

// defaultOrb gives the orb (in degrees) within which an aspect is in
// effect; the full 7th aspect is given a wider orb than the special
// aspects, matching the general Western-orb convention this engine
// layers onto the classical whole-sign drishti rule.
var defaultOrb = map[Type]float64{
	Aspect3rd:  6,
	Aspect4th:  6,
	Aspect5th:  6,
	Aspect7th:  8,
	Aspect8th:  6,
	Aspect9th:  6,
	Aspect10th: 6,
}

// specialAspects lists the extra offsets each of the three special
// aspecting planets contributes beyond the universal 7th.
var specialAspects = map[tables.Planet][]Type{
	tables.Mars:    {Aspect4th, Aspect8th},
	tables.Jupiter: {Aspect5th, Aspect9th},
	tables.Saturn:  {Aspect3rd, Aspect10th},
}

// AspectInfo is a single in-orb Graha Drishti from one planet to another.
type AspectInfo struct {
	Aspecting tables.Planet
	Aspected  tables.Planet
	Type      Type
	OrbNow    float64
	Strength  float64
	Applying  bool
}

func typesFor(p tables.Planet) []Type {
	types := []Type{Aspect7th}
	return append(types, specialAspects[p]...)
}

// GrahaDrishti enumerates every in-orb aspect among a chart's positions.
func GrahaDrishti(ctx context.Context, c *chart.Chart) []AspectInfo {
	observer := observability.Observer()
	_, span := observer.CreateSpan(ctx, "aspects.GrahaDrishti")
	defer span.End()

	var out []AspectInfo
	for aspecting, aPos := range c.Positions {
		for _, t := range typesFor(aspecting) {
			aspectLong := angles.Normalize(aPos.Longitude + aspectOffset[t])
			orbMax := defaultOrb[t]
			for aspected, bPos := range c.Positions {
				if aspected == aspecting {
					continue
				}
				gap := angles.ShortestArc(aspectLong, bPos.Longitude)
				if math.Abs(gap) > orbMax {
					continue
				}
				relSpeed := aPos.Speed - bPos.Speed
				applying := gap*relSpeed > 0
				out = append(out, AspectInfo{
					Aspecting: aspecting,
					Aspected:  aspected,
					Type:      t,
					OrbNow:    gap,
					Strength:  1 - math.Abs(gap)/orbMax,
					Applying:  applying,
				})
			}
		}
	}
	return out
}

// RashiDrishti reports whether sign a casts a Jaimini sign aspect on
// sign b: movable signs aspect all fixed signs except the immediately
// following one, fixed signs aspect all movable signs except the
// immediately preceding one, and dual signs mutually aspect each other.
func RashiDrishti(a, b int) bool {
	if a == b {
		return false
	}
	qa := tables.SignQualityOf(a)
	qb := tables.SignQualityOf(b)
	switch {
	case qa == tables.Movable && qb == tables.Fixed:
		return b != (a+1)%12
	case qa == tables.Fixed && qb == tables.Movable:
		return b != (a+11)%12
	case qa == tables.Dual && qb == tables.Dual:
		return true
	default:
		return false
	}
}
