package transit

import (
	"context"
	"time"

	"github.com/parashari-jyotish/jyotish/angles"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/tables"
)

// eventPrecision is the binary search's termination window: spec.md §4.9
// mandates bracketing sign-changes and aspect-exactness to at most one
// hour, never a constant-degrees/day approximation of the planet's motion.
const eventPrecision = time.Hour

// maxEventIterations bounds the bracket-halving loop; one hour out of a
// multi-day coarse step converges long before this cap.
const maxEventIterations = 50

// SignEntry is a detected sign ingress: the planet reached toSign at
// (approximately) Time, bracketed to within one hour.
type SignEntry struct {
	Planet  tables.Planet
	FromSign int
	ToSign  int
	Time    time.Time
}

// ScanSignEntries samples p's longitude every coarseStep across
// [from, to], and for each consecutive sample pair whose sign differs,
// binary-searches the bracket down to eventPrecision to locate the
// ingress instant. This never assumes a constant degrees/day rate — every
// sample and every bisection step re-queries the ephemeris, so retrograde
// loops and variable speed are handled transparently as long as coarseStep
// is short enough that at most one ingress falls inside any single bracket.
func ScanSignEntries(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, from, to time.Time, coarseStep time.Duration) ([]SignEntry, error) {
	if coarseStep <= 0 {
		return nil, jyerr.Newf(jyerr.InvalidInput, "transit.ScanSignEntries", "coarseStep must be positive")
	}
	var entries []SignEntry

	prevT := from
	prevLong, err := longitudeAt(ctx, handle, p, prevT)
	if err != nil {
		return nil, err
	}
	prevSign := angles.Sign(prevLong)

	for t := from.Add(coarseStep); !t.After(to); t = t.Add(coarseStep) {
		select {
		case <-ctx.Done():
			return nil, jyerr.New(jyerr.Cancelled, "transit.ScanSignEntries", ctx.Err())
		default:
		}
		long, err := longitudeAt(ctx, handle, p, t)
		if err != nil {
			return nil, err
		}
		sign := angles.Sign(long)
		if sign != prevSign {
			entryTime, toSign, err := bisectSignChange(ctx, handle, p, prevT, t, prevSign)
			if err != nil {
				return nil, err
			}
			entries = append(entries, SignEntry{Planet: p, FromSign: prevSign, ToSign: toSign, Time: entryTime})
			prevSign = toSign
		}
		prevT, prevLong = t, long
		_ = prevLong
	}
	return entries, nil
}

// bisectSignChange halves [lo, hi] — known to bracket exactly one sign
// change away from fromSign — until the window is at most eventPrecision
// or maxEventIterations is reached, returning the ingress instant and the
// sign found just past it.
func bisectSignChange(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, lo, hi time.Time, fromSign int) (time.Time, int, error) {
	for i := 0; i < maxEventIterations; i++ {
		if hi.Sub(lo) <= eventPrecision {
			break
		}
		mid := lo.Add(hi.Sub(lo) / 2)
		long, err := longitudeAt(ctx, handle, p, mid)
		if err != nil {
			return time.Time{}, 0, err
		}
		if angles.Sign(long) == fromSign {
			lo = mid
		} else {
			hi = mid
		}
	}
	long, err := longitudeAt(ctx, handle, p, hi)
	if err != nil {
		return time.Time{}, 0, err
	}
	return hi, angles.Sign(long), nil
}

// AspectExactness is a detected instant where transiting p reaches exact
// aspect to a fixed natal longitude.
type AspectExactness struct {
	Planet    tables.Planet
	Time      time.Time
	Longitude float64
}

// aspectGap returns the signed shortest arc from (natalLongitude +
// aspectOffset) to p's longitude at t; its zero crossing is exact aspect.
func aspectGap(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, t time.Time, natalLongitude, aspectOffset float64) (float64, error) {
	long, err := longitudeAt(ctx, handle, p, t)
	if err != nil {
		return 0, err
	}
	target := angles.Normalize(natalLongitude + aspectOffset)
	return angles.ShortestArc(target, long), nil
}

// ScanAspectExactness samples p's aspect gap to natalLongitude+aspectOffset
// every coarseStep across [from, to] and binary-searches each sign change
// in the gap down to eventPrecision, the same bracketing discipline
// ScanSignEntries uses.
func ScanAspectExactness(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, natalLongitude, aspectOffset float64, from, to time.Time, coarseStep time.Duration) ([]AspectExactness, error) {
	if coarseStep <= 0 {
		return nil, jyerr.Newf(jyerr.InvalidInput, "transit.ScanAspectExactness", "coarseStep must be positive")
	}
	var hits []AspectExactness

	prevT := from
	prevGap, err := aspectGap(ctx, handle, p, prevT, natalLongitude, aspectOffset)
	if err != nil {
		return nil, err
	}

	for t := from.Add(coarseStep); !t.After(to); t = t.Add(coarseStep) {
		gap, err := aspectGap(ctx, handle, p, t, natalLongitude, aspectOffset)
		if err != nil {
			return nil, err
		}
		// A flip across the +180/-180 wrap (the opposite point) is not a crossing.
		if (gap >= 0) != (prevGap >= 0) && gap-prevGap < 180 && prevGap-gap < 180 {
			exact, err := bisectAspectCrossing(ctx, handle, p, natalLongitude, aspectOffset, prevT, t)
			if err != nil {
				return nil, err
			}
			long, err := longitudeAt(ctx, handle, p, exact)
			if err != nil {
				return nil, err
			}
			hits = append(hits, AspectExactness{Planet: p, Time: exact, Longitude: long})
		}
		prevT, prevGap = t, gap
	}
	return hits, nil
}

func bisectAspectCrossing(ctx context.Context, handle *ephemeris.Handle, p tables.Planet, natalLongitude, aspectOffset float64, lo, hi time.Time) (time.Time, error) {
	loGap, err := aspectGap(ctx, handle, p, lo, natalLongitude, aspectOffset)
	if err != nil {
		return time.Time{}, err
	}
	for i := 0; i < maxEventIterations; i++ {
		if hi.Sub(lo) <= eventPrecision {
			break
		}
		mid := lo.Add(hi.Sub(lo) / 2)
		midGap, err := aspectGap(ctx, handle, p, mid, natalLongitude, aspectOffset)
		if err != nil {
			return time.Time{}, err
		}
		if (midGap >= 0) == (loGap >= 0) {
			lo = mid
			loGap = midGap
		} else {
			hi = mid
		}
	}
	return lo.Add(hi.Sub(lo) / 2), nil
}
