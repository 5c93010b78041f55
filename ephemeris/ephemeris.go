package ephemeris

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
	"go.opentelemetry.io/otel/attribute"
)

// JulianDay represents a Julian day number (UT1-agnostic; calendrical
// precision lives with the Provider implementation).
type JulianDay float64

// Position represents a celestial body's geocentric ecliptic position.
type Position struct {
	Longitude float64 // Ecliptic longitude in degrees, sidereal (ayanamsa already applied)
	Latitude  float64 // Ecliptic latitude in degrees
	Distance  float64 // Distance from Earth in AU
	Speed     float64 // Daily motion in longitude, degrees/day (negative = retrograde)
}

// HouseSystem names the cusp-placement algorithm a Houses call should use.
type HouseSystem string

const (
	WholeSignHouses HouseSystem = "whole_sign"
	PlacidusHouses  HouseSystem = "placidus"
	KochHouses      HouseSystem = "koch"
	EqualHouses     HouseSystem = "equal"
)

// AyanamsaMode names the sidereal offset convention Ayanamsa should apply.
type AyanamsaMode string

const (
	Lahiri       AyanamsaMode = "lahiri"
	KPNewAyanamsa AyanamsaMode = "kp_new"
	KPOldAyanamsa AyanamsaMode = "kp_old"
)

// HealthStatus reports the current operating state of a Provider.
type HealthStatus struct {
	Available    bool
	LastCheck    time.Time
	DataStartJD  float64
	DataEndJD    float64
	ResponseTime time.Duration
	ErrorMessage string
	Version      string
	Source       string
}

// Provider is the external ephemeris trait every calculation in this module
// is ultimately built on: ayanamsa, planetary position, house cusps, and the
// rise/set and sunrise/sunset events Panchanga and Muhurta depend on. A
// Provider is expected to do its own sidereal reduction; everything above
// this interface works entirely in sidereal longitudes.
type Provider interface {
	Ayanamsa(ctx context.Context, jd JulianDay, mode AyanamsaMode) (float64, error)
	Position(ctx context.Context, jd JulianDay, planet tables.Planet) (Position, error)
	Houses(ctx context.Context, jd JulianDay, latitude, longitude float64, system HouseSystem) ([12]float64, error)
	RiseSet(ctx context.Context, jd JulianDay, planet tables.Planet, latitude, longitude float64) (rise, set JulianDay, err error)
	SunriseSunset(ctx context.Context, jd JulianDay, latitude, longitude float64) (sunrise, sunset JulianDay, err error)
	JulianDay(t time.Time) JulianDay
	TimeFromJulianDay(jd JulianDay) time.Time

	IsAvailable(ctx context.Context) bool
	GetHealthStatus(ctx context.Context) (*HealthStatus, error)
	GetProviderName() string
	GetVersion() string
	Close() error
}

// Handle is the single coordination point every derivation package calls
// through. Spec's concurrency model treats the ephemeris source as one
// scarce, possibly-blocking resource: Handle serializes access with a mutex
// (a Provider implementation is free to be internally concurrent, but this
// module never assumes it is), wraps transient EphemerisUnavailable failures
// in an exponential backoff retry, and honors context cancellation between
// attempts so a caller's cancellation token actually stops in-flight work.
type Handle struct {
	mu       sync.Mutex
	provider Provider
	cache    Cache
	observer observability.ObserverInterface
	retry    backoff.BackOff
}

// NewHandle wires a Provider and Cache into a coordinator. retryPolicy may
// be nil, in which case a bounded exponential backoff (5 attempts, 2s max
// interval) is used.
func NewHandle(provider Provider, cache Cache, retryPolicy backoff.BackOff) *Handle {
	if cache == nil {
		cache = NewNoOpCache()
	}
	if retryPolicy == nil {
		eb := backoff.NewExponentialBackOff()
		eb.MaxInterval = 2 * time.Second
		eb.MaxElapsedTime = 10 * time.Second
		retryPolicy = eb
	}
	return &Handle{
		provider: provider,
		cache:    cache,
		observer: observability.Observer(),
		retry:    retryPolicy,
	}
}

// acquire scopes exclusive access to the underlying provider to the
// duration of fn, releasing the lock as soon as fn returns regardless of
// outcome. Every provider query (Position, Ayanamsa, Houses, RiseSet,
// SunriseSunset) funnels through here so no caller can hold the lock
// across an await boundary.
func (h *Handle) acquire(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return jyerr.New(jyerr.Cancelled, "ephemeris.Handle", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(ctx)
}

// withRetry retries fn against transient EphemerisUnavailable errors using
// the Handle's backoff policy, stopping immediately on context cancellation
// or any non-transient error kind.
func (h *Handle) withRetry(ctx context.Context, fn func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(h.retry, 4), ctx)
	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(jyerr.New(jyerr.Cancelled, "ephemeris.Handle", ctx.Err()))
		}
		var je *jyerr.Error
		if !jyerr.Is(err, jyerr.EphemerisUnavailable) {
			return backoff.Permanent(err)
		}
		_ = je
		return err
	}, policy)
}

func cacheKey(op string, jd JulianDay, extra ...interface{}) string {
	return fmt.Sprintf("%s:%f:%v", op, float64(jd), extra)
}

// Position returns the sidereal ecliptic position of planet at jd, serving
// from cache when present.
func (h *Handle) Position(ctx context.Context, jd JulianDay, planet tables.Planet) (Position, error) {
	ctx, span := h.observer.CreateSpan(ctx, "ephemeris.Handle.Position")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)), attribute.String("planet", planet.String()))

	key := cacheKey("position", jd, planet)
	if cached, found := h.cache.Get(ctx, key); found {
		if pos, ok := cached.(Position); ok {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return pos, nil
		}
	}

	var pos Position
	err := h.acquire(ctx, func(ctx context.Context) error {
		return h.withRetry(ctx, func() error {
			var err error
			pos, err = h.provider.Position(ctx, jd, planet)
			return err
		})
	})
	if err != nil {
		span.RecordError(err)
		return Position{}, jyerr.New(jyerr.EphemerisUnavailable, "ephemeris.Handle.Position", err)
	}
	h.cache.Set(ctx, key, pos, time.Hour)
	return pos, nil
}

// Positions returns positions for every requested planet in one call,
// short-circuiting on the first failure.
func (h *Handle) Positions(ctx context.Context, jd JulianDay, planets []tables.Planet) (map[tables.Planet]Position, error) {
	out := make(map[tables.Planet]Position, len(planets))
	for _, p := range planets {
		pos, err := h.Position(ctx, jd, p)
		if err != nil {
			return nil, err
		}
		out[p] = pos
	}
	return out, nil
}

// Ayanamsa returns the sidereal offset at jd under the given mode.
func (h *Handle) Ayanamsa(ctx context.Context, jd JulianDay, mode AyanamsaMode) (float64, error) {
	ctx, span := h.observer.CreateSpan(ctx, "ephemeris.Handle.Ayanamsa")
	defer span.End()

	key := cacheKey("ayanamsa", jd, mode)
	if cached, found := h.cache.Get(ctx, key); found {
		if v, ok := cached.(float64); ok {
			return v, nil
		}
	}

	var value float64
	err := h.acquire(ctx, func(ctx context.Context) error {
		return h.withRetry(ctx, func() error {
			var err error
			value, err = h.provider.Ayanamsa(ctx, jd, mode)
			return err
		})
	})
	if err != nil {
		span.RecordError(err)
		return 0, jyerr.New(jyerr.EphemerisUnavailable, "ephemeris.Handle.Ayanamsa", err)
	}
	h.cache.Set(ctx, key, value, 24*time.Hour)
	return value, nil
}

// Houses returns the 12 sidereal house-cusp longitudes for the given system.
func (h *Handle) Houses(ctx context.Context, jd JulianDay, latitude, longitude float64, system HouseSystem) ([12]float64, error) {
	ctx, span := h.observer.CreateSpan(ctx, "ephemeris.Handle.Houses")
	defer span.End()

	var cusps [12]float64
	err := h.acquire(ctx, func(ctx context.Context) error {
		return h.withRetry(ctx, func() error {
			var err error
			cusps, err = h.provider.Houses(ctx, jd, latitude, longitude, system)
			return err
		})
	})
	if err != nil {
		span.RecordError(err)
		return cusps, jyerr.New(jyerr.EphemerisUnavailable, "ephemeris.Handle.Houses", err)
	}
	return cusps, nil
}

// RiseSet returns the rise and set Julian days of planet nearest jd.
func (h *Handle) RiseSet(ctx context.Context, jd JulianDay, planet tables.Planet, latitude, longitude float64) (rise, set JulianDay, err error) {
	ctx, span := h.observer.CreateSpan(ctx, "ephemeris.Handle.RiseSet")
	defer span.End()

	err = h.acquire(ctx, func(ctx context.Context) error {
		return h.withRetry(ctx, func() error {
			var e error
			rise, set, e = h.provider.RiseSet(ctx, jd, planet, latitude, longitude)
			return e
		})
	})
	if err != nil {
		span.RecordError(err)
		return 0, 0, jyerr.New(jyerr.EphemerisUnavailable, "ephemeris.Handle.RiseSet", err)
	}
	return rise, set, nil
}

// SunriseSunset returns sunrise and sunset Julian days for the civil day
// containing jd at the given location.
func (h *Handle) SunriseSunset(ctx context.Context, jd JulianDay, latitude, longitude float64) (sunrise, sunset JulianDay, err error) {
	ctx, span := h.observer.CreateSpan(ctx, "ephemeris.Handle.SunriseSunset")
	defer span.End()

	key := cacheKey("sunrise_sunset", jd, latitude, longitude)
	if cached, found := h.cache.Get(ctx, key); found {
		if pair, ok := cached.([2]JulianDay); ok {
			return pair[0], pair[1], nil
		}
	}

	err = h.acquire(ctx, func(ctx context.Context) error {
		return h.withRetry(ctx, func() error {
			var e error
			sunrise, sunset, e = h.provider.SunriseSunset(ctx, jd, latitude, longitude)
			return e
		})
	})
	if err != nil {
		span.RecordError(err)
		return 0, 0, jyerr.New(jyerr.EphemerisUnavailable, "ephemeris.Handle.SunriseSunset", err)
	}
	h.cache.Set(ctx, key, [2]JulianDay{sunrise, sunset}, 12*time.Hour)
	return sunrise, sunset, nil
}

// JulianDay delegates calendrical conversion to the provider.
func (h *Handle) JulianDay(t time.Time) JulianDay { return h.provider.JulianDay(t) }

// TimeFromJulianDay delegates the inverse conversion to the provider.
func (h *Handle) TimeFromJulianDay(jd JulianDay) time.Time { return h.provider.TimeFromJulianDay(jd) }

// GetHealthStatus reports the underlying provider's health.
func (h *Handle) GetHealthStatus(ctx context.Context) (*HealthStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.provider.GetHealthStatus(ctx)
}

// Close releases the provider and cache.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	if err := h.provider.Close(); err != nil {
		errs = append(errs, err)
	}
	if h.cache != nil {
		if err := h.cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("ephemeris handle close: %v", errs)
	}
	return nil
}

// TimeToJulianDay converts a civil time.Time to a Julian day number using
// the standard Gregorian algorithm; used as the default JulianDay
// implementation for Provider implementations that have no calendar
// peculiarities of their own.
func TimeToJulianDay(t time.Time) JulianDay {
	utc := t.UTC()
	year, month, day := utc.Year(), int(utc.Month()), utc.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5

	hour := float64(utc.Hour())
	minute := float64(utc.Minute())
	second := float64(utc.Second())
	jd += (hour-12.0)/24.0 + minute/1440.0 + second/86400.0

	return JulianDay(jd)
}

// JulianDayToTime converts a Julian day number back to a civil time.Time
// (UTC), the inverse of TimeToJulianDay.
func JulianDayToTime(jd JulianDay) time.Time {
	z := math.Floor(float64(jd) + 0.5)
	f := float64(jd) + 0.5 - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e) + f)
	var month int
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}

	var year int
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}

	hours := f * 24
	hour := int(hours)
	minutes := (hours - float64(hour)) * 60
	minute := int(minutes)
	seconds := (minutes - float64(minute)) * 60
	second := int(seconds)
	nanosecond := int((seconds - float64(second)) * 1e9)

	return time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, time.UTC)
}

// NormalizeAngle normalizes an angle to the range [0, 360).
func NormalizeAngle(angle float64) float64 {
	result := math.Mod(angle, 360.0)
	if result < 0 {
		result += 360.0
	}
	return result
}
