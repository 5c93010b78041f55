package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/tables"
	"go.opentelemetry.io/otel/attribute"
)

// RetrogradeMotion indicates whether a planet is in retrograde motion.
type RetrogradeMotion string

const (
	MotionDirect      RetrogradeMotion = "direct"
	MotionRetrograde  RetrogradeMotion = "retrograde"
	MotionStationary  RetrogradeMotion = "stationary"
)

// StationType indicates the type of planetary station.
type StationType string

const (
	StationRetrograde StationType = "station_retrograde"
	StationDirect     StationType = "station_direct"
)

// PlanetaryStation represents a stationary point where a planet changes direction.
type PlanetaryStation struct {
	Planet      tables.Planet
	JulianDay   JulianDay
	Time        time.Time
	Longitude   float64
	StationType StationType
	Speed       float64
}

// RetrogradePeriod represents a complete retrograde loop.
type RetrogradePeriod struct {
	Planet           tables.Planet
	StartJD          JulianDay
	EndJD            JulianDay
	StartTime        time.Time
	EndTime          time.Time
	StartLongitude   float64
	EndLongitude     float64
	Duration         time.Duration
	MaxRetroDistance float64
}

// MotionAnalysis is a comprehensive snapshot of a planet's current motion.
type MotionAnalysis struct {
	JulianDay      JulianDay
	Planet         tables.Planet
	Motion         RetrogradeMotion
	Speed          float64
	Longitude      float64
	IsNearStation  bool
	NextStation    *PlanetaryStation
	CurrentPeriod  *RetrogradePeriod
	RecentStations []PlanetaryStation
}

// RetrogradeDetector detects retrograde motion and stationary points from a
// Handle's position samples. Nodes (Rahu/Ketu) are always retrograde under
// the mean-node convention and are typically excluded by callers before
// reaching here; true-node mode can legitimately report them direct.
type RetrogradeDetector struct {
	handle   *Handle
	observer observability.ObserverInterface
}

// NewRetrogradeDetector creates a new retrograde detector bound to handle.
func NewRetrogradeDetector(handle *Handle) *RetrogradeDetector {
	return &RetrogradeDetector{
		handle:   handle,
		observer: observability.Observer(),
	}
}

// DetectRetrogradeMotion determines if a planet is in retrograde motion at jd.
func (rd *RetrogradeDetector) DetectRetrogradeMotion(ctx context.Context, jd JulianDay, planet tables.Planet) (RetrogradeMotion, error) {
	ctx, span := rd.observer.CreateSpan(ctx, "retrograde.DetectRetrogradeMotion")
	defer span.End()
	span.SetAttributes(attribute.Float64("julian_day", float64(jd)), attribute.String("planet", planet.String()))

	pos, err := rd.handle.Position(ctx, jd, planet)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	const stationaryThreshold = 0.01
	var motion RetrogradeMotion
	switch {
	case math.Abs(pos.Speed) < stationaryThreshold:
		motion = MotionStationary
	case pos.Speed < 0:
		motion = MotionRetrograde
	default:
		motion = MotionDirect
	}

	span.SetAttributes(attribute.String("motion", string(motion)), attribute.Float64("speed", pos.Speed))
	return motion, nil
}

// FindPlanetaryStation finds the next stationary point for planet within
// searchDays of startJD.
func (rd *RetrogradeDetector) FindPlanetaryStation(ctx context.Context, startJD JulianDay, planet tables.Planet, searchDays int) (*PlanetaryStation, error) {
	ctx, span := rd.observer.CreateSpan(ctx, "retrograde.FindPlanetaryStation")
	defer span.End()

	const sampleInterval = 0.25
	maxSamples := int(float64(searchDays) / sampleInterval)

	pos, err := rd.handle.Position(ctx, startJD, planet)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get initial position: %w", err)
	}
	prevSpeed, prevJD := pos.Speed, startJD

	for i := 1; i < maxSamples; i++ {
		currentJD := JulianDay(float64(startJD) + float64(i)*sampleInterval)
		pos, err := rd.handle.Position(ctx, currentJD, planet)
		if err != nil {
			continue
		}

		if prevSpeed*pos.Speed < 0 || math.Abs(pos.Speed) < 0.01 {
			stationJD, err := rd.refineStation(ctx, prevJD, currentJD, planet)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}

			stationPos, err := rd.handle.Position(ctx, stationJD, planet)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}

			stationType := StationDirect
			if prevSpeed > 0 && pos.Speed < 0 {
				stationType = StationRetrograde
			}

			station := &PlanetaryStation{
				Planet:      planet,
				JulianDay:   stationJD,
				Time:        rd.handle.TimeFromJulianDay(stationJD),
				Longitude:   stationPos.Longitude,
				StationType: stationType,
				Speed:       stationPos.Speed,
			}
			span.SetAttributes(attribute.Float64("station_jd", float64(stationJD)), attribute.Bool("found", true))
			return station, nil
		}

		prevSpeed, prevJD = pos.Speed, currentJD
	}

	span.SetAttributes(attribute.Bool("found", false))
	return nil, fmt.Errorf("no station found within %d days", searchDays)
}

func (rd *RetrogradeDetector) refineStation(ctx context.Context, jd1, jd2 JulianDay, planet tables.Planet) (JulianDay, error) {
	const tolerance = 0.001
	const maxIterations = 20

	for i := 0; i < maxIterations; i++ {
		if float64(jd2-jd1) < tolerance {
			return (jd1 + jd2) / 2, nil
		}

		midJD := (jd1 + jd2) / 2
		pos, err := rd.handle.Position(ctx, midJD, planet)
		if err != nil {
			return 0, err
		}
		pos1, err := rd.handle.Position(ctx, jd1, planet)
		if err != nil {
			return 0, err
		}

		if pos1.Speed*pos.Speed < 0 {
			jd2 = midJD
		} else {
			jd1 = midJD
		}
	}
	return (jd1 + jd2) / 2, nil
}

// FindRetrogradePeriod finds the complete retrograde loop containing jd.
func (rd *RetrogradeDetector) FindRetrogradePeriod(ctx context.Context, jd JulianDay, planet tables.Planet) (*RetrogradePeriod, error) {
	ctx, span := rd.observer.CreateSpan(ctx, "retrograde.FindRetrogradePeriod")
	defer span.End()

	motion, err := rd.DetectRetrogradeMotion(ctx, jd, planet)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if motion != MotionRetrograde {
		return nil, fmt.Errorf("planet %s is not retrograde at JD %f", planet, jd)
	}

	startStation, err := rd.findStationBackward(ctx, jd, planet, 200)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to find start station: %w", err)
	}
	endStation, err := rd.findStationForward(ctx, jd, planet, 200)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to find end station: %w", err)
	}

	period := &RetrogradePeriod{
		Planet:         planet,
		StartJD:        startStation.JulianDay,
		EndJD:          endStation.JulianDay,
		StartTime:      startStation.Time,
		EndTime:        endStation.Time,
		StartLongitude: startStation.Longitude,
		EndLongitude:   endStation.Longitude,
		Duration:       endStation.Time.Sub(startStation.Time),
	}
	period.MaxRetroDistance = math.Abs(endStation.Longitude - startStation.Longitude)
	if period.MaxRetroDistance > 180 {
		period.MaxRetroDistance = 360 - period.MaxRetroDistance
	}
	return period, nil
}

func (rd *RetrogradeDetector) findStationBackward(ctx context.Context, jd JulianDay, planet tables.Planet, maxDays int) (*PlanetaryStation, error) {
	for i := 0; i < maxDays; i++ {
		searchJD := JulianDay(float64(jd) - float64(i))
		motion, err := rd.DetectRetrogradeMotion(ctx, searchJD, planet)
		if err != nil {
			continue
		}
		if motion != MotionRetrograde {
			return rd.FindPlanetaryStation(ctx, searchJD, planet, 10)
		}
	}
	return nil, fmt.Errorf("no station found in %d days backward search", maxDays)
}

func (rd *RetrogradeDetector) findStationForward(ctx context.Context, jd JulianDay, planet tables.Planet, maxDays int) (*PlanetaryStation, error) {
	for i := 0; i < maxDays; i++ {
		searchJD := JulianDay(float64(jd) + float64(i))
		motion, err := rd.DetectRetrogradeMotion(ctx, searchJD, planet)
		if err != nil {
			continue
		}
		if motion != MotionRetrograde {
			return rd.FindPlanetaryStation(ctx, searchJD, planet, 10)
		}
	}
	return nil, fmt.Errorf("no station found in %d days forward search", maxDays)
}

// AnalyzeMotion provides a comprehensive analysis of planet's current motion.
func (rd *RetrogradeDetector) AnalyzeMotion(ctx context.Context, jd JulianDay, planet tables.Planet) (*MotionAnalysis, error) {
	ctx, span := rd.observer.CreateSpan(ctx, "retrograde.AnalyzeMotion")
	defer span.End()

	motion, err := rd.DetectRetrogradeMotion(ctx, jd, planet)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	pos, err := rd.handle.Position(ctx, jd, planet)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	analysis := &MotionAnalysis{JulianDay: jd, Planet: planet, Motion: motion, Speed: pos.Speed, Longitude: pos.Longitude}
	analysis.IsNearStation = math.Abs(pos.Speed) < 0.05

	if nextStation, err := rd.FindPlanetaryStation(ctx, jd, planet, 400); err == nil {
		analysis.NextStation = nextStation
	}
	if motion == MotionRetrograde {
		if period, err := rd.FindRetrogradePeriod(ctx, jd, planet); err == nil {
			analysis.CurrentPeriod = period
		}
	}
	analysis.RecentStations = rd.findRecentStations(ctx, jd, planet, 180)
	return analysis, nil
}

func (rd *RetrogradeDetector) findRecentStations(ctx context.Context, jd JulianDay, planet tables.Planet, days int) []PlanetaryStation {
	stations := make([]PlanetaryStation, 0)
	searchJD := jd
	const chunkSize = 30
	for i := 0; i < days/chunkSize; i++ {
		searchJD = JulianDay(float64(searchJD) - float64(chunkSize))
		if station, err := rd.FindPlanetaryStation(ctx, searchJD, planet, chunkSize); err == nil && station != nil {
			stations = append(stations, *station)
		}
	}
	return stations
}

// GetRetrogradePlanets returns all of tables.SevenPlanets (excluding Sun and
// Moon, which never retrograde) currently in retrograde motion at jd.
func (rd *RetrogradeDetector) GetRetrogradePlanets(ctx context.Context, jd JulianDay) ([]tables.Planet, error) {
	ctx, span := rd.observer.CreateSpan(ctx, "retrograde.GetRetrogradePlanets")
	defer span.End()

	candidates := []tables.Planet{tables.Mars, tables.Mercury, tables.Jupiter, tables.Venus, tables.Saturn}
	result := make([]tables.Planet, 0)
	for _, p := range candidates {
		motion, err := rd.DetectRetrogradeMotion(ctx, jd, p)
		if err != nil {
			continue
		}
		if motion == MotionRetrograde {
			result = append(result, p)
		}
	}
	span.SetAttributes(attribute.Int("retrograde_count", len(result)))
	return result, nil
}
