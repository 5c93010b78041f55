// Package facade is the single entry point this module exposes: every
// other package is wired together here behind one handle owner, per
// spec.md §6. The Facade owns the *ephemeris.Handle exclusively and lends
// it by borrow into each call; every method is a pure function of its
// inputs plus that shared, already-open handle, and keeps no state of
// its own between calls.
package facade

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/parashari-jyotish/jyotish/ashtakavarga"
	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/config"
	"github.com/parashari-jyotish/jyotish/dasha"
	"github.com/parashari-jyotish/jyotish/divisional"
	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/jaimini"
	"github.com/parashari-jyotish/jyotish/jyerr"
	"github.com/parashari-jyotish/jyotish/kp"
	"github.com/parashari-jyotish/jyotish/log"
	"github.com/parashari-jyotish/jyotish/muhurta"
	"github.com/parashari-jyotish/jyotish/observability"
	"github.com/parashari-jyotish/jyotish/panchanga"
	"github.com/parashari-jyotish/jyotish/shadbala"
	"github.com/parashari-jyotish/jyotish/tables"
	"github.com/parashari-jyotish/jyotish/transit"
)

// Facade is the module's sole public surface. Construct one per
// application lifetime (or per request, if the embedding service prefers
// short-lived handles) and call its methods; nothing here is safe to use
// after Close.
type Facade struct {
	handle *ephemeris.Handle
}

// New wraps an already-constructed provider and cache into a Facade. The
// caller picks the provider (a live Swiss-Ephemeris-style implementation
// or a test double) and the cache (ephemeris.NewLRUCache for in-process
// use, cache.RedisCache to share one ephemeris cache across processes, or
// nil for ephemeris.NewNoOpCache); retryPolicy may be nil for the
// handle's default backoff.
func New(provider ephemeris.Provider, cache ephemeris.Cache, retryPolicy backoff.BackOff) *Facade {
	return &Facade{handle: ephemeris.NewHandle(provider, cache, retryPolicy)}
}

// NewWithHandle wraps an already-constructed handle directly, for callers
// that need to share one handle across multiple Facade instances.
func NewWithHandle(handle *ephemeris.Handle) *Facade {
	return &Facade{handle: handle}
}

// Close releases the underlying ephemeris handle's resources.
func (f *Facade) Close() error {
	return f.handle.Close()
}

// BuildChart constructs the natal (or any other instant's) chart for ut at
// loc under flags. Most Facade methods that need a chart take one of these
// rather than rebuilding it, so a caller computing several derivations for
// one birth pays the ephemeris round trip once; Panchanga, TithiEnd and KP
// build their own chart from ut and loc.
func (f *Facade) BuildChart(ctx context.Context, ut time.Time, loc chart.Location, flags config.CalculationFlags) (*chart.Chart, error) {
	return chart.Build(ctx, f.handle, ut, loc, flags)
}

// Divisional projects an already-built chart into one of the sixteen
// varga charts.
func (f *Facade) Divisional(ctx context.Context, ch *chart.Chart, t divisional.Type) (*chart.Chart, error) {
	return divisional.Project(ctx, ch, t)
}

// Panchanga computes the five-limbed Panchanga (Tithi, Yoga, Karana, Vara,
// Nakshatra) for ut at loc. It builds its own chart internally under
// default flags since only Sun/Moon longitudes and sunrise bracketing are
// needed, not a caller-supplied ascendant or house system.
func (f *Facade) Panchanga(ctx context.Context, ut time.Time, loc chart.Location) (*panchanga.Panchanga, error) {
	ch, err := f.BuildChart(ctx, ut, loc, config.DefaultFlags())
	if err != nil {
		return nil, err
	}
	return panchanga.Compute(ctx, f.handle, ch)
}

// TithiEnd locates the instant the tithi active at ut hands over to the
// next one, accurate to accuracySeconds (clamped to at least one second).
func (f *Facade) TithiEnd(ctx context.Context, ut time.Time, loc chart.Location, accuracySeconds float64) (time.Time, error) {
	ch, err := f.BuildChart(ctx, ut, loc, config.DefaultFlags())
	if err != nil {
		return time.Time{}, err
	}
	current, _ := panchanga.TithiOf(ch.Positions[tables.Sun].Longitude, ch.Positions[tables.Moon].Longitude)
	next := current%30 + 1

	accuracy := time.Duration(accuracySeconds * float64(time.Second))
	if accuracy < time.Second {
		accuracy = time.Second
	}
	return panchanga.TithiJunction(ctx, f.handle, ut, next, accuracy)
}

// Shadbala computes the six-fold strength breakdown for every traditional
// planet in ch.
func (f *Facade) Shadbala(ctx context.Context, ch *chart.Chart) (map[tables.Planet]shadbala.Result, error) {
	return shadbala.ComputeAll(ctx, f.handle, ch)
}

// AshtakavargaResult bundles a subject's raw bindu row with both
// classical reductions, since callers almost always want all three
// together rather than recomputing Trikona/Ekadhipati by hand.
type AshtakavargaResult struct {
	Subject           tables.Planet
	Bhinnashtakavarga [12]int
	TrikonaReduced    [12]int
	FullyReduced      [12]int
}

// Ashtakavarga computes subject's Bhinnashtakavarga row together with its
// Trikona Shodhana and fully-reduced (Trikona then Ekadhipati) forms.
func (f *Facade) Ashtakavarga(ctx context.Context, ch *chart.Chart, subject tables.Planet) AshtakavargaResult {
	bav := ashtakavarga.Bhinnashtakavarga(ctx, ch, subject)
	trikona := ashtakavarga.TrikonaShodhana(bav)
	return AshtakavargaResult{
		Subject:           subject,
		Bhinnashtakavarga: bav,
		TrikonaReduced:    trikona,
		FullyReduced:      ashtakavarga.EkadhipatiShodhana(trikona),
	}
}

// Sarvashtakavarga sums Bhinnashtakavarga across the seven planetary
// subjects.
func (f *Facade) Sarvashtakavarga(ctx context.Context, ch *chart.Chart) [12]int {
	return ashtakavarga.Sarvashtakavarga(ctx, ch)
}

// KPResult bundles every traditional planet's KP decomposition and ABCD
// significator grouping for one chart.
type KPResult struct {
	Positions     map[tables.Planet]kp.Position
	Significators map[tables.Planet]kp.Significators
}

// KP rebuilds ch's ascendant and planetary positions under the requested
// KP ayanamsa (new VP291 or the legacy offset) and returns every
// traditional planet's sub-lord decomposition and significator grouping
// against that rebuilt chart.
func (f *Facade) KP(ctx context.Context, ut time.Time, loc chart.Location, newAyanamsa bool) (*KPResult, error) {
	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "facade.KP")
	defer span.End()

	flags := config.DefaultFlags()
	if newAyanamsa {
		flags.SiderealMode = config.KPNewAyanamsa
	} else {
		flags.SiderealMode = config.KPOldAyanamsa
	}
	ch, err := f.BuildChart(ctx, ut, loc, flags)
	if err != nil {
		return nil, err
	}

	planets := append([]tables.Planet{}, tables.SevenPlanets...)
	positions := make(map[tables.Planet]kp.Position, len(planets))
	significators := make(map[tables.Planet]kp.Significators, len(planets))
	for _, p := range planets {
		pp, ok := ch.Positions[p]
		if !ok {
			continue
		}
		positions[p] = kp.Decompose(pp.Longitude)
		significators[p] = kp.ComputeSignificators(ch, p)
	}
	log.Logger().DebugContext(ctx, "kp computed", "new_ayanamsa", newAyanamsa, "planets", len(positions))
	return &KPResult{Positions: positions, Significators: significators}, nil
}

// Vimshottari builds the full Vimshottari mahadasha tree anchored on ch's
// natal Moon, using yearLengthDays to convert lord-years into elapsed
// time (config.CalculationFlags.VimshottariYearLength for the usual
// 365.25-day year, or config.SavanaVimshottariYearLength for the Savana
// 360-day convention).
func (f *Facade) Vimshottari(ch *chart.Chart, yearLengthDays float64) []dasha.Period {
	moon := ch.Positions[tables.Moon]
	return dasha.Vimshottari(ch.Timestamp, moon.Longitude, yearLengthDays)
}

// Yogini builds the full 36-year Yogini dasha tree anchored on ch's natal
// Moon.
func (f *Facade) Yogini(ch *chart.Chart) []dasha.YoginiPeriod {
	moon := ch.Positions[tables.Moon]
	return dasha.Yogini(ch.Timestamp, moon.Longitude)
}

// Chara builds the full Jaimini Chara dasha tree anchored on ch's
// ascendant.
func (f *Facade) Chara(ch *chart.Chart) []dasha.CharaPeriod {
	return dasha.Chara(ch, ch.Timestamp)
}

// SpecialTransits bundles current planetary transit positions with the
// Sade Sati, Dhaiya, and Panchak verdicts for natal at the instant t.
type SpecialTransits struct {
	Positions map[tables.Planet]transit.Position
	SadeSati  transit.SadeSatiPhase
	Active    bool
	Dhaiya    bool
	Ashtama   bool
	Panchak   transit.PanchakStatus
}

// SpecialTransits evaluates every current planetary position against
// natal, plus the three Moon/Saturn special-transit verdicts (Sade Sati,
// Dhaiya, Panchak) at instant t.
func (f *Facade) SpecialTransits(ctx context.Context, natal *chart.Chart, t time.Time) (*SpecialTransits, error) {
	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "facade.SpecialTransits")
	defer span.End()

	positions, err := transit.Current(ctx, f.handle, natal, t)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	jd := f.handle.JulianDay(t)
	moonPos, err := f.handle.Position(ctx, jd, tables.Moon)
	if err != nil {
		span.RecordError(err)
		return nil, jyerr.New(jyerr.EphemerisUnavailable, "facade.SpecialTransits", err)
	}
	saturn := positions[tables.Saturn]
	moon := positions[tables.Moon]

	phase, active, dhaiya, ashtama, panchak := transit.AtChart(natal, saturn.Sign, moon.Longitude, moonPos.Speed)
	log.Logger().DebugContext(ctx, "special transits evaluated", "sade_sati_active", active, "dhaiya", dhaiya)
	return &SpecialTransits{
		Positions: positions,
		SadeSati:  phase,
		Active:    active,
		Dhaiya:    dhaiya,
		Ashtama:   ashtama,
		Panchak:   panchak,
	}, nil
}

// Muhurta bundles every time-division service (Hora, Choghadiya,
// inauspicious slots, Abhijit/Brahma muhurta, Upagraha points) for one
// civil day window.
type Muhurta struct {
	HoraIndex       int
	HoraLord        tables.Planet
	ChoghadiyaIndex int
	ChoghadiyaType  tables.ChoghadiyaType
	Daytime         bool
	RahukalamStart  time.Time
	RahukalamEnd    time.Time
	GulikalamStart  time.Time
	GulikalamEnd    time.Time
	YamagandamStart time.Time
	YamagandamEnd   time.Time
	AbhijitStart    time.Time
	AbhijitEnd      time.Time
	BrahmaStart     time.Time
	BrahmaEnd       time.Time
	Upagraha        muhurta.Upagraha
}

// MuhurtaAt evaluates every time-division service at instant t for the
// civil day running from sunrise to nextSunrise at loc, given the Sun's
// longitude at sunrise (for the Upagraha fixed-offset chain) and the
// house system to resolve Gulika/Mandi's ascendant degree.
func (f *Facade) MuhurtaAt(ctx context.Context, t, sunrise, sunset, nextSunrise time.Time, loc chart.Location, sunLongitude float64, houseSystem ephemeris.HouseSystem) (*Muhurta, error) {
	w := muhurta.Window{Weekday: int(sunrise.Weekday()), Sunrise: sunrise, Sunset: sunset, NextSunrise: nextSunrise}

	horaIdx, horaLord, err := muhurta.CurrentHora(w, t)
	if err != nil {
		return nil, err
	}
	choghadiyaIdx, choghadiyaType, daytime, err := muhurta.CurrentChoghadiya(w, t)
	if err != nil {
		return nil, err
	}
	rahuS, rahuE := muhurta.Rahukalam(w)
	gulikaS, gulikaE := muhurta.Gulikalam(w)
	yamaS, yamaE := muhurta.Yamagandam(w)
	abhS, abhE := muhurta.AbhijitMuhurta(w)
	brahmaS, brahmaE := muhurta.BrahmaMuhurta(w)

	up, err := muhurta.ComputeUpagraha(ctx, f.handle, w, sunLongitude, loc.Latitude, loc.Longitude, houseSystem)
	if err != nil {
		return nil, err
	}

	return &Muhurta{
		HoraIndex:       horaIdx,
		HoraLord:        horaLord,
		ChoghadiyaIndex: choghadiyaIdx,
		ChoghadiyaType:  choghadiyaType,
		Daytime:         daytime,
		RahukalamStart:  rahuS,
		RahukalamEnd:    rahuE,
		GulikalamStart:  gulikaS,
		GulikalamEnd:    gulikaE,
		YamagandamStart: yamaS,
		YamagandamEnd:   yamaE,
		AbhijitStart:    abhS,
		AbhijitEnd:      abhE,
		BrahmaStart:     brahmaS,
		BrahmaEnd:       brahmaE,
		Upagraha:        up,
	}, nil
}

// Atmakaraka returns ch's soul-significator planet, among the seven
// traditional planets or the eight traditional-plus-Rahu set per karakas.
func (f *Facade) Atmakaraka(ch *chart.Chart, karakas config.AtmakarakaKarakaCount) (tables.Planet, error) {
	return jaimini.Atmakaraka(ch, karakas)
}

// Karakamsa returns the Navamsa sign housing ch's Atmakaraka.
func (f *Facade) Karakamsa(ctx context.Context, ch *chart.Chart, ak tables.Planet) (int, error) {
	return jaimini.Karakamsa(ctx, ch, ak)
}

// ArudhaPada returns the Arudha of the given house (1..12).
func (f *Facade) ArudhaPada(ch *chart.Chart, house int) int {
	return jaimini.ArudhaPada(ch, house)
}

// Upapada returns the Arudha of the 12th house.
func (f *Facade) Upapada(ch *chart.Chart) int {
	return jaimini.Upapada(ch)
}
