package dasha

import (
	"time"

	"github.com/parashari-jyotish/jyotish/chart"
	"github.com/parashari-jyotish/jyotish/tables"
)

// CharaPeriod is one node of a Jaimini Chara Dasha tree: rashi dashas are
// keyed by sign, not by planet, since the period belongs to the rasi
// itself rather than to its lord.
type CharaPeriod struct {
	Sign       int
	SignName   string
	Lord       tables.Planet
	Start      time.Time
	End        time.Time
	Level      int
	SubPeriods []CharaPeriod
}

// charaCoLord gives Scorpio's and Aquarius's Jaimini co-ruler (Ketu and
// Rahu respectively), used to resolve the dual-owned-sign ambiguity.
func charaCoLord(sign int) (tables.Planet, bool) {
	switch sign {
	case 7: // Scorpio
		return tables.Ketu, true
	case 10: // Aquarius
		return tables.Rahu, true
	default:
		return 0, false
	}
}

// signDistance counts from sign to target, forward if sign is odd (per
// tables.IsOddSign's Aries-is-odd convention) and backward otherwise,
// inclusive of the starting sign, giving a 1..12 count.
func signDistance(sign, target int) int {
	if tables.IsOddSign(sign) {
		return mod12(target-sign) + 1
	}
	return mod12(sign-target) + 1
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}

// charaDurationFor counts the house-distance from sign to lord's natal
// occupied sign and converts it to years: count-1, except a lord found in
// its own sign (count == 1) scores the full 12-year duration.
func charaDurationFor(ch *chart.Chart, sign int, lord tables.Planet) float64 {
	pp, ok := ch.Positions[lord]
	if !ok {
		return 0
	}
	count := signDistance(sign, pp.Sign)
	if count == 1 {
		return 12
	}
	return float64(count - 1)
}

// charaDuration resolves sign's ruling planet and Chara Dasha duration,
// picking among Scorpio/Aquarius's two candidate rulers whichever yields a
// non-zero count-1 (falling back to the primary lord if both are zero,
// i.e. both occupy the sign). A zero count-1 is the own-sign case that
// charaDurationFor scores as 12.
func charaDuration(ch *chart.Chart, sign int) (tables.Planet, float64) {
	primary := tables.SignLord[sign]
	primaryYears := charaDurationFor(ch, sign, primary)

	if coLord, ok := charaCoLord(sign); ok {
		coYears := charaDurationFor(ch, sign, coLord)
		primaryZero := primaryYears == 0 || primaryYears == 12
		coZero := coYears == 0 || coYears == 12
		if primaryZero && !coZero {
			return coLord, coYears
		}
	}
	return primary, primaryYears
}

// charaOrder returns the 12 signs in Chara Dasha traversal order, starting
// at ascSign, proceeding forward if ascSign is odd and backward otherwise.
func charaOrder(ascSign int) []int {
	order := make([]int, 12)
	for i := 0; i < 12; i++ {
		if tables.IsOddSign(ascSign) {
			order[i] = mod12(ascSign + i)
		} else {
			order[i] = mod12(ascSign - i)
		}
	}
	return order
}

func charaSubdivide(ch *chart.Chart, sign int, start, end time.Time, level int) []CharaPeriod {
	if level > maxLevel {
		return nil
	}
	signs := charaOrder(sign)
	span := end.Sub(start) / 12
	var periods []CharaPeriod
	cursor := start
	for i, s := range signs {
		lord, _ := charaDuration(ch, s)
		periodEnd := cursor.Add(span)
		if i == 11 {
			periodEnd = end
		}
		p := CharaPeriod{
			Sign:     s,
			SignName: tables.SignName[s],
			Lord:     lord,
			Start:    cursor,
			End:      periodEnd,
			Level:    level,
		}
		if level < maxLevel {
			p.SubPeriods = charaSubdivide(ch, s, cursor, periodEnd, level+1)
		}
		periods = append(periods, p)
		cursor = periodEnd
	}
	return periods
}

// Chara builds the Jaimini Chara Dasha tree starting at birth, each
// mahadasha's length in years taken from charaDuration, sequenced per
// charaOrder starting at the natal ascendant. Antardashas within each
// mahadasha divide its span into twelve equal parts, ordered by the same
// parity rule anchored at the mahadasha's own sign.
func Chara(ch *chart.Chart, birth time.Time) []CharaPeriod {
	ascSign := ch.AscendantSign()
	order := charaOrder(ascSign)

	var periods []CharaPeriod
	cursor := birth
	for _, s := range order {
		lord, years := charaDuration(ch, s)
		end := cursor.Add(time.Duration(years * float64(solarYear)))
		p := CharaPeriod{
			Sign:     s,
			SignName: tables.SignName[s],
			Lord:     lord,
			Start:    cursor,
			End:      end,
			Level:    0,
		}
		p.SubPeriods = charaSubdivide(ch, s, cursor, end, 1)
		periods = append(periods, p)
		cursor = end
	}
	return periods
}

// CharaAt returns the chain of active Chara periods at t.
func CharaAt(root []CharaPeriod, t time.Time) []CharaPeriod {
	var chain []CharaPeriod
	periods := root
	for {
		found := false
		for _, p := range periods {
			if !t.Before(p.Start) && t.Before(p.End) {
				chain = append(chain, p)
				periods = p.SubPeriods
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}
