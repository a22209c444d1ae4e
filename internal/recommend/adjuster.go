package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// adjust applies the user's preferences in fixed order: hard filters
// first, then soft boosts, then a re-sort and the relevance floor.
func (e *Engine) adjust(matches []*match, filters Filters) []*match {
	matches = e.filterByCreditScore(matches, filters.CreditScore)
	matches = e.filterByAnnualFee(matches, filters.AnnualFee)

	for _, m := range matches {
		e.boostAirline(m, filters.PreferredAirline)
		e.boostTravelFrequency(m, filters.TravelFrequency)
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].current > matches[b].current
	})

	// Terminal relevance gate: below-floor results disappear regardless
	// of everything above.
	kept := matches[:0]
	for _, m := range matches {
		if matchPercentage(m.current) >= MinMatchPercentage {
			kept = append(kept, m)
		}
	}
	return kept
}

// filterByCreditScore keeps cards whose score floor the user meets. An
// absent or unparseable floor keeps the card: when in doubt about a
// preference match, don't penalize the card.
func (e *Engine) filterByCreditScore(matches []*match, preference string) []*match {
	if isSentinel(preference) {
		return matches
	}
	userMin, ok := creditScoreMinimums[strings.ToLower(preference)]
	if !ok {
		e.logger.Debug().Str("preference", preference).Msg("Unknown credit score preference, skipping filter")
		return matches
	}

	kept := matches[:0]
	for _, m := range matches {
		floor := e.store.Card(m.index).MinCreditScore
		if floor == nil || userMin >= *floor {
			kept = append(kept, m)
		}
	}
	return kept
}

// filterByAnnualFee keeps cards within the user's fee tolerance. The "no"
// preference keeps only exactly-zero-fee cards; unparseable fees keep the
// card.
func (e *Engine) filterByAnnualFee(matches []*match, preference string) []*match {
	if isSentinel(preference) {
		return matches
	}
	pref := strings.ToLower(preference)
	maxFee, ok := annualFeeThresholds[pref]
	if !ok {
		e.logger.Debug().Str("preference", preference).Msg("Unknown annual fee preference, skipping filter")
		return matches
	}

	kept := matches[:0]
	for _, m := range matches {
		fee := e.store.Card(m.index).AnnualFeeAmount
		switch {
		case fee == nil:
			kept = append(kept, m)
		case pref == "no":
			if *fee == 0 {
				kept = append(kept, m)
			}
		case *fee <= maxFee:
			kept = append(kept, m)
		}
	}
	return kept
}

// boostAirline multiplies the score when the requested airline matches one
// of the card's associated airlines: 1.15 for an exact match, 1.10 for a
// substring match.
func (e *Engine) boostAirline(m *match, preference string) {
	if isSentinel(preference) {
		return
	}
	want := strings.ToLower(strings.TrimSpace(preference))
	airlines := e.store.Card(m.index).AssociatedAirlines

	for _, a := range airlines {
		if strings.EqualFold(a, want) {
			e.applyBoost(m, AirlineExactBoost, fmt.Sprintf("Directly partnered with %s", want))
			return
		}
	}
	for _, a := range airlines {
		al := strings.ToLower(a)
		if strings.Contains(al, want) || strings.Contains(want, al) {
			e.applyBoost(m, AirlinePartialBoost, fmt.Sprintf("Related to %s", want))
			return
		}
	}
}

// boostTravelFrequency multiplies the score by how well the card's travel
// orientation fits the user's travel habits.
func (e *Engine) boostTravelFrequency(m *match, preference string) {
	if isSentinel(preference) {
		return
	}

	card := e.store.Card(m.index)
	category := strings.ToLower(card.Category)
	travelOriented := card.TravelValueScore >= TravelOrientedMinScore ||
		strings.Contains(category, "travel") || strings.Contains(category, "miles")
	cashBackOriented := strings.Contains(category, "cash_back") || strings.Contains(category, "cash back")

	switch strings.ToLower(preference) {
	case "frequent":
		if travelOriented {
			e.applyBoost(m, TravelFrequentBoost, "Strong travel rewards for frequent travelers")
		} else if !cashBackOriented {
			e.applyBoost(m, TravelMarginalBoost, "General purpose card")
		}
	case "occasional":
		if travelOriented {
			e.applyBoost(m, TravelOccasionalBoost, "Travel rewards for occasional travelers")
		} else if !cashBackOriented {
			e.applyBoost(m, TravelMarginalBoost, "General purpose card")
		}
	case "rare":
		if cashBackOriented {
			e.applyBoost(m, CashBackRareBoost, "Cash back suits infrequent travelers")
		} else {
			e.applyBoost(m, TravelMarginalBoost, "Limited travel benefit for rare travelers")
		}
	default:
		e.logger.Debug().Str("preference", preference).Msg("Unknown travel frequency preference, skipping boost")
	}
}

// applyBoost multiplies the running score and records an explanation with
// the percentage impact and before/after scores.
func (e *Engine) applyBoost(m *match, factor float64, reason string) {
	before := m.current
	m.current = before * factor
	m.explains = append(m.explains, Explanation{
		Reason:      reason,
		Impact:      fmt.Sprintf("%+.0f%%", (factor-1)*100),
		ScoreBefore: before,
		ScoreAfter:  m.current,
	})
}
