package recommend

// assemble slices the filtered, sorted, floored match list into the
// requested page and shapes the output records. Total reflects the count
// after filtering and the relevance floor.
func (e *Engine) assemble(matches []*match, offset, limit int) *Response {
	total := len(matches)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	recs := make([]Recommendation, 0, end-start)
	for _, m := range matches[start:end] {
		recs = append(recs, e.buildRecord(m))
	}

	return &Response{
		Recommendations: recs,
		Pagination: Pagination{
			Offset:  offset,
			Limit:   limit,
			Total:   total,
			HasMore: offset+limit < total,
		},
	}
}

func (e *Engine) buildRecord(m *match) Recommendation {
	card := e.store.Card(m.index)

	explains := m.explains
	if explains == nil {
		explains = []Explanation{}
	}

	return Recommendation{
		Title:                 card.Name,
		Category:              card.Category,
		AnnualFee:             card.AnnualFee,
		ForeignTransactionFee: card.ForeignTransactionFee,
		RewardRate:            card.RewardRate,
		IntroAPR:              card.IntroAPR,
		BonusOffer:            card.BonusOffer,
		ImageURL:              card.ImageURL,
		SimilarityScore:       m.current,
		MatchPercentage:       matchPercentage(m.current),
		Reviews:               m.topReviews,
		AssociatedAirlines:    card.AssociatedAirlines,
		IncomeTier:            card.IncomeTier,
		TravelValueScore:      card.TravelValueScore,
		Explanations:          explains,
		DetailedMetrics: DetailedMetrics{
			DescriptionSimilarity: m.descSim,
			ReviewSimilarity:      m.reviewSim,
			CombinedSimilarity:    m.combinedSim,
			DescriptionWeight:     DescriptionWeight,
			ReviewWeight:          ReviewWeight,
			LatentDimensions:      e.descSpace.Dims(),
		},
	}
}
