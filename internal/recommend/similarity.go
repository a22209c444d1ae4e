package recommend

import (
	"sort"

	"github.com/cardmatch-ai/cardmatch/internal/textindex"
)

// scoreCatalog projects the query into both spaces, scores every card, and
// returns matches sorted by combined similarity descending. The sort is
// stable, so ties keep catalog order.
func (e *Engine) scoreCatalog(query string) []*match {
	descQuery, _ := e.descSpace.Project(query)
	reviewQuery, _ := e.reviewSpace.Project(query)

	descSims := e.descSpace.Similarities(descQuery)
	reviewSims := e.reviewSpace.Similarities(reviewQuery)

	matches := make([]*match, e.store.Len())
	for i := range matches {
		combined := DescriptionWeight*descSims[i] + ReviewWeight*reviewSims[i]
		matches[i] = &match{
			index:       i,
			descSim:     descSims[i],
			reviewSim:   reviewSims[i],
			combinedSim: combined,
			current:     combined,
			topReviews:  e.topReviews(i, reviewQuery),
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].combinedSim > matches[b].combinedSim
	})
	return matches
}

// topReviews scores each of a card's raw reviews against the query's
// review-space vector and keeps the best few as supporting evidence.
// Reviews that fail to vectorize are skipped, not errors.
func (e *Engine) topReviews(cardIndex int, reviewQuery []float64) []ReviewSnippet {
	reviews := e.store.Card(cardIndex).UserReviews
	if len(reviews) == 0 {
		return []ReviewSnippet{}
	}

	scored := make([]ReviewSnippet, 0, len(reviews))
	for _, text := range reviews {
		vec, ok := e.reviewSpace.Project(text)
		if !ok {
			continue
		}
		scored = append(scored, ReviewSnippet{
			Text:  text,
			Score: textindex.Cosine(reviewQuery, vec),
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	if len(scored) > TopReviewCount {
		scored = scored[:TopReviewCount]
	}
	return scored
}
