// Package recommend implements the card matching and ranking engine:
// similarity scoring over two frozen text spaces, preference filtering and
// boosting, and result assembly.
package recommend

import (
	"errors"
	"strings"
)

// ErrNoQuery indicates an empty query string. The HTTP layer maps it to a
// 400 response; no computation happens before this check.
var ErrNoQuery = errors.New("recommend: no query provided")

// Fixed scoring constants. Description similarity outweighs review
// similarity because editorial copy is the stronger relevance signal.
const (
	DescriptionWeight = 0.7
	ReviewWeight      = 0.3

	// LatentDimensions is the truncated-SVD component count for both spaces.
	LatentDimensions = 130

	// MaxMatchPercentage caps displayed confidence; a perfect textual
	// match is never shown as 100%.
	MaxMatchPercentage = 99

	// MinMatchPercentage is the relevance floor. Results recomputing
	// below it after boosts are discarded outright.
	MinMatchPercentage = 10

	// TopReviewCount is how many supporting review snippets each result carries.
	TopReviewCount = 3

	DefaultLimit = 3
)

// Preference boost factors.
const (
	AirlineExactBoost      = 1.15
	AirlinePartialBoost    = 1.10
	TravelFrequentBoost    = 1.10
	TravelOccasionalBoost  = 1.05
	TravelMarginalBoost    = 1.01
	CashBackRareBoost      = 1.05
	TravelOrientedMinScore = 7.0
)

// Credit score preference thresholds: the minimum score a user in each
// bracket can be assumed to have.
var creditScoreMinimums = map[string]int{
	"excellent": 750,
	"good":      700,
	"fair":      650,
	"poor":      300,
}

// Annual fee preference thresholds: the maximum acceptable fee.
var annualFeeThresholds = map[string]int{
	"no":        0,
	"up-to-100": 100,
	"up-to-250": 250,
	"up-to-500": 500,
	"up-to-700": 700,
}

// Request carries one recommendation query.
type Request struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
	Offset  int     `json:"offset"`
	Limit   int     `json:"limit"`
}

// Filters holds the structured user preferences. Empty or sentinel values
// disable the corresponding filter or boost.
type Filters struct {
	CreditScore      string `json:"creditScore,omitempty"`
	AnnualFee        string `json:"annualFee,omitempty"`
	PreferredAirline string `json:"preferredAirline,omitempty"`
	TravelFrequency  string `json:"travelFrequency,omitempty"`
}

// isSentinel reports whether a preference value is one of the canonical
// no-op sentinels that disable filtering/boosting entirely.
func isSentinel(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "all", "not_relevant", "dont-consider":
		return true
	}
	return false
}

// Response is a page of scored recommendations plus pagination metadata.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Pagination      Pagination       `json:"pagination"`
}

// Pagination describes the returned page. Total counts results after
// filtering and the relevance floor, not the raw catalog size.
type Pagination struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// Recommendation is one scored, annotated catalog entry.
type Recommendation struct {
	Title                 string          `json:"title"`
	Category              string          `json:"category"`
	AnnualFee             string          `json:"annual_fee"`
	ForeignTransactionFee string          `json:"foreign_transaction_fee_value"`
	RewardRate            string          `json:"reward_rate_string_2018"`
	IntroAPR              string          `json:"intro_apr_check_value"`
	BonusOffer            string          `json:"bonus_offer_value"`
	ImageURL              string          `json:"image_url"`
	SimilarityScore       float64         `json:"similarity_score"`
	MatchPercentage       int             `json:"match_percentage"`
	Reviews               []ReviewSnippet `json:"reviews"`
	AssociatedAirlines    []string        `json:"associated_airlines"`
	IncomeTier            string          `json:"income_tier"`
	TravelValueScore      float64         `json:"travel_value_score"`
	Explanations          []Explanation   `json:"explanations"`
	DetailedMetrics       DetailedMetrics `json:"detailed_metrics"`
}

// ReviewSnippet is one individually scored user review.
type ReviewSnippet struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Explanation records one applied soft boost.
type Explanation struct {
	Reason      string  `json:"reason"`
	Impact      string  `json:"impact"`
	ScoreBefore float64 `json:"score_before"`
	ScoreAfter  float64 `json:"score_after"`
}

// DetailedMetrics exposes the raw scoring breakdown for transparency and
// debugging by the caller; it is not meant for further computation.
type DetailedMetrics struct {
	DescriptionSimilarity float64 `json:"description_similarity"`
	ReviewSimilarity      float64 `json:"review_similarity"`
	CombinedSimilarity    float64 `json:"combined_similarity"`
	DescriptionWeight     float64 `json:"description_weight"`
	ReviewWeight          float64 `json:"review_weight"`
	LatentDimensions      int     `json:"latent_dimensions"`
}

// match is the per-query transient scoring state for one card.
type match struct {
	index       int // catalog index
	descSim     float64
	reviewSim   float64
	combinedSim float64
	current     float64 // running score, post-boost
	explains    []Explanation
	topReviews  []ReviewSnippet
}

// matchPercentage converts a similarity score to the displayed integer
// percentage in [0, 99].
func matchPercentage(score float64) int {
	pct := int(score * 100)
	if pct > MaxMatchPercentage {
		pct = MaxMatchPercentage
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
