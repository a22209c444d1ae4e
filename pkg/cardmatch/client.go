// Package cardmatch provides the public Go client for the CardMatch API.
package cardmatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the CardMatch API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new CardMatch client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Request is a recommendation query.
type Request struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
	Offset  int     `json:"offset,omitempty"`
	Limit   int     `json:"limit,omitempty"`
}

// Filters holds structured user preferences.
type Filters struct {
	CreditScore      string `json:"creditScore,omitempty"`
	AnnualFee        string `json:"annualFee,omitempty"`
	PreferredAirline string `json:"preferredAirline,omitempty"`
	TravelFrequency  string `json:"travelFrequency,omitempty"`
}

// Response is a page of recommendations.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Pagination      Pagination       `json:"pagination"`
}

// Pagination describes the returned page.
type Pagination struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// Recommendation is one scored catalog entry.
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

// ReviewSnippet is one scored user review.
type ReviewSnippet struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Explanation records one applied preference boost.
type Explanation struct {
	Reason      string  `json:"reason"`
	Impact      string  `json:"impact"`
	ScoreBefore float64 `json:"score_before"`
	ScoreAfter  float64 `json:"score_after"`
}

// DetailedMetrics is the scoring breakdown for transparency.
type DetailedMetrics struct {
	DescriptionSimilarity float64 `json:"description_similarity"`
	ReviewSimilarity      float64 `json:"review_similarity"`
	CombinedSimilarity    float64 `json:"combined_similarity"`
	DescriptionWeight     float64 `json:"description_weight"`
	ReviewWeight          float64 `json:"review_weight"`
	LatentDimensions      int     `json:"latent_dimensions"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cardmatch: API error %d: %s", e.StatusCode, e.Message)
}

// Recommend executes a recommendation query.
func (c *Client) Recommend(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(httpResp.Body).Decode(&apiErr)
		return nil, &APIError{StatusCode: httpResp.StatusCode, Message: apiErr.Error}
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}
