// Package catalog loads and holds the immutable credit card catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Default sentinels for missing optional fields.
const (
	NotAvailable       = "N/A"
	DefaultIncomeTier  = "any"
	DefaultTravelScore = 5.0
)

// Income tiers derived from the annual fee band.
const (
	IncomeTierAny     = "any"
	IncomeTierLow     = "low"
	IncomeTierMedium  = "medium"
	IncomeTierHigh    = "high"
	IncomeTierPremium = "premium"
)

// Card is one catalog entry. Raw fields come straight from the dataset;
// AnnualFeeAmount and MinCreditScore are parsed once at load time so the
// filter logic never touches the raw strings again.
type Card struct {
	Name                  string   `json:"name"`
	ShortName             string   `json:"short_card_name"`
	Issuer                string   `json:"issuer"`
	Category              string   `json:"category"`
	AnnualFee             string   `json:"annual_fee_value"`
	ForeignTransactionFee string   `json:"foreign_transaction_fee_value"`
	CreditScoreLow        string   `json:"credit_score_low"`
	BonusOffer            string   `json:"bonus_offer_value"`
	Pros                  string   `json:"pros_value"`
	OurTake               string   `json:"our_take_value"`
	RewardRate            string   `json:"reward_rate_string_2018"`
	IntroAPR              string   `json:"intro_apr_check_value"`
	UserReviews           []string `json:"user_reviews"`
	AssociatedAirlines    []string `json:"associated_airlines"`
	IncomeTier            string   `json:"income_tier"`
	TravelValueScore      float64  `json:"travel_value_score"`
	ImageURL              string   `json:"image_url"`

	// Normalized at load time. Nil means unknown, which downstream
	// filters treat as "no constraint applies".
	AnnualFeeAmount *int `json:"-"`
	MinCreditScore  *int `json:"-"`
}

// cardJSON mirrors Card but tolerates the dataset's loose typing: fee and
// score fields arrive as numbers, currency strings, or "N/A" depending on
// which enrichment pass last touched the file.
type cardJSON struct {
	Name                  string      `json:"name"`
	ShortName             string      `json:"short_card_name"`
	Issuer                string      `json:"issuer"`
	Category              string      `json:"category"`
	AnnualFee             looseString `json:"annual_fee_value"`
	ForeignTransactionFee looseString `json:"foreign_transaction_fee_value"`
	CreditScoreLow        looseString `json:"credit_score_low"`
	BonusOffer            string      `json:"bonus_offer_value"`
	Pros                  string      `json:"pros_value"`
	OurTake               string      `json:"our_take_value"`
	RewardRate            string      `json:"reward_rate_string_2018"`
	IntroAPR              string      `json:"intro_apr_check_value"`
	UserReviews           []string    `json:"user_reviews"`
	AssociatedAirlines    []string    `json:"associated_airlines"`
	IncomeTier            string      `json:"income_tier"`
	TravelValueScore      *float64    `json:"travel_value_score"`
	ImageURL              string      `json:"image_url"`
}

// UnmarshalJSON decodes a card through the loose dataset shape, applies
// the documented sentinels for missing fields, and normalizes the fee and
// score fields once.
func (c *Card) UnmarshalJSON(data []byte) error {
	var j cardJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*c = j.toCard()
	return nil
}

// looseString accepts JSON strings, numbers, and null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0, string(data) == "null":
		*s = ""
		return nil
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("field is neither string nor number: %w", err)
		}
		if v == float64(int64(v)) {
			*s = looseString(strconv.FormatInt(int64(v), 10))
		} else {
			*s = looseString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		return nil
	}
}

func (j cardJSON) toCard() Card {
	c := Card{
		Name:                  j.Name,
		ShortName:             j.ShortName,
		Issuer:                j.Issuer,
		Category:              j.Category,
		AnnualFee:             stringOr(string(j.AnnualFee), NotAvailable),
		ForeignTransactionFee: stringOr(string(j.ForeignTransactionFee), NotAvailable),
		CreditScoreLow:        stringOr(string(j.CreditScoreLow), NotAvailable),
		BonusOffer:            j.BonusOffer,
		Pros:                  j.Pros,
		OurTake:               j.OurTake,
		RewardRate:            j.RewardRate,
		IntroAPR:              j.IntroAPR,
		UserReviews:           j.UserReviews,
		AssociatedAirlines:    j.AssociatedAirlines,
		IncomeTier:            stringOr(j.IncomeTier, DefaultIncomeTier),
		TravelValueScore:      DefaultTravelScore,
		ImageURL:              j.ImageURL,
	}
	if j.TravelValueScore != nil {
		c.TravelValueScore = *j.TravelValueScore
	}
	if c.UserReviews == nil {
		c.UserReviews = []string{}
	}
	if c.AssociatedAirlines == nil {
		c.AssociatedAirlines = []string{}
	}
	c.AnnualFeeAmount = ParseFee(c.AnnualFee)
	c.MinCreditScore = ParseScore(c.CreditScoreLow)
	return c
}

func stringOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
