package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectAirlines(t *testing.T) {
	card := Card{
		Name:     "SkyMiles Gold Card",
		OurTake:  "Earn Delta SkyMiles on every purchase",
		Category: "travel",
	}
	airlines := DetectAirlines(card)
	assert.Equal(t, []string{"delta"}, airlines)
}

func TestDetectAirlines_MultipleSorted(t *testing.T) {
	card := Card{
		Name:       "Premier Rewards",
		BonusOffer: "Transfer points to United MileagePlus and British Airways Avios",
	}
	airlines := DetectAirlines(card)
	assert.Equal(t, []string{"british airways", "united"}, airlines)
}

func TestDetectAirlines_NoMatch(t *testing.T) {
	card := Card{Name: "Everyday Cash", Category: "cash_back"}
	assert.Empty(t, DetectAirlines(card))
}

func TestDeriveIncomeTier(t *testing.T) {
	tests := []struct {
		fee  string
		want string
	}{
		{"N/A", IncomeTierAny},
		{"$0", IncomeTierAny},
		{"none", IncomeTierAny},
		{"$95", IncomeTierLow},
		{"$96", IncomeTierMedium},
		{"$250", IncomeTierMedium},
		{"$450", IncomeTierHigh},
		{"$550", IncomeTierHigh},
		{"$695", IncomeTierPremium},
		{"695 (waived first year)", IncomeTierPremium},
	}
	for _, tt := range tests {
		t.Run(tt.fee, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveIncomeTier(tt.fee))
		})
	}
}

func TestTravelValue_NeutralCard(t *testing.T) {
	card := Card{Name: "Plain Card", Category: "balance_transfer"}
	assert.Equal(t, 5.0, TravelValue(card))
}

func TestTravelValue_TravelHeavyCardCapsAtTen(t *testing.T) {
	card := Card{
		Name:                  "Voyager Elite",
		Category:              "travel, miles, hotel",
		ForeignTransactionFee: "0%",
		RewardRate:            "3x miles on travel",
		Pros:                  "Priority Pass lounge access, $300 travel credit, Global Entry credit",
	}
	assert.Equal(t, 10.0, TravelValue(card))
}

func TestTravelValue_CategoryBoostsOnly(t *testing.T) {
	card := Card{Category: "travel"}
	assert.Equal(t, 7.0, TravelValue(card))
}

func TestEnrich(t *testing.T) {
	card := Card{
		Name:             "SkyMiles Platinum",
		Category:         "travel",
		AnnualFee:        "$250",
		IncomeTier:       DefaultIncomeTier,
		TravelValueScore: DefaultTravelScore,
	}
	enriched := Enrich(card)
	assert.Equal(t, []string{"delta"}, enriched.AssociatedAirlines)
	assert.Equal(t, IncomeTierMedium, enriched.IncomeTier)
	assert.Equal(t, 7.0, enriched.TravelValueScore)
}
