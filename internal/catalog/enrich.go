package catalog

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// airlineKeywords maps normalized airline identifiers to the name and
// loyalty-program keywords that mark a card as associated with them.
var airlineKeywords = map[string][]string{
	"delta":           {"delta", "delta air", "skymiles"},
	"american":        {"american", "american airlines", "aadvantage", "aa"},
	"united":          {"united", "united airlines", "mileageplus"},
	"southwest":       {"southwest", "southwest airlines", "rapid rewards"},
	"jetblue":         {"jetblue", "jet blue", "trueblue"},
	"alaska":          {"alaska", "alaska airlines", "alaska air"},
	"british airways": {"british airways", "british air", "avios"},
	"air france":      {"air france", "flying blue"},
	"lufthansa":       {"lufthansa", "miles & more"},
	"emirates":        {"emirates", "emirates airlines", "skywards"},
	"hawaiian":        {"hawaiian", "hawaiian airlines"},
	"frontier":        {"frontier", "frontier airlines"},
	"spirit":          {"spirit", "spirit airlines", "free spirit"},
	"virgin":          {"virgin", "virgin atlantic", "virgin america"},
	"cathay pacific":  {"cathay", "cathay pacific"},
	"singapore":       {"singapore", "singapore airlines", "krisflyer"},
	"aeromexico":      {"aeromexico", "aero mexico"},
	"air canada":      {"air canada", "aeroplan"},
	"turkish":         {"turkish", "turkish airlines", "miles&smiles"},
	"asiana":          {"asiana", "asiana airlines"},
}

var feeAmount = regexp.MustCompile(`\$?(\d+)`)

// DetectAirlines scans a card's searchable text for airline keywords and
// returns the sorted set of matched airline identifiers.
func DetectAirlines(c Card) []string {
	searchText := strings.ToLower(strings.Join([]string{
		c.Name, c.ShortName, c.Category, c.BonusOffer, c.RewardRate, c.OurTake,
	}, " "))

	matched := []string{}
	for airline, keywords := range airlineKeywords {
		for _, kw := range keywords {
			if strings.Contains(searchText, kw) {
				matched = append(matched, airline)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched
}

// DeriveIncomeTier buckets a card into an income tier by its annual fee.
// No-fee cards are accessible to any income level.
func DeriveIncomeTier(annualFee string) string {
	switch annualFee {
	case "", NotAvailable, "-1", "$0", "None", "none", "0":
		return IncomeTierAny
	}

	fee := 0
	if m := feeAmount.FindStringSubmatch(annualFee); m != nil {
		fee, _ = strconv.Atoi(m[1])
	}

	switch {
	case fee == 0:
		return IncomeTierAny
	case fee <= 95:
		return IncomeTierLow
	case fee <= 250:
		return IncomeTierMedium
	case fee <= 550:
		return IncomeTierHigh
	default:
		return IncomeTierPremium
	}
}

// TravelValue scores how travel-oriented a card is on a 0-10 scale,
// starting from a neutral 5.0 and rewarding travel categories, waived
// foreign transaction fees, and travel perks in the description.
func TravelValue(c Card) float64 {
	score := 5.0

	category := strings.ToLower(c.Category)
	if strings.Contains(category, "travel") {
		score += 2.0
	}
	if strings.Contains(category, "miles") {
		score += 1.5
	}
	if strings.Contains(category, "hotel") {
		score += 1.0
	}

	foreignFee := strings.ToLower(c.ForeignTransactionFee)
	if strings.Contains(foreignFee, "0%") || strings.Contains(foreignFee, "none") ||
		strings.Contains(foreignFee, "no foreign") {
		score += 2.0
	}

	if strings.Contains(strings.ToLower(c.RewardRate), "miles") {
		score += 1.0
	}

	description := strings.ToLower(c.Pros + " " + c.OurTake)
	if strings.Contains(description, "travel credit") || strings.Contains(description, "airline credit") {
		score += 1.0
	}
	if strings.Contains(description, "priority pass") || strings.Contains(description, "lounge access") {
		score += 1.5
	}
	if strings.Contains(description, "global entry") || strings.Contains(description, "tsa precheck") {
		score += 0.5
	}
	if strings.Contains(description, "companion") &&
		(strings.Contains(description, "ticket") || strings.Contains(description, "fare")) {
		score += 1.0
	}

	return math.Min(math.Round(score*10)/10, 10.0)
}

// Enrich fills in the derived preference fields on a card. Existing airline
// associations are replaced only when detection finds something; existing
// tier and travel score values are kept.
func Enrich(c Card) Card {
	if airlines := DetectAirlines(c); len(airlines) > 0 || len(c.AssociatedAirlines) == 0 {
		c.AssociatedAirlines = airlines
	}
	if c.IncomeTier == "" || c.IncomeTier == DefaultIncomeTier {
		c.IncomeTier = DeriveIncomeTier(c.AnnualFee)
	}
	if c.TravelValueScore == DefaultTravelScore {
		c.TravelValueScore = TravelValue(c)
	}
	return c
}
