package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardmatch-ai/cardmatch/internal/observability"
)

const testDataset = `[
  {
    "name": "Voyager Miles Card",
    "short_card_name": "Voyager",
    "issuer": "First Bank",
    "category": "travel, miles",
    "annual_fee_value": "$95",
    "foreign_transaction_fee_value": "0%",
    "credit_score_low": "700",
    "pros_value": "Earn miles on all travel purchases",
    "our_take_value": "A solid travel card for frequent flyers",
    "user_reviews": ["Great miles earning", "Love the travel perks"],
    "associated_airlines": ["delta"],
    "income_tier": "low",
    "travel_value_score": 8.5
  },
  {
    "name": "Everyday Cash Card",
    "annual_fee_value": 0,
    "credit_score_low": 650
  }
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	store, err := Load(writeDataset(t, testDataset), observability.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	voyager := store.Card(0)
	assert.Equal(t, "Voyager Miles Card", voyager.Name)
	assert.Equal(t, "travel, miles", voyager.Category)
	require.NotNil(t, voyager.AnnualFeeAmount)
	assert.Equal(t, 95, *voyager.AnnualFeeAmount)
	require.NotNil(t, voyager.MinCreditScore)
	assert.Equal(t, 700, *voyager.MinCreditScore)
	assert.Equal(t, 8.5, voyager.TravelValueScore)
}

func TestLoad_DefaultsForMissingFields(t *testing.T) {
	store, err := Load(writeDataset(t, testDataset), observability.Nop())
	require.NoError(t, err)

	cash := store.Card(1)
	assert.Equal(t, NotAvailable, cash.ForeignTransactionFee)
	assert.Equal(t, DefaultIncomeTier, cash.IncomeTier)
	assert.Equal(t, DefaultTravelScore, cash.TravelValueScore)
	assert.Empty(t, cash.UserReviews)
	assert.Empty(t, cash.AssociatedAirlines)

	// Numeric JSON values for fee and score fields still normalize.
	require.NotNil(t, cash.AnnualFeeAmount)
	assert.Equal(t, 0, *cash.AnnualFeeAmount)
	require.NotNil(t, cash.MinCreditScore)
	assert.Equal(t, 650, *cash.MinCreditScore)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), observability.Nop())
	assert.Error(t, err)
}

func TestLoad_Unparsable(t *testing.T) {
	_, err := Load(writeDataset(t, "{not json"), observability.Nop())
	assert.Error(t, err)
}

func TestLoad_SkipsDuplicatesAndUnnamed(t *testing.T) {
	dataset := `[
	  {"name": "Card A"},
	  {"name": "Card A", "issuer": "dup"},
	  {"issuer": "nameless"}
	]`
	store, err := Load(writeDataset(t, dataset), observability.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestIndexByName(t *testing.T) {
	store, err := Load(writeDataset(t, testDataset), observability.Nop())
	require.NoError(t, err)

	idx, ok := store.IndexByName("Everyday Cash Card")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	// A miss means no constraint applies, never an error.
	_, ok = store.IndexByName("Unknown Card")
	assert.False(t, ok)
}

func TestDescriptionCorpus(t *testing.T) {
	store, err := Load(writeDataset(t, testDataset), observability.Nop())
	require.NoError(t, err)

	docs := store.DescriptionCorpus()
	require.Len(t, docs, 2)
	assert.Contains(t, docs[0], "A solid travel card for frequent flyers")
	assert.Contains(t, docs[0], "Earn miles on all travel purchases")
	assert.Contains(t, docs[0], "issuer: First Bank")
	// Name and category repeat to inflate their term weight.
	assert.Equal(t, 3, strings.Count(docs[0], "card name: Voyager Miles Card/Voyager"))
	assert.Equal(t, 2, strings.Count(docs[0], "category: travel, miles"))
}

func TestReviewCorpus(t *testing.T) {
	store, err := Load(writeDataset(t, testDataset), observability.Nop())
	require.NoError(t, err)

	docs := store.ReviewCorpus()
	require.Len(t, docs, 2)
	assert.Equal(t, "Great miles earning     Love the travel perks", docs[0])
	assert.Equal(t, "", docs[1])
}
