package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardmatch-ai/cardmatch/internal/observability"
)

const enrichDataset = `[
  {
    "name": "House Brand Card",
    "category": "rewards",
    "associated_airlines": ["delta"]
  },
  {
    "name": "SkyMiles Platinum",
    "category": "travel",
    "annual_fee_value": "$250",
    "associated_airlines": ["united"]
  },
  {
    "name": "Everyday Cash Card",
    "category": "cash_back",
    "income_tier": "medium",
    "travel_value_score": 2.5
  }
]`

func runEnrichOn(t *testing.T, dataset string) []map[string]interface{} {
	t.Helper()
	logger = observability.Nop()

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))
	require.NoError(t, runEnrich(path, false))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &entries))
	return entries
}

func TestRunEnrich_PreservesCuratedAirlines(t *testing.T) {
	entries := runEnrichOn(t, enrichDataset)
	require.Len(t, entries, 3)

	// No keyword in the card's text: the curated value must survive.
	assert.Equal(t, []interface{}{"delta"}, entries[0]["associated_airlines"])

	// A detection hit replaces the stale curated value.
	assert.Equal(t, []interface{}{"delta"}, entries[1]["associated_airlines"])
}

func TestRunEnrich_FillsMissingFields(t *testing.T) {
	entries := runEnrichOn(t, enrichDataset)

	// Absent airline field gets written even when detection is empty.
	assert.Equal(t, []interface{}{}, entries[2]["associated_airlines"])

	// Derived fields never overwrite existing values.
	assert.Equal(t, "medium", entries[2]["income_tier"])
	assert.Equal(t, 2.5, entries[2]["travel_value_score"])

	// And are filled in where absent.
	assert.Equal(t, "medium", entries[1]["income_tier"])
	assert.NotNil(t, entries[1]["travel_value_score"])
}

func TestRunEnrich_WritesBackup(t *testing.T) {
	logger = observability.Nop()

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(enrichDataset), 0o644))
	require.NoError(t, runEnrich(path, true))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, enrichDataset, string(backup))
}
