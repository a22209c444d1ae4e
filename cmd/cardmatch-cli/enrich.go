package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
)

func newEnrichCmd() *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "enrich <dataset.json>",
		Short: "Add airline, income tier, and travel value fields to a dataset",
		Long: `Scan every card in the dataset for airline keyword associations,
derive an income tier from its annual fee, and compute a travel value
score from its category and perks. The dataset is updated in place; a
backup copy is written alongside it first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(args[0], !noBackup)
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip writing the backup file")
	return cmd
}

func runEnrich(path string, backup bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	// Enrichment rewrites the file, so unknown fields must survive the
	// round trip; the raw maps carry them while the typed cards drive
	// the derivations.
	var rawEntries []map[string]interface{}
	if err := json.Unmarshal(data, &rawEntries); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	var cards []catalog.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	if backup {
		backupPath := path + ".bak"
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		logger.Info().Str("path", backupPath).Msg("Backup written")
	}

	bar := progressbar.NewOptions(len(cards),
		progressbar.OptionSetDescription("Enriching cards"),
		progressbar.OptionShowCount(),
	)

	withAirlines := 0
	for i, card := range cards {
		airlines := catalog.DetectAirlines(card)
		if len(airlines) > 0 {
			withAirlines++
		}
		// Curated airline data survives an empty detection; only a hit
		// or a missing field triggers a write.
		if _, ok := rawEntries[i]["associated_airlines"]; !ok || len(airlines) > 0 {
			rawEntries[i]["associated_airlines"] = airlines
		}

		if _, ok := rawEntries[i]["income_tier"]; !ok {
			rawEntries[i]["income_tier"] = catalog.DeriveIncomeTier(card.AnnualFee)
		}
		if _, ok := rawEntries[i]["travel_value_score"]; !ok {
			rawEntries[i]["travel_value_score"] = catalog.TravelValue(card)
		}

		_ = bar.Add(1)
	}
	fmt.Println()

	out, err := json.MarshalIndent(rawEntries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	logger.Info().
		Int("cards", len(cards)).
		Int("with_airlines", withAirlines).
		Str("path", path).
		Msg("Dataset enriched")
	return nil
}
