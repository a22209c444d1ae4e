package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset.json>",
		Short: "Check that a dataset loads and report field parse coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

type validateReport struct {
	Cards            int `json:"cards"`
	ParsedFees       int `json:"parsed_fees"`
	ParsedScores     int `json:"parsed_scores"`
	WithReviews      int `json:"with_reviews"`
	WithAirlines     int `json:"with_airlines"`
	MissingImageURLs int `json:"missing_image_urls"`
}

func runValidate(path string) error {
	store, err := catalog.Load(path, logger)
	if err != nil {
		return fmt.Errorf("dataset does not load: %w", err)
	}

	var report validateReport
	report.Cards = store.Len()
	for _, c := range store.Cards() {
		if c.AnnualFeeAmount != nil {
			report.ParsedFees++
		}
		if c.MinCreditScore != nil {
			report.ParsedScores++
		}
		if len(c.UserReviews) > 0 {
			report.WithReviews++
		}
		if len(c.AssociatedAirlines) > 0 {
			report.WithAirlines++
		}
		if c.ImageURL == "" {
			report.MissingImageURLs++
		}
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	ok := color.New(color.FgGreen)
	ok.Printf("Dataset OK: %d cards\n", report.Cards)
	fmt.Printf("  annual fees parsed:    %d/%d\n", report.ParsedFees, report.Cards)
	fmt.Printf("  credit scores parsed:  %d/%d\n", report.ParsedScores, report.Cards)
	fmt.Printf("  cards with reviews:    %d/%d\n", report.WithReviews, report.Cards)
	fmt.Printf("  cards with airlines:   %d/%d\n", report.WithAirlines, report.Cards)
	fmt.Printf("  missing image URLs:    %d\n", report.MissingImageURLs)
	return nil
}
