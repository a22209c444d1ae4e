package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
	"github.com/cardmatch-ai/cardmatch/internal/recommend"
)

func newRecommendCmd() *cobra.Command {
	var (
		creditScore string
		annualFee   string
		airline     string
		travel      string
		offset      int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Rank catalog cards against a free-text query",
		Long: `Build the text indexes over the configured dataset and print the
top matching cards for a query.

Example:
  cardmatch-cli recommend "airline miles for international travel"
  cardmatch-cli recommend "no fee cash back" --annual-fee no --credit-score good`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(args[0], recommend.Filters{
				CreditScore:      creditScore,
				AnnualFee:        annualFee,
				PreferredAirline: airline,
				TravelFrequency:  travel,
			}, offset, limit)
		},
	}

	cmd.Flags().StringVar(&creditScore, "credit-score", "", "credit score bracket (excellent|good|fair|poor)")
	cmd.Flags().StringVar(&annualFee, "annual-fee", "", "fee tolerance (no|up-to-100|up-to-250|up-to-500|up-to-700)")
	cmd.Flags().StringVar(&airline, "airline", "", "preferred airline")
	cmd.Flags().StringVar(&travel, "travel", "", "travel frequency (frequent|occasional|rare)")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().IntVar(&limit, "limit", recommend.DefaultLimit, "page size")

	return cmd
}

func runRecommend(query string, filters recommend.Filters, offset, limit int) error {
	store, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var spin *spinner.Spinner
	if !outputJSON {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " Building text indexes..."
		spin.Start()
	}

	engine, err := recommend.NewEngine(logger, store, recommend.Options{
		Components:     cfg.Index.Components,
		ExtraStopWords: cfg.Index.ExtraStopWords,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	resp, err := engine.Recommend(context.Background(), recommend.Request{
		Query:   query,
		Filters: filters,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(resp)
	}

	printRecommendations(query, resp)
	return nil
}

func printRecommendations(query string, resp *recommend.Response) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	pct := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	title.Printf("Top matches for %q\n", query)
	dim.Printf("%d result(s) total\n\n", resp.Pagination.Total)

	for i, rec := range resp.Recommendations {
		pct.Printf("%d. %s (%d%% match)\n", resp.Pagination.Offset+i+1, rec.Title, rec.MatchPercentage)
		dim.Printf("   category: %s | annual fee: %s | income tier: %s\n",
			rec.Category, rec.AnnualFee, rec.IncomeTier)
		for _, ex := range rec.Explanations {
			fmt.Printf("   %s (%s)\n", ex.Reason, ex.Impact)
		}
		if len(rec.Reviews) > 0 {
			dim.Printf("   top review: %.80s\n", rec.Reviews[0].Text)
		}
		fmt.Println()
	}

	if resp.Pagination.HasMore {
		dim.Printf("More results available: rerun with --offset %d\n",
			resp.Pagination.Offset+resp.Pagination.Limit)
	}
}
