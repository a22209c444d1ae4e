package main

import (
	"github.com/spf13/cobra"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in.csv> <out.json>",
		Short: "Convert a raw scraped CSV dataset to the JSON catalog format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := catalog.ConvertCSV(args[0], args[1])
			if err != nil {
				return err
			}
			logger.Info().
				Int("rows", rows).
				Str("input", args[0]).
				Str("output", args[1]).
				Msg("Dataset converted")
			return nil
		},
	}
	return cmd
}
