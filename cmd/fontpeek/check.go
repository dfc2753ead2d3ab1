package main

import (
	"fmt"

	"github.com/mmcdole/fontpeek/internal/fontload"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FAMILY...",
	Short: "Check that font stylesheets can be fetched",
	Long:  "Request each family's stylesheet and report the outcome. Example:\n  fontpeek check Roboto 'Open Sans'",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		results := fontload.CheckStylesheets(cmd.Context(), a.materializer, args, a.cfg.Fonts.MaxConcurrent)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "failed  %s: %v\n", r.Family, r.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok      %s\n", r.Family)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d families failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
