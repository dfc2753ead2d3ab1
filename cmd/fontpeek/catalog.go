package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/filter"
	"github.com/mmcdole/fontpeek/internal/widget"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [QUERY]",
	Short: "List catalog fonts",
	Long:  "List catalog fonts matching a query and category. Example:\n  fontpeek catalog mono --category monospace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		refresh, _ := cmd.Flags().GetBool("refresh")
		if category == "" {
			category = string(domain.CategoryAll)
		}
		if !domain.Category(category).Valid() {
			return fmt.Errorf("unknown category %q", category)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if refresh {
			a.store.InvalidateCatalog()
		}

		result := a.source.Fetch(cmd.Context())
		if result.Fallback {
			fmt.Fprintf(os.Stderr, "API unavailable · %d popular fonts\n", len(result.Fonts))
		}

		query := ""
		if len(args) == 1 {
			query = filter.NormalizeQuery(args[0])
		}
		view := filter.Filter(result.Fonts, query, domain.Category(category))

		if len(view) == 0 {
			fmt.Println(widget.PlaceholderEmpty)
			if hints := filter.Suggest(result.Fonts, query, domain.Category(category), widget.DefaultSuggestions); len(hints) > 0 {
				fmt.Printf("Did you mean: %s\n", strings.Join(hints, ", "))
			}
			return nil
		}

		for _, font := range view {
			fmt.Printf("%s\t%s\n", font.Family, font.Category)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "all, sans-serif, serif, display, handwriting or monospace")
	catalogCmd.Flags().Bool("refresh", false, "ignore the cached catalog")
	rootCmd.AddCommand(catalogCmd)
}
