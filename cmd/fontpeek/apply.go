package main

import (
	"errors"
	"fmt"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/page"
	"github.com/mmcdole/fontpeek/internal/widget"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply PAGE",
	Short: "Apply a font to a page without the browser",
	Long:  "Apply a font to the elements matching a selector and write the page. Example:\n  fontpeek apply index.html --font Lora --selector 'h1, h2' --weight 700",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		pagePath := args[0]
		doc, err := page.LoadFile(pagePath)
		if err != nil {
			return fmt.Errorf("failed to load page: %w", err)
		}

		family, _ := cmd.Flags().GetString("font")
		selector, _ := cmd.Flags().GetString("selector")
		weight, _ := cmd.Flags().GetString("weight")
		size, _ := cmd.Flags().GetString("size")
		lineHeight, _ := cmd.Flags().GetString("line-height")
		important, _ := cmd.Flags().GetBool("important")
		output, _ := cmd.Flags().GetString("output")
		if selector == "" {
			selector = a.cfg.Defaults.Selector
		}

		// Resources are linked into the page instead of fetched
		applier := page.NewApplier(doc, nil, a.cfg.Defaults.Selector, a.logger)
		matched, err := applier.Apply(page.Options{
			Selector:   selector,
			Family:     family,
			Weight:     weight,
			Size:       size,
			LineHeight: lineHeight,
			Important:  important,
		})
		out := cmd.OutOrStdout()
		if err != nil {
			if errors.Is(err, domain.ErrInvalidSelector) {
				fmt.Fprintln(out, widget.StatusInvalid)
			}
			return err
		}

		if output == "" {
			output = pagePath
		}
		if err := doc.WriteFileWithStylesheets(output, []string{a.materializer.URL(family)}); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}

		fmt.Fprintf(out, "Current: %s (%d elements)\n", applier.CurrentFont(), matched)
		if css := widget.ExportCSS(family, weight, size, lineHeight); css != "" {
			fmt.Fprintln(out, css)
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().String("font", "", "font family to apply")
	applyCmd.Flags().String("selector", "", "CSS selector of the target elements (default from config)")
	applyCmd.Flags().String("weight", widget.DefaultWeight, "font weight")
	applyCmd.Flags().String("size", "", "font size, bare numbers are pixels")
	applyCmd.Flags().String("line-height", widget.DefaultLineHeight, "line height")
	applyCmd.Flags().Bool("important", false, "mark every declaration !important")
	applyCmd.Flags().StringP("output", "o", "", "output file (default overwrites PAGE)")
	_ = applyCmd.MarkFlagRequired("font")
	rootCmd.AddCommand(applyCmd)
}
