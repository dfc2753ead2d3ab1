package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fontpeek/internal/page"
	"github.com/mmcdole/fontpeek/internal/tui"
	"github.com/mmcdole/fontpeek/internal/widget"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var previewCmd = &cobra.Command{
	Use:   "preview PAGE",
	Short: "Browse fonts and preview them on a page",
	Long:  "Open the interactive font browser against an HTML file. Example:\n  fontpeek preview index.html -o preview.html",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("preview needs an interactive terminal")
		}

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
		output, _ := cmd.Flags().GetString("output")

		// The observer must be registered before the first request
		events := make(chan tui.FontLoadMsg, 64)
		a.loader.SetObserver(tui.NewChannelObserver(events))

		cfg := a.cfg
		session := widget.NewSession(a.source, a.loader, doc, widget.Options{
			ItemHeight:      cfg.List.ItemHeight,
			Buffer:          cfg.List.Buffer,
			DefaultSelector: cfg.Defaults.Selector,
		}, a.logger)

		model := tui.NewModel(tui.Deps{
			Session:       session,
			Source:        a.source,
			LoadEvents:    events,
			StylesheetURL: a.materializer.URL,
			PagePath:      pagePath,
			OutputPath:    output,
			Weights:       cfg.Fonts.Weights,
			Debounce:      cfg.Search.Debounce,
			FetchTimeout:  cfg.Catalog.Timeout,
			SampleText:    cfg.Defaults.SampleText,
			Logger:        a.logger,
		})

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)

		a.logger.Info("starting TUI", "page", pagePath)
		if _, err := p.Run(); err != nil {
			a.logger.Error("TUI error", "error", err)
			return fmt.Errorf("TUI error: %w", err)
		}

		a.logger.Info("shutting down")
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("output", "o", "", "file written by ctrl+s (default overwrites PAGE)")
	rootCmd.AddCommand(previewCmd)
}
