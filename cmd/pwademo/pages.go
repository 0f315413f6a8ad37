package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/output"
	"github.com/gorewood/pwademo/internal/page"
)

// pageDetail is the JSON shape of a single page.
type pageDetail struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Markers     []string `json:"markers"`
	Content     string   `json:"content"`
}

// newPagesCmd creates the pages command.
func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages [name]",
		Short: "List page templates or show one",
		Long: `List the page templates the router renders, or show one of them.

Pages are looked up in .pwademo/pages/, then <config dir>/pages/, then the
built-in set. A file named like a built-in page replaces it.

Examples:
  pwademo pages                # List pages and where they come from
  pwademo pages help           # Show the help page and its placeholders
  pwademo pages --json         # List as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
				WithStderr(cmd.ErrOrStderr())
			loader := page.NewLoader()
			if len(args) == 1 {
				return runPageShow(printer, loader, args[0])
			}
			return runPagesList(printer, loader)
		},
	}
}

// runPagesList prints every available page.
func runPagesList(printer *output.Printer, loader *page.Loader) error {
	pages := loader.List()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count": len(pages),
			"pages": pages,
		})
	}

	rows := make([][]string, 0, len(pages))
	for _, info := range pages {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}

// runPageShow prints one page with the placeholders it still contains.
func runPageShow(printer *output.Printer, loader *page.Loader, name string) error {
	tmpl, err := loader.Load(name)
	if err != nil {
		exitErr := output.NewUserError(err.Error())
		printer.Error(exitErr)
		return exitErr
	}

	markers := tmpl.HTML().Markers()
	if printer.IsJSON() {
		return printer.WriteJSON(pageDetail{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Source:      tmpl.Source,
			Markers:     markers,
			Content:     tmpl.Content,
		})
	}

	printer.Box(tmpl.Name, strings.TrimRight(tmpl.Content, "\n"))
	printer.KeyValue("Source", tmpl.Source)
	if tmpl.Description != "" {
		printer.KeyValue("Description", tmpl.Description)
	}
	if len(markers) > 0 {
		printer.KeyValue("Placeholders", strings.Join(markers, " "))
	}
	return nil
}
