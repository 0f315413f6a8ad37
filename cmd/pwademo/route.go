package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/output"
	"github.com/gorewood/pwademo/internal/page"
	"github.com/gorewood/pwademo/internal/router"
)

// newRouteCmd creates the route command.
func newRouteCmd() *cobra.Command {
	var htmlFlag bool
	cmd := &cobra.Command{
		Use:   "route [fragment | arg...]",
		Short: "Render the page for a hash fragment",
		Long: `Render the page the browser would show for a URL hash fragment.

The fragment may be given whole (with or without the leading #) or as
separate arguments, which are joined with '/'. With no arguments the start
page is rendered.

Exits with code 1 when the page shows an error message.

Examples:
  pwademo route                  # Start page with the input form
  pwademo route '#upper/world'   # Hello WORLD!
  pwademo route upper WORLD      # Error: name is already uppercase
  pwademo route help --html      # Raw markup of the help page
  pwademo route print --json     # Missing-argument error as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args, htmlFlag)
		},
	}
	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Print the rendered body markup instead of its text")
	return cmd
}

// runRoute executes the route command.
func runRoute(cmd *cobra.Command, args []string, rawHTML bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	fragment := strings.Join(args, "/")
	res := router.RenderFragment(fragment, cfg,
		router.WithPages(page.NewLoader()),
		router.WithLogger(newLogger(cmd)),
	)

	if printer.IsJSON() {
		if err := printer.WriteJSON(res); err != nil {
			return output.NewSystemErrorWithCause("writing result", err)
		}
	} else {
		printRouteResult(printer, res, rawHTML)
	}

	if !res.OK() {
		return output.NewUserError(res.Error)
	}
	return nil
}

// printRouteResult renders a Result for humans.
func printRouteResult(printer *output.Printer, res router.Result, rawHTML bool) {
	printer.KeyValue("Args", strings.Join(res.Args, " "))
	printer.KeyValue("Verb", res.Verb)

	body := strings.TrimSpace(res.BodyText)
	if rawHTML {
		body = strings.TrimSpace(res.Body)
	}
	if body != "" {
		printer.Section("Body")
		printer.Println(body)
	}

	if !res.OK() {
		printer.Section("Errors")
		printer.ErrorLine(res.Error)
	}
}
