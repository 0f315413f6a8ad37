package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration the router renders with and where it came from.

Configuration is read from ./pwademo.yaml, else <config dir>/config.yaml,
else the built-in defaults. PWADEMO_APP_NAME, PWADEMO_BASE_PATH and
PWADEMO_ORIGIN override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
				WithStderr(cmd.ErrOrStderr())

			cfg, err := loadConfig(printer)
			if err != nil {
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"app_name":   cfg.AppName,
					"base_path":  cfg.BasePath,
					"origin":     cfg.Origin,
					"defaults":   map[string]string{"arg_1": cfg.Defaults.Arg1, "arg_2": cfg.Defaults.Arg2},
					"footer":     map[string]string{"class": cfg.Footer.Class, "text": cfg.Footer.Text},
					"source":     cfg.Source,
					"config_dir": config.Dir(),
				})
			}

			printer.Section("Config")
			printer.KeyValue("App name", cfg.AppName)
			printer.KeyValue("Base path", cfg.BasePath)
			printer.KeyValue("Origin", cfg.Origin)
			printer.KeyValue("Help URL", cfg.AbsURL("help"))
			printer.KeyValue("Defaults", cfg.Defaults.Arg1+" / "+cfg.Defaults.Arg2)
			printer.KeyValue("Footer", cfg.Footer.Text)
			printer.KeyValue("Source", cfg.Source)
			printer.KeyValue("Config dir", config.Dir())
			return nil
		},
	}
}
