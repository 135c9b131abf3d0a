package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"carousel/internal/config"
	"carousel/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the saved light/dark preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Decode(settings)
		if err != nil {
			return err
		}
		fallback, err := theme.Parse(cfg.Theme.Default)
		if err != nil {
			return fmt.Errorf("theme.default: %w", err)
		}
		store := theme.NewStore(afero.NewOsFs(), cfg.Theme.File)
		toggle, err := theme.NewToggle(store, fallback, nil, logger)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if args[0] == "toggle" {
				err = toggle.Toggle(0, 0)
			} else {
				var t theme.Theme
				if t, err = theme.Parse(args[0]); err == nil {
					err = toggle.Set(t, 0, 0)
				}
			}
			if err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), renderTheme(toggle.Current(), store.Path()))
		return nil
	},
}
