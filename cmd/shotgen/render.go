package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/youruser/shotgen/internal/batch"
	"github.com/youruser/shotgen/internal/config"
)

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var sel batch.Selection
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render screenshots for the selected locales, devices and screens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			slog.Info("rendering screenshots",
				"lang", sel.Locale, "device", sel.Device, "screen", sel.Screen,
				"raw_dir", cfg.RawDir, "final_dir", cfg.FinalDir, "jobs", cfg.Jobs)

			report, err := a.runner.Run(cmd.Context(), sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			if n := report.Count(batch.StatusFailed); n > 0 {
				return fmt.Errorf("%d screens failed", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&sel.Locale, "lang", "l", "", "locale to render (en, ko); empty renders all")
	cmd.Flags().StringVarP(&sel.Device, "device", "d", "", "device profile to render; empty renders all")
	cmd.Flags().StringVarP(&sel.Screen, "screen", "s", "", "single screen id to render")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "screens rendered in parallel")
	return cmd
}
