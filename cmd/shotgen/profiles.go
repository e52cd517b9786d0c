package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/youruser/shotgen/internal/device"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the device profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCANVAS\tSCALE\tTARGET WIDTH\tRADIUS\tDIR")
			for _, p := range device.Builtin().Profiles() {
				fmt.Fprintf(tw, "%s\t%dx%d\t%.2f\t%d\t%d\t%s\n",
					p.Name, p.CanvasWidth, p.CanvasHeight, p.ScreenshotScale, p.TargetWidth(), p.CornerRadius, p.Dir("<lang>"))
			}
			return tw.Flush()
		},
	}
}
