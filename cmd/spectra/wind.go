package main

import (
	"fmt"
	"text/tabwriter"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/wind"

	"github.com/spf13/cobra"
)

func newWindCmd() *cobra.Command {
	var in wind.Input
	cmd := &cobra.Command{
		Use:   "wind",
		Short: "Convert a measured wind speed to the basic design speed and pressure",
		Long: `Normalise a wind speed to the 50-year return period, 10 m height and
10-minute averaging time, then compute the basic wind pressure w0.

Examples:
  spectra wind --speed 115 --unit mph --height 10 --time 3s --return-period 700y
  spectra wind --speed 40 --height 33.5 --time 10min`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := wind.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			heading(out, "WIND SPEED CONVERSION")
			for _, line := range res.Lines() {
				fmt.Fprintln(out, "  "+line)
			}

			heading(out, "RESULT")
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "  V (50y, 10m, 10min):\t%.2f m/s\n", res.Speed10m)
			fmt.Fprintf(tw, "  w0:\t%.3f kN/m²\n", res.Pressure)
			tw.Flush()
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.Speed, "speed", 0, "Measured wind speed [required]")
	cmd.Flags().StringVar((*string)(&in.Unit), "unit", string(codes.UnitMs), "Speed unit (mph m/s)")
	cmd.Flags().Float64Var(&in.Height, "height", wind.ReferenceHeight, "Measurement height (m)")
	cmd.Flags().StringVar((*string)(&in.Time), "time", string(codes.Time3s), "Averaging time (3s 10s 60s 10min 1h)")
	cmd.Flags().StringVar((*string)(&in.ReturnPeriod), "return-period", string(codes.Return700y), "Return period (300y 700y 1700y 3000y)")
	cmd.MarkFlagRequired("speed")
	return cmd
}
