package main

import (
	"fmt"
	"text/tabwriter"

	"Spectra/internal/calc/asce7"
	"Spectra/internal/calc/codes"

	"github.com/spf13/cobra"
)

func newUsCmd() *cobra.Command {
	var (
		in    asce7.Input
		every int
	)
	cmd := &cobra.Command{
		Use:   "us",
		Short: "ASCE 7-16 design response spectrum",
		Long: `Generate the ASCE 7-16 design spectrum divided by R.

Examples:
  spectra us --ss 1.0 --s1 0.4 --site-class C
  spectra us --ss 0.51 --s1 0.18 --r 8 --damping 0.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := asce7.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			heading(out, "ASCE 7-16 RESPONSE SPECTRUM")
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "  Ss / S1:\t%.3f / %.3f g\n", in.Ss, in.S1)
			fmt.Fprintf(tw, "  Site class:\t%s\n", in.SiteClass)
			fmt.Fprintf(tw, "  Fa / Fv:\t%.3f / %.3f\n", res.Fa, res.Fv)
			fmt.Fprintf(tw, "  SDS / SD1:\t%.3f / %.3f g\n", res.SDS, res.SD1)
			fmt.Fprintf(tw, "  T0 / Ts / TL:\t%.3f / %.3f / %.1f s\n", res.T0, res.Ts, res.TL)
			fmt.Fprintf(tw, "  R / B:\t%.2f / %.2f\n", res.R, res.B)
			tw.Flush()

			heading(out, "SPECTRUM")
			printCurves(out, every, []string{"Sa/R (g)"}, res.Curve)
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.Ss, "ss", 0.51, "Mapped short-period acceleration Ss (g)")
	cmd.Flags().Float64Var(&in.S1, "s1", 0.18, "Mapped 1-second acceleration S1 (g)")
	cmd.Flags().StringVar((*string)(&in.SiteClass), "site-class", string(codes.SiteClassD), "Site class (A B C D)")
	cmd.Flags().Float64Var(&in.TL, "tl", asce7.DefaultTL, "Long-period transition TL (s)")
	cmd.Flags().Float64Var(&in.R, "r", asce7.DefaultR, "Response modification coefficient R")
	cmd.Flags().Float64Var(&in.Damping, "damping", asce7.DefaultDamping, "Damping ratio")
	cmd.Flags().IntVar(&every, "every", 50, "Print every n-th sample")
	return cmd
}
