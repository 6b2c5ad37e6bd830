package main

import (
	"fmt"
	"text/tabwriter"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/gb50011"

	"github.com/spf13/cobra"
)

func newCnCmd() *cobra.Command {
	var (
		in    gb50011.Input
		every int
	)
	cmd := &cobra.Command{
		Use:   "cn",
		Short: "GB50011-2010 design response spectrum",
		Long: `Generate the GB50011-2010 seismic influence coefficient curve.

Examples:
  spectra cn --intensity "8度(0.20g)" --site III --group 第二组
  spectra cn --damping 0.02 --every 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gb50011.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			heading(out, "GB50011-2010 RESPONSE SPECTRUM")
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "  Intensity:\t%s\n", in.Intensity)
			fmt.Fprintf(tw, "  Site category:\t%s\n", in.SiteCategory)
			fmt.Fprintf(tw, "  Group:\t%s\n", in.Group)
			fmt.Fprintf(tw, "  Damping:\t%.3f\n", res.Damping)
			fmt.Fprintf(tw, "  α_max:\t%.3f%s\n", res.AlphaMax, fallbackMark(res.AlphaMaxFallback))
			fmt.Fprintf(tw, "  Tg:\t%.2f s%s\n", res.Tg, fallbackMark(res.TgFallback))
			fmt.Fprintf(tw, "  γ / η1 / η2:\t%.4f / %.4f / %.4f\n", res.Coefficients.Gamma, res.Coefficients.Eta1, res.Coefficients.Eta2)
			tw.Flush()

			heading(out, "SPECTRUM")
			printCurves(out, every, []string{"α"}, res.Curve)
			return nil
		},
	}
	cmd.Flags().StringVar((*string)(&in.Intensity), "intensity", string(codes.Intensity7), "Seismic intensity label")
	cmd.Flags().StringVar((*string)(&in.SiteCategory), "site", string(codes.SiteII), "Site category (I0 I1 II III IV)")
	cmd.Flags().StringVar((*string)(&in.Group), "group", string(codes.Group1), "Earthquake group")
	cmd.Flags().Float64Var(&in.Damping, "damping", gb50011.DefaultDamping, "Damping ratio")
	cmd.Flags().IntVar(&every, "every", 50, "Print every n-th sample")
	return cmd
}

func fallbackMark(fallback bool) string {
	if fallback {
		return "  (fallback)"
	}
	return ""
}
