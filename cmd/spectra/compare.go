package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"Spectra/internal/calc/compare"
	"Spectra/internal/calc/report"
	"Spectra/internal/calc/sheet"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	in := compare.DefaultInput()
	var (
		every   int
		xlsx    string
		pdf     string
		project string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the GB50011 and ASCE 7 spectra",
		Long: `Compute both design spectra with a shared damping ratio and report the
common y-axis limit (1.1 × the larger peak).

Examples:
  spectra compare
  spectra compare --intensity "8度(0.30g)" --ss 1.2 --s1 0.5 --site-class C --xlsx out.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := compare.Calculate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			heading(out, "RESPONSE SPECTRUM COMPARISON")
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "  Damping:\t%.3f\n", res.Damping)
			fmt.Fprintf(tw, "  China α_max / Tg:\t%.3f / %.2f s\n", res.China.AlphaMax, res.China.Tg)
			fmt.Fprintf(tw, "  US SDS / SD1:\t%.3f / %.3f g\n", res.US.SDS, res.US.SD1)
			fmt.Fprintf(tw, "  Axis limits:\tT ≤ %.1f s, y ≤ %.4f\n", res.XAxisMax, res.YAxisMax)
			tw.Flush()

			heading(out, "SPECTRA")
			printCurves(out, every, []string{"China", fmt.Sprintf("US (R=%g)", res.US.R)}, res.China.Curve, res.US.Curve)

			if xlsx != "" {
				if err := writeFile(xlsx, func(f *os.File) error { return sheet.ExportComparison(f, res) }); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nWorkbook written to %s\n", xlsx)
			}
			if pdf != "" {
				rin := report.Input{Kind: report.KindCompare, Project: project, Compare: &in}
				if err := writeFile(pdf, func(f *os.File) error { return report.NewGenerator(nil).Write(f, rin) }); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", pdf)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar((*string)(&in.China.Intensity), "intensity", string(in.China.Intensity), "Seismic intensity label")
	f.StringVar((*string)(&in.China.SiteCategory), "site", string(in.China.SiteCategory), "Site category (I0 I1 II III IV)")
	f.StringVar((*string)(&in.China.Group), "group", string(in.China.Group), "Earthquake group")
	f.Float64Var(&in.US.Ss, "ss", in.US.Ss, "Mapped short-period acceleration Ss (g)")
	f.Float64Var(&in.US.S1, "s1", in.US.S1, "Mapped 1-second acceleration S1 (g)")
	f.StringVar((*string)(&in.US.SiteClass), "site-class", string(in.US.SiteClass), "Site class (A B C D)")
	f.Float64Var(&in.US.TL, "tl", in.US.TL, "Long-period transition TL (s)")
	f.Float64Var(&in.US.R, "r", in.US.R, "Response modification coefficient R")
	f.Float64Var(&in.Damping, "damping", in.Damping, "Damping ratio shared by both codes")
	f.IntVar(&every, "every", 50, "Print every n-th sample")
	f.StringVar(&xlsx, "xlsx", "", "Also write the curves to this XLSX file")
	f.StringVar(&pdf, "pdf", "", "Also write a PDF report to this file")
	f.StringVar(&project, "project", "", "Project name for the PDF report")
	return cmd
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
