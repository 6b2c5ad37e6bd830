package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"Spectra/internal/calc/spectrum"

	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "spectra",
		Short: "Seismic response spectra and wind-speed conversion",
		Long: `spectra computes design acceleration response spectra per GB50011-2010
and ASCE 7-16 on a 600-point period grid from 0.01 s to 6 s, compares them,
and normalises measured wind speeds to the 50-year, 10 m, 10-minute basis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCnCmd(), newUsCmd(), newCompareCmd(), newWindCmd())
	return root
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  "+title)
	fmt.Fprintln(w, rule)
}

// printCurves prints every n-th sample of curves that share the period grid.
func printCurves(w io.Writer, every int, names []string, curves ...spectrum.Curve) {
	if len(curves) == 0 {
		return
	}
	sampled := make([]spectrum.Curve, len(curves))
	for i, c := range curves {
		sampled[i] = c.Sample(every)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "  T (s)")
	for _, n := range names {
		fmt.Fprintf(tw, "\t%s", n)
	}
	fmt.Fprintln(tw)
	for i, T := range sampled[0].Periods {
		fmt.Fprintf(tw, "  %.2f", T)
		for _, c := range sampled {
			fmt.Fprintf(tw, "\t%.4f", c.Ordinates[i])
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
