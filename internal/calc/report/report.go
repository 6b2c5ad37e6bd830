package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/compare"
	"Spectra/internal/calc/wind"

	"github.com/jonboulle/clockwork"
	"github.com/phpdave11/gofpdf"
)

type Kind string

const (
	KindCompare Kind = "compare"
	KindWind    Kind = "wind"
)

// sampleEvery thins the 600-point curves to a printable table.
const sampleEvery = 50

var ErrInvalidInput = errors.New("invalid input")

type Input struct {
	Kind    Kind           `json:"kind"`
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Title   string         `json:"title"`
	Notes   string         `json:"notes"`
	Compare *compare.Input `json:"compare,omitempty"`
	Wind    *wind.Input    `json:"wind,omitempty"`
}

type row struct {
	cells []string
}

// document is the rendered content of a report before layout.
type document struct {
	title   string
	header  []string
	summary []string
	columns []string
	rows    []row
	notes   string
}

type Generator struct {
	Clock clockwork.Clock
}

func NewGenerator(clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{Clock: clock}
}

// Write runs the requested calculation and writes the PDF report to w.
func (g *Generator) Write(w io.Writer, in Input) error {
	doc, err := build(in, g.Clock.Now())
	if err != nil {
		return err
	}
	return render(w, doc)
}

func build(in Input, now time.Time) (document, error) {
	doc := document{
		title: in.Title,
		header: []string{
			fmt.Sprintf("Project: %s", in.Project),
			fmt.Sprintf("Author: %s", in.Author),
			fmt.Sprintf("Date: %s", now.Format("2006-01-02")),
		},
		notes: in.Notes,
	}

	switch in.Kind {
	case KindCompare:
		if doc.title == "" {
			doc.title = "Response Spectrum Comparison"
		}
		cin := compare.DefaultInput()
		if in.Compare != nil {
			cin = *in.Compare
		}
		res, err := compare.Calculate(cin)
		if err != nil {
			return document{}, err
		}
		doc.summary = compareSummary(cin, res)
		doc.columns = []string{"T (s)", "China GB50011", fmt.Sprintf("US ASCE7-16 (R=%g)", res.US.R)}
		cn := res.China.Curve.Sample(sampleEvery)
		us := res.US.Curve.Sample(sampleEvery)
		for i := range cn.Periods {
			doc.rows = append(doc.rows, row{cells: []string{
				fmt.Sprintf("%.2f", cn.Periods[i]),
				fmt.Sprintf("%.4f", cn.Ordinates[i]),
				fmt.Sprintf("%.4f", us.Ordinates[i]),
			}})
		}
	case KindWind:
		if doc.title == "" {
			doc.title = "Basic Wind Pressure"
		}
		if in.Wind == nil {
			return document{}, fmt.Errorf("wind parameters required: %w", ErrInvalidInput)
		}
		res, err := wind.Calculate(*in.Wind)
		if err != nil {
			return document{}, err
		}
		for _, s := range res.Trace {
			doc.summary = append(doc.summary, s.Label())
		}
		doc.summary = append(doc.summary,
			fmt.Sprintf("50-year, 10 m, 10-min wind speed: %.2f m/s", res.Speed10m),
			fmt.Sprintf("Basic wind pressure: %.3f kN/m", res.Pressure),
		)
	default:
		return document{}, fmt.Errorf("report kind %q: %w", in.Kind, ErrInvalidInput)
	}
	return doc, nil
}

func compareSummary(in compare.Input, res compare.Result) []string {
	return []string{
		fmt.Sprintf("Damping ratio: %.2f", res.Damping),
		fmt.Sprintf("China: intensity %s, site %s, %s", intensityLabel(in.China.Intensity), in.China.SiteCategory, groupLabel(in.China.Group)),
		fmt.Sprintf("Alpha Max: %.2f   Tg: %.2fs", res.China.AlphaMax, res.China.Tg),
		fmt.Sprintf("US: Ss %.2fg, S1 %.2fg, site class %s, TL %gs, R %g", in.US.Ss, in.US.S1, in.US.SiteClass, res.US.TL, res.US.R),
		fmt.Sprintf("Fa: %.2f   Fv: %.2f", res.US.Fa, res.US.Fv),
		fmt.Sprintf("SDS: %.3fg   SD1: %.3fg", res.US.SDS, res.US.SD1),
		fmt.Sprintf("Y-axis limit: %.4f", res.YAxisMax),
	}
}

// intensityLabel drops the degree character, which core PDF fonts cannot encode.
func intensityLabel(in codes.Intensity) string {
	return strings.ReplaceAll(string(in), "度", " ")
}

func groupLabel(g codes.EarthquakeGroup) string {
	switch g {
	case codes.Group1:
		return "group 1"
	case codes.Group2:
		return "group 2"
	case codes.Group3:
		return "group 3"
	default:
		return "group ?"
	}
}

func render(w io.Writer, doc document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.header {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, line := range doc.summary {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	if len(doc.columns) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		for _, c := range doc.columns {
			pdf.CellFormat(50, 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range doc.rows {
			for _, c := range r.cells {
				pdf.CellFormat(50, 6, c, "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if doc.notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, doc.notes, "", "L", false)
	}

	return pdf.Output(w)
}
