package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/compare"
	"Spectra/internal/calc/wind"

	"github.com/xuri/excelize/v2"
)

const (
	SpectrumSheet   = "Spectrum"
	ParametersSheet = "Parameters"
)

// ExportComparison writes both curves and the scalar results as an XLSX workbook.
func ExportComparison(w io.Writer, res compare.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SpectrumSheet); err != nil {
		return err
	}
	header := []interface{}{"Period T (s)", "China GB50011-2010", fmt.Sprintf("US ASCE7-16 (R=%g)", res.US.R)}
	if err := f.SetSheetRow(SpectrumSheet, "A1", &header); err != nil {
		return err
	}
	for i, T := range res.China.Curve.Periods {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{T, res.China.Curve.Ordinates[i], res.US.Curve.Ordinates[i]}
		if err := f.SetSheetRow(SpectrumSheet, cell, &values); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(ParametersSheet); err != nil {
		return err
	}
	params := [][]interface{}{
		{"Parameter", "Value"},
		{"Damping", res.Damping},
		{"Alpha Max", res.China.AlphaMax},
		{"Tg (s)", res.China.Tg},
		{"Fa", res.US.Fa},
		{"Fv", res.US.Fv},
		{"SDS (g)", res.US.SDS},
		{"SD1 (g)", res.US.SD1},
		{"T0 (s)", res.US.T0},
		{"Ts (s)", res.US.Ts},
		{"TL (s)", res.US.TL},
		{"R", res.US.R},
		{"Y-axis limit", res.YAxisMax},
	}
	for i, p := range params {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ParametersSheet, cell, &p); err != nil {
			return err
		}
	}

	return f.Write(w)
}

type ImportResult struct {
	Count   int           `json:"count"`
	Skipped int           `json:"skipped"`
	Results []wind.Result `json:"results"`
}

// ImportWind converts every data row of the first sheet. Expected columns:
// speed, unit, height, averaging time, return period. Only speed is required.
// Rows that fail to parse or validate are skipped.
func ImportWind(r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return ImportResult{}, fmt.Errorf("empty sheet")
	}

	out := ImportResult{Results: []wind.Result{}}
	for _, row := range rows[1:] {
		input, err := parseWindRow(row)
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := wind.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseWindRow(row []string) (wind.Input, error) {
	if len(row) < 1 || strings.TrimSpace(row[0]) == "" {
		return wind.Input{}, fmt.Errorf("bad row")
	}
	speed, err := toFloat(row[0])
	if err != nil {
		return wind.Input{}, err
	}
	in := wind.Input{Speed: speed}
	if len(row) > 1 {
		in.Unit = codes.SpeedUnit(strings.TrimSpace(row[1]))
	}
	if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
		if in.Height, err = toFloat(row[2]); err != nil {
			return wind.Input{}, err
		}
	}
	if len(row) > 3 {
		in.Time = codes.AveragingTime(strings.TrimSpace(row[3]))
	}
	if len(row) > 4 {
		in.ReturnPeriod = codes.ReturnPeriod(strings.TrimSpace(row[4]))
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
