// Package compare runs the GB50011 and ASCE 7-16 spectra side by side with a
// shared damping ratio and derives common chart limits.
package compare

import (
	"fmt"

	"Spectra/internal/calc/asce7"
	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/gb50011"
	"Spectra/internal/calc/spectrum"
)

type Input struct {
	Damping float64       `json:"damping"`
	China   gb50011.Input `json:"china"`
	US      asce7.Input   `json:"us"`
}

// DefaultInput mirrors the initial state of the comparison screen.
func DefaultInput() Input {
	return Input{
		Damping: 0.05,
		China: gb50011.Input{
			Intensity:    codes.Intensity7,
			SiteCategory: codes.SiteII,
			Group:        codes.Group1,
		},
		US: asce7.Input{
			Ss:        0.51,
			S1:        0.18,
			SiteClass: codes.SiteClassD,
			TL:        asce7.DefaultTL,
			R:         asce7.DefaultR,
		},
	}
}

type Result struct {
	Damping  float64        `json:"damping"`
	China    gb50011.Result `json:"china"`
	US       asce7.Result   `json:"us"`
	XAxisMax float64        `json:"x_axis_max"`
	YAxisMax float64        `json:"y_axis_max"`
}

func Calculate(in Input) (Result, error) {
	if in.Damping == 0 {
		in.Damping = gb50011.DefaultDamping
	}
	in.China.Damping = in.Damping
	in.US.Damping = in.Damping

	cn, err := gb50011.Calculate(in.China)
	if err != nil {
		return Result{}, fmt.Errorf("gb50011: %w", err)
	}
	us, err := asce7.Calculate(in.US)
	if err != nil {
		return Result{}, fmt.Errorf("asce7: %w", err)
	}

	return Result{
		Damping:  in.Damping,
		China:    cn,
		US:       us,
		XAxisMax: spectrum.PeriodMax,
		YAxisMax: spectrum.AxisLimit(cn.Curve, us.Curve),
	}, nil
}
