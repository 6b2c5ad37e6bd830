package asce7

import (
	"errors"
	"fmt"
	"math"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/interp"
	"Spectra/internal/calc/spectrum"
)

const (
	DefaultDamping = 0.05
	DefaultTL      = 24.0
	DefaultR       = 5.0
)

var ErrInvalidInput = errors.New("invalid input")

// FaFv interpolates the site coefficients for the mapped accelerations.
// siteClass must be one of A-D.
func FaFv(ss, s1 float64, siteClass codes.SiteClass) (fa, fv float64, err error) {
	faTable, err := codes.FaTable(siteClass)
	if err != nil {
		return 0, 0, err
	}
	fvTable, err := codes.FvTable(siteClass)
	if err != nil {
		return 0, 0, err
	}
	return interp.Interpolate(faTable, ss), interp.Interpolate(fvTable, s1), nil
}

// DampingFactor returns the spectral reduction factor B for the damping ratio.
// Each bracket includes its upper bound.
func DampingFactor(damping float64) float64 {
	switch {
	case damping <= 0.02:
		return 0.8
	case damping <= 0.05:
		return 0.8 + 0.2*(damping-0.02)/0.03
	case damping <= 0.10:
		return 1.0 + 0.2*(damping-0.05)/0.05
	case damping <= 0.20:
		return 1.2 + 0.3*(damping-0.10)/0.10
	default:
		return 1.5
	}
}

type Result struct {
	Fa    float64        `json:"fa"`
	Fv    float64        `json:"fv"`
	SDS   float64        `json:"sds"`
	SD1   float64        `json:"sd1"`
	T0    float64        `json:"t0"`
	Ts    float64        `json:"ts"`
	TL    float64        `json:"tl"`
	R     float64        `json:"r"`
	B     float64        `json:"b"`
	Curve spectrum.Curve `json:"curve"`
}

// Spectrum generates the reduced design spectrum. tl and r must be positive.
// A zero SDS collapses T0 and Ts to zero instead of dividing by it.
func Spectrum(ss, s1 float64, siteClass codes.SiteClass, tl, r, damping float64) (Result, error) {
	fa, fv, err := FaFv(ss, s1, siteClass)
	if err != nil {
		return Result{}, err
	}

	sms := fa * ss
	sm1 := fv * s1
	sds := (2.0 / 3.0) * sms
	sd1 := (2.0 / 3.0) * sm1

	var t0, ts float64
	if sds != 0 {
		t0 = 0.2 * (sd1 / sds)
		ts = sd1 / sds
	}
	b := DampingFactor(damping)

	curve := spectrum.Generate(func(T float64) float64 {
		var s float64
		switch {
		case T < t0:
			// t0 > 0 here since T is never negative.
			s = sds * (0.4 + 0.6*T/t0)
		case T < ts:
			s = sds
		case T < tl:
			s = sd1 / T
		default:
			s = sd1 * tl / (T * T)
		}
		return s / r / b
	})

	return Result{
		Fa:    fa,
		Fv:    fv,
		SDS:   sds,
		SD1:   sd1,
		T0:    t0,
		Ts:    ts,
		TL:    tl,
		R:     r,
		B:     b,
		Curve: curve,
	}, nil
}

type Input struct {
	Ss        float64         `json:"ss"`
	S1        float64         `json:"s1"`
	SiteClass codes.SiteClass `json:"site_class"`
	TL        float64         `json:"tl"`
	R         float64         `json:"r"`
	Damping   float64         `json:"damping"`
}

// Calculate validates the request, applies defaults for unset TL, R and
// damping, and generates the spectrum.
func Calculate(in Input) (Result, error) {
	if in.TL == 0 {
		in.TL = DefaultTL
	}
	if in.R == 0 {
		in.R = DefaultR
	}
	if in.Damping == 0 {
		in.Damping = DefaultDamping
	}

	switch {
	case in.Ss < 0 || in.S1 < 0 || !finite(in.Ss) || !finite(in.S1):
		return Result{}, fmt.Errorf("spectral acceleration ss=%v s1=%v: %w", in.Ss, in.S1, ErrInvalidInput)
	case in.TL < 0 || in.R < 0 || !finite(in.TL) || !finite(in.R):
		return Result{}, fmt.Errorf("tl=%v and r=%v must be positive: %w", in.TL, in.R, ErrInvalidInput)
	case in.Damping < 0 || in.Damping >= 1 || math.IsNaN(in.Damping):
		return Result{}, fmt.Errorf("damping %v out of range (0, 1): %w", in.Damping, ErrInvalidInput)
	}

	res, err := Spectrum(in.Ss, in.S1, in.SiteClass, in.TL, in.R, in.Damping)
	if err != nil {
		return Result{}, fmt.Errorf("site class: %w", err)
	}
	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
