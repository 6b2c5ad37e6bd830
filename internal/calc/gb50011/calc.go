package gb50011

import (
	"errors"
	"fmt"
	"math"

	"Spectra/internal/calc/codes"
	"Spectra/internal/calc/spectrum"
)

const DefaultDamping = 0.05

var ErrInvalidInput = errors.New("invalid input")

// Coefficients are the damping adjustments of the design spectrum: the decay
// exponent gamma, the tail slope eta1 and the damping factor eta2.
type Coefficients struct {
	Gamma float64 `json:"gamma"`
	Eta1  float64 `json:"eta1"`
	Eta2  float64 `json:"eta2"`
}

func DampingCoefficients(damping float64) Coefficients {
	gamma := 0.9 + (0.05-damping)/(0.3+6*damping)
	eta1 := math.Max(0, 0.02+(0.05-damping)/(4+32*damping))
	eta2 := math.Max(0.55, 1+(0.05-damping)/(0.08+1.6*damping))
	return Coefficients{Gamma: gamma, Eta1: eta1, Eta2: eta2}
}

// Spectrum samples the seismic influence coefficient curve for the given peak
// coefficient and characteristic period. tg must be positive.
func Spectrum(alphaMax, tg, damping float64) spectrum.Curve {
	c := DampingCoefficients(damping)
	return spectrum.Generate(func(T float64) float64 {
		return ordinate(alphaMax, tg, c, T)
	})
}

func ordinate(alphaMax, tg float64, c Coefficients, T float64) float64 {
	switch {
	case T < 0.1:
		// Linear ramp from 0.45*alphaMax at T=0.
		return 0.45*alphaMax + (c.Eta2-0.45)*alphaMax*(T/0.1)
	case T < tg:
		return c.Eta2 * alphaMax
	case T < 5*tg:
		return c.Eta2 * alphaMax * math.Pow(tg/T, c.Gamma)
	default:
		return (c.Eta2*math.Pow(0.2, c.Gamma) - c.Eta1*(T-5*tg)) * alphaMax
	}
}

type Input struct {
	Intensity    codes.Intensity       `json:"intensity"`
	SiteCategory codes.SiteCategory    `json:"site_category"`
	Group        codes.EarthquakeGroup `json:"earthquake_group"`
	Damping      float64               `json:"damping"`
}

type Result struct {
	AlphaMax         float64        `json:"alpha_max"`
	Tg               float64        `json:"tg"`
	Damping          float64        `json:"damping"`
	Coefficients     Coefficients   `json:"coefficients"`
	AlphaMaxFallback bool           `json:"alpha_max_fallback"`
	TgFallback       bool           `json:"tg_fallback"`
	Curve            spectrum.Curve `json:"curve"`
}

// Calculate resolves the code labels and generates the design spectrum.
// Unknown labels resolve to the tabulated fallbacks and are flagged.
func Calculate(in Input) (Result, error) {
	if in.Damping == 0 {
		in.Damping = DefaultDamping
	}
	if in.Damping < 0 || in.Damping >= 1 || math.IsNaN(in.Damping) {
		return Result{}, fmt.Errorf("damping %v out of range (0, 1): %w", in.Damping, ErrInvalidInput)
	}

	alphaMax, okAlpha := codes.LookupAlphaMax(in.Intensity)
	tg, okTg := codes.LookupTg(in.SiteCategory, in.Group)

	return Result{
		AlphaMax:         alphaMax,
		Tg:               tg,
		Damping:          in.Damping,
		Coefficients:     DampingCoefficients(in.Damping),
		AlphaMaxFallback: !okAlpha,
		TgFallback:       !okTg,
		Curve:            Spectrum(alphaMax, tg, in.Damping),
	}, nil
}
