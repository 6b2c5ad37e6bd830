package wind

import (
	"errors"
	"fmt"
	"math"

	"Spectra/internal/calc/codes"
)

const (
	MphToMs         = 0.44704
	HeightExponent  = 0.15
	AirDensity      = 1.25 // kg/m³
	ReferenceHeight = 10.0 // m
)

var ErrInvalidInput = errors.New("invalid input")

type Result struct {
	Speed10m float64 `json:"speed_10m"` // 50-year, 10 m, 10-minute mean speed, m/s
	Pressure float64 `json:"pressure"`  // basic wind pressure w0, kN/m²
	Trace    []Step  `json:"trace"`
}

// Lines renders the trace as report text, one line per stage.
func (r Result) Lines() []string {
	lines := make([]string, len(r.Trace))
	for i, s := range r.Trace {
		lines[i] = s.String()
	}
	return lines
}

// Convert normalises a measured wind speed to the 50-year, 10 m, 10-minute
// design speed and the basic wind pressure. Unknown labels use the table
// fallbacks; height must be positive.
func Convert(speed float64, unit codes.SpeedUnit, height float64, averaging codes.AveragingTime, rp codes.ReturnPeriod) Result {
	trace := make([]Step, 0, 5)

	ms := speed
	unitStep := Step{Stage: StageUnit, From: string(unit), To: string(codes.UnitMs), Input: speed, Factor: 1}
	if unit == codes.UnitMph {
		ms = speed * MphToMs
		unitStep.Factor = MphToMs
	} else {
		unitStep.From = string(codes.UnitMs)
		unitStep.Skipped = true
	}
	unitStep.Output = ms
	trace = append(trace, unitStep)

	rpFactor := codes.ReturnPeriodFactor(rp)
	v50 := ms / rpFactor
	trace = append(trace, Step{
		Stage: StageReturnPeriod, From: string(rp), To: "50y",
		Input: ms, Factor: rpFactor, Output: v50,
	})

	timeFactor := codes.TimeFactor(averaging)
	v1h := v50 / timeFactor
	v10min := v1h * codes.TenMinuteFactor
	trace = append(trace, Step{
		Stage: StageAveragingTime, From: string(averaging), To: string(codes.Time10min),
		Input: v50, Factor: timeFactor, Output: v10min,
	})

	v10m := v10min
	heightStep := Step{
		Stage: StageHeight, From: formatHeight(height), To: formatHeight(ReferenceHeight),
		Input: v10min, Factor: 1,
	}
	if height != ReferenceHeight {
		heightStep.Factor = math.Pow(ReferenceHeight/height, HeightExponent)
		v10m = v10min * heightStep.Factor
	} else {
		heightStep.Skipped = true
	}
	heightStep.Output = v10m
	trace = append(trace, heightStep)

	w0 := 0.5 * AirDensity * v10m * v10m / 1000
	trace = append(trace, Step{
		Stage: StagePressure, Input: v10m, Factor: AirDensity, Output: w0,
	})

	return Result{Speed10m: v10m, Pressure: w0, Trace: trace}
}

type Input struct {
	Speed        float64             `json:"speed"`
	Unit         codes.SpeedUnit     `json:"unit"`
	Height       float64             `json:"height"`
	Time         codes.AveragingTime `json:"time"`
	ReturnPeriod codes.ReturnPeriod  `json:"return_period"`
}

// Calculate validates a request, fills defaults for empty fields and converts.
func Calculate(in Input) (Result, error) {
	if in.Unit == "" {
		in.Unit = codes.UnitMs
	}
	if in.Height == 0 {
		in.Height = ReferenceHeight
	}
	if in.Time == "" {
		in.Time = codes.Time3s
	}
	// Empty means unset and takes the form default; unknown labels still
	// resolve to the table fallback in Convert.
	if in.ReturnPeriod == "" {
		in.ReturnPeriod = codes.Return700y
	}

	if in.Speed < 0 || math.IsNaN(in.Speed) || math.IsInf(in.Speed, 0) {
		return Result{}, fmt.Errorf("wind speed %v: %w", in.Speed, ErrInvalidInput)
	}
	if in.Height < 0 || math.IsNaN(in.Height) || math.IsInf(in.Height, 0) {
		return Result{}, fmt.Errorf("height %v must be positive: %w", in.Height, ErrInvalidInput)
	}

	return Convert(in.Speed, in.Unit, in.Height, in.Time, in.ReturnPeriod), nil
}
