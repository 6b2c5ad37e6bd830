// Package spectrum holds the sampled response-spectrum curve shared by the
// GB50011 and ASCE 7-16 generators.
package spectrum

const (
	SampleCount = 600
	PeriodMin   = 0.01
	PeriodMax   = 6.0

	// AxisHeadroom scales the largest ordinate to the chart's y-axis limit.
	AxisHeadroom = 1.1
)

// Curve is a pair of parallel sequences: one ordinate per sampled period.
type Curve struct {
	Periods   []float64 `json:"periods"`
	Ordinates []float64 `json:"ordinates"`
}

// Grid returns SampleCount uniformly spaced periods over [PeriodMin, PeriodMax].
func Grid() []float64 {
	periods := make([]float64, SampleCount)
	step := (PeriodMax - PeriodMin) / float64(SampleCount-1)
	for i := range periods {
		periods[i] = PeriodMin + float64(i)*step
	}
	return periods
}

// Generate evaluates f on every grid period.
func Generate(f func(T float64) float64) Curve {
	periods := Grid()
	ordinates := make([]float64, len(periods))
	for i, T := range periods {
		ordinates[i] = f(T)
	}
	return Curve{Periods: periods, Ordinates: ordinates}
}

func (c Curve) Len() int {
	return len(c.Periods)
}

// Max returns the largest ordinate, or 0 for an empty curve.
func (c Curve) Max() float64 {
	if len(c.Ordinates) == 0 {
		return 0
	}
	m := c.Ordinates[0]
	for _, v := range c.Ordinates[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// AxisLimit returns the y-axis upper limit for plotting the curves together.
func AxisLimit(curves ...Curve) float64 {
	m, seen := 0.0, false
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		if v := c.Max(); !seen || v > m {
			m, seen = v, true
		}
	}
	return m * AxisHeadroom
}

// Sample returns every n-th point plus the final one, for tabular output.
func (c Curve) Sample(n int) Curve {
	if n <= 1 || c.Len() == 0 {
		return c
	}
	var out Curve
	for i := 0; i < c.Len(); i += n {
		out.Periods = append(out.Periods, c.Periods[i])
		out.Ordinates = append(out.Ordinates, c.Ordinates[i])
	}
	if last := c.Len() - 1; last%n != 0 {
		out.Periods = append(out.Periods, c.Periods[last])
		out.Ordinates = append(out.Ordinates, c.Ordinates[last])
	}
	return out
}
