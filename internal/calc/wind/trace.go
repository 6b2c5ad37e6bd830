package wind

import (
	"fmt"
	"strconv"
)

type Stage string

const (
	StageUnit          Stage = "unit"
	StageReturnPeriod  Stage = "return_period"
	StageAveragingTime Stage = "averaging_time"
	StageHeight        Stage = "height"
	StagePressure      Stage = "pressure"
)

// Step records one conversion stage: the value entering it, the factor it
// applied and the value it produced. Skipped marks an identity stage.
type Step struct {
	Stage   Stage   `json:"stage"`
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
	Input   float64 `json:"input"`
	Factor  float64 `json:"factor"`
	Output  float64 `json:"output"`
	Skipped bool    `json:"skipped,omitempty"`
}

// String renders the step with the report labels.
func (s Step) String() string {
	switch s.Stage {
	case StageUnit:
		if s.Skipped {
			return fmt.Sprintf("风速: %.2f m/s", s.Output)
		}
		return fmt.Sprintf("单位转换: %.2f %s = %.2f m/s", s.Input, s.From, s.Output)
	case StageReturnPeriod:
		return fmt.Sprintf("重现期转换 (%s -> %s): %.2f / %.2f = %.2f m/s", s.From, s.To, s.Input, s.Factor, s.Output)
	case StageAveragingTime:
		return fmt.Sprintf("时距转换 (%s -> %s): %.2f / %.2f * 1.06 = %.2f m/s", s.From, s.To, s.Input, s.Factor, s.Output)
	case StageHeight:
		if s.Skipped {
			return fmt.Sprintf("高度已是10m，无需转换: %.2f m/s", s.Output)
		}
		return fmt.Sprintf("高度转换 (%sm -> %sm): %.2f * (%s/%s)^%.2f = %.2f m/s",
			s.From, s.To, s.Input, s.To, s.From, HeightExponent, s.Output)
	case StagePressure:
		return fmt.Sprintf("基本风压计算: w0 = 0.5 * %s * %.2f^2 / 1000 = %.3f kN/m",
			strconv.FormatFloat(s.Factor, 'f', -1, 64), s.Input, s.Output)
	default:
		return fmt.Sprintf("%s: %.2f -> %.2f", s.Stage, s.Input, s.Output)
	}
}

// Label is an ASCII rendering of the step for outputs limited to Latin-1.
func (s Step) Label() string {
	switch s.Stage {
	case StageUnit:
		if s.Skipped {
			return fmt.Sprintf("Wind speed: %.2f m/s", s.Output)
		}
		return fmt.Sprintf("Unit conversion: %.2f %s = %.2f m/s", s.Input, s.From, s.Output)
	case StageReturnPeriod:
		return fmt.Sprintf("Return period (%s -> %s): %.2f / %.2f = %.2f m/s", s.From, s.To, s.Input, s.Factor, s.Output)
	case StageAveragingTime:
		return fmt.Sprintf("Averaging time (%s -> %s): %.2f / %.2f * 1.06 = %.2f m/s", s.From, s.To, s.Input, s.Factor, s.Output)
	case StageHeight:
		if s.Skipped {
			return fmt.Sprintf("Height already 10m, no conversion: %.2f m/s", s.Output)
		}
		return fmt.Sprintf("Height (%sm -> %sm): %.2f * (%s/%s)^%.2f = %.2f m/s",
			s.From, s.To, s.Input, s.To, s.From, HeightExponent, s.Output)
	case StagePressure:
		return fmt.Sprintf("Basic wind pressure: w0 = 0.5 * %s * %.2f^2 / 1000 = %.3f kN/m",
			strconv.FormatFloat(s.Factor, 'f', -1, 64), s.Input, s.Output)
	default:
		return s.String()
	}
}

func formatHeight(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
