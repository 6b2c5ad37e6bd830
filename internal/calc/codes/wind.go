package codes

type SpeedUnit string

const (
	UnitMph SpeedUnit = "mph"
	UnitMs  SpeedUnit = "m/s"
)

// AveragingTime is the gust/mean averaging window of a measured wind speed.
type AveragingTime string

const (
	Time3s    AveragingTime = "3s"
	Time10s   AveragingTime = "10s"
	Time60s   AveragingTime = "60s"
	Time10min AveragingTime = "10min"
	Time1h    AveragingTime = "1h"
)

type ReturnPeriod string

const (
	Return300y  ReturnPeriod = "300y"
	Return700y  ReturnPeriod = "700y"
	Return1700y ReturnPeriod = "1700y"
	Return3000y ReturnPeriod = "3000y"
)

const (
	DefaultReturnPeriodFactor = 1.26
	DefaultTimeFactor         = 1.52

	// TenMinuteFactor converts a 1-hour mean speed to a 10-minute mean.
	TenMinuteFactor = 1.06
)

// LookupReturnPeriodFactor returns the ratio of the given return-period speed
// to the 50-year speed.
func LookupReturnPeriodFactor(rp ReturnPeriod) (float64, bool) {
	switch rp {
	case Return300y:
		return 1.179, true
	case Return700y:
		return 1.264, true
	case Return1700y:
		return 1.352, true
	case Return3000y:
		return 1.409, true
	default:
		return DefaultReturnPeriodFactor, false
	}
}

func ReturnPeriodFactor(rp ReturnPeriod) float64 {
	v, _ := LookupReturnPeriodFactor(rp)
	return v
}

// LookupTimeFactor returns the gust factor of the averaging window relative to
// the 1-hour mean.
func LookupTimeFactor(t AveragingTime) (float64, bool) {
	switch t {
	case Time3s:
		return 1.52, true
	case Time10s:
		return 1.43, true
	case Time60s:
		return 1.27, true
	case Time10min:
		return TenMinuteFactor, true
	case Time1h:
		return 1.00, true
	default:
		return DefaultTimeFactor, false
	}
}

func TimeFactor(t AveragingTime) float64 {
	v, _ := LookupTimeFactor(t)
	return v
}
