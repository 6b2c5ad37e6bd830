package codes

// Options lists every selectable label in display order.
type Options struct {
	Intensities      []Intensity       `json:"intensities"`
	SiteCategories   []SiteCategory    `json:"site_categories"`
	EarthquakeGroups []EarthquakeGroup `json:"earthquake_groups"`
	SiteClasses      []SiteClass       `json:"site_classes"`
	SpeedUnits       []SpeedUnit       `json:"speed_units"`
	AveragingTimes   []AveragingTime   `json:"averaging_times"`
	ReturnPeriods    []ReturnPeriod    `json:"return_periods"`
}

func AllOptions() Options {
	return Options{
		Intensities:      []Intensity{Intensity6, Intensity7, Intensity7_15, Intensity8, Intensity8_30, Intensity9},
		SiteCategories:   []SiteCategory{SiteI0, SiteI1, SiteII, SiteIII, SiteIV},
		EarthquakeGroups: []EarthquakeGroup{Group1, Group2, Group3},
		SiteClasses:      []SiteClass{SiteClassA, SiteClassB, SiteClassC, SiteClassD},
		SpeedUnits:       []SpeedUnit{UnitMph, UnitMs},
		AveragingTimes:   []AveragingTime{Time3s, Time10s, Time60s, Time10min, Time1h},
		ReturnPeriods:    []ReturnPeriod{Return300y, Return700y, Return1700y, Return3000y},
	}
}
