package codes

import (
	"errors"
	"fmt"

	"Spectra/internal/calc/interp"
)

// Intensity is a GB50011 design intensity label, e.g. "7度(0.10g)".
type Intensity string

const (
	Intensity6    Intensity = "6度(0.05g)"
	Intensity7    Intensity = "7度(0.10g)"
	Intensity7_15 Intensity = "7度(0.15g)"
	Intensity8    Intensity = "8度(0.20g)"
	Intensity8_30 Intensity = "8度(0.30g)"
	Intensity9    Intensity = "9度(0.40g)"
)

type SiteCategory string

const (
	SiteI0  SiteCategory = "I0"
	SiteI1  SiteCategory = "I1"
	SiteII  SiteCategory = "II"
	SiteIII SiteCategory = "III"
	SiteIV  SiteCategory = "IV"
)

type EarthquakeGroup string

const (
	Group1 EarthquakeGroup = "第一组"
	Group2 EarthquakeGroup = "第二组"
	Group3 EarthquakeGroup = "第三组"
)

// SiteClass is an ASCE 7-16 site class. Only A-D carry Fa/Fv tables.
type SiteClass string

const (
	SiteClassA SiteClass = "A"
	SiteClassB SiteClass = "B"
	SiteClassC SiteClass = "C"
	SiteClassD SiteClass = "D"
)

const (
	DefaultAlphaMax = 0.08
	DefaultTg       = 0.35
)

var ErrUnknownSiteClass = errors.New("unknown site class")

// LookupAlphaMax returns the peak influence coefficient for the intensity and
// whether the label was recognised.
func LookupAlphaMax(in Intensity) (float64, bool) {
	switch in {
	case Intensity6:
		return 0.04, true
	case Intensity7:
		return 0.08, true
	case Intensity7_15:
		return 0.12, true
	case Intensity8:
		return 0.16, true
	case Intensity8_30:
		return 0.24, true
	case Intensity9:
		return 0.32, true
	default:
		return DefaultAlphaMax, false
	}
}

func AlphaMax(in Intensity) float64 {
	v, _ := LookupAlphaMax(in)
	return v
}

// LookupTg returns the characteristic period for a site category within an
// earthquake group.
func LookupTg(site SiteCategory, group EarthquakeGroup) (float64, bool) {
	var row [5]float64
	switch group {
	case Group1:
		row = [5]float64{0.20, 0.25, 0.35, 0.45, 0.65}
	case Group2:
		row = [5]float64{0.25, 0.30, 0.40, 0.55, 0.75}
	case Group3:
		row = [5]float64{0.30, 0.35, 0.45, 0.65, 0.90}
	default:
		return DefaultTg, false
	}

	switch site {
	case SiteI0:
		return row[0], true
	case SiteI1:
		return row[1], true
	case SiteII:
		return row[2], true
	case SiteIII:
		return row[3], true
	case SiteIV:
		return row[4], true
	default:
		return DefaultTg, false
	}
}

func Tg(site SiteCategory, group EarthquakeGroup) float64 {
	v, _ := LookupTg(site, group)
	return v
}

// FaTable returns the short-period site coefficient break points keyed on Ss.
// A fresh table is built on every call so callers cannot alter shared state.
func FaTable(class SiteClass) (interp.Table, error) {
	keys := []float64{0.25, 0.5, 0.75, 1.0, 1.25, 1.50}
	switch class {
	case SiteClassA:
		return build(keys, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8), nil
	case SiteClassB:
		return build(keys, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9), nil
	case SiteClassC:
		return build(keys, 1.3, 1.3, 1.2, 1.2, 1.2, 1.2), nil
	case SiteClassD:
		return build(keys, 1.6, 1.4, 1.2, 1.1, 1.0, 1.0), nil
	default:
		return nil, fmt.Errorf("fa table %q: %w", class, ErrUnknownSiteClass)
	}
}

// FvTable returns the long-period site coefficient break points keyed on S1.
func FvTable(class SiteClass) (interp.Table, error) {
	keys := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	switch class {
	case SiteClassA:
		return build(keys, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8), nil
	case SiteClassB:
		return build(keys, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8), nil
	case SiteClassC:
		return build(keys, 1.5, 1.5, 1.5, 1.5, 1.5, 1.4), nil
	case SiteClassD:
		return build(keys, 2.4, 2.2, 2.0, 1.9, 1.8, 1.7), nil
	default:
		return nil, fmt.Errorf("fv table %q: %w", class, ErrUnknownSiteClass)
	}
}

func build(keys []float64, values ...float64) interp.Table {
	t := make(interp.Table, len(keys))
	for i, k := range keys {
		t[k] = values[i]
	}
	return t
}
