package batch

import (
	"errors"
	"fmt"

	"Spectra/internal/calc/wind"
)

const DefaultMaxItems = 500

var (
	ErrNoItems = errors.New("no items")
	ErrTooMany = errors.New("too many items")
)

type WindBatchInput struct {
	Items []wind.Input `json:"items"`
}

type WindBatchResult struct {
	Results []wind.Result `json:"results"`
}

// CalculateWind converts every item in order. The first invalid item fails
// the whole batch and its index is reported.
func CalculateWind(in WindBatchInput, maxItems int) (WindBatchResult, error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if len(in.Items) == 0 {
		return WindBatchResult{}, ErrNoItems
	}
	if len(in.Items) > maxItems {
		return WindBatchResult{}, fmt.Errorf("%w: %d > %d", ErrTooMany, len(in.Items), maxItems)
	}
	out := WindBatchResult{Results: make([]wind.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := wind.Calculate(item)
		if err != nil {
			return WindBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
