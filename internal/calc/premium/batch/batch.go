package batch

import (
	"fmt"

	footing "Bearing/internal/calc/footing"
)

type FootingBatchInput struct {
	Items []footing.Input `json:"items"`
}

type FootingBatchResult struct {
	Results []footing.Result `json:"results"`
}

// CalculateFooting runs the pressure calculation over every item. One bad
// item fails the whole batch so a caller never gets a partial table.
func CalculateFooting(in FootingBatchInput) (FootingBatchResult, error) {
	if len(in.Items) == 0 {
		return FootingBatchResult{}, fmt.Errorf("no items")
	}
	out := FootingBatchResult{Results: make([]footing.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := footing.Calculate(item)
		if err != nil {
			return FootingBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
