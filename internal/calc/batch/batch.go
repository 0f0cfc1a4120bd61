package batch

import (
	"fmt"

	performance "Recip/internal/calc/performance"
)

type Input struct {
	Items []performance.Input `json:"items"`
}

type Result struct {
	Reports []performance.Report `json:"reports"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Reports: make([]performance.Report, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := performance.ValidateProcess(item.Process); err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Reports = append(out.Reports, performance.Calculate(item))
	}
	return out, nil
}
