package core

import "github.com/montanaflynn/stats"

// summarize computes descriptive statistics over written MaxUtil values.
// Returns nil when there is nothing to describe.
func summarize(values []float64) *Summary {
	if len(values) == 0 {
		return nil
	}

	data := stats.Float64Data(values)

	lo, err := stats.Min(data)
	if err != nil {
		return nil
	}
	hi, err := stats.Max(data)
	if err != nil {
		return nil
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil
	}

	return &Summary{
		Count:  len(values),
		Min:    lo,
		Max:    hi,
		Mean:   mean,
		Median: median,
	}
}
