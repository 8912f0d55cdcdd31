package dataset

import "numkit/stats"

// Summary describes one sample. Every field is 0 for an empty sample.
// Variance and StdDev use the n-1 denominator, PopulationVariance uses n.
// CV is StdDev / Mean, 0 below two values and ±Inf or NaN when Mean is 0.
type Summary struct {
	Count              int
	Sum                float64
	Mean               float64
	Median             float64
	Mode               int
	StdDev             float64
	Variance           float64
	PopulationVariance float64
	CV                 float64
	Min                int
	Max                int
	Range              int
}

// Describe computes a Summary in a single accumulation pass plus one sort
// for the median.
func Describe(data []int) Summary {
	if !isValidData(data) {
		return Summary{}
	}

	acc := stats.NewSampleSummary()
	for _, value := range data {
		acc.Append(value)
	}

	return Summary{
		Count:              int(acc.NumValues),
		Sum:                acc.Sum,
		Mean:               acc.Sum / float64(acc.NumValues),
		Median:             medianOfSorted(Sort(data)),
		Mode:               acc.Mode(),
		StdDev:             acc.ValueStats.GetSD(),
		Variance:           acc.ValueStats.GetSampleVariance(),
		PopulationVariance: acc.ValueStats.GetVariance(),
		CV:                 acc.ValueStats.GetCV(),
		Min:                acc.Min,
		Max:                acc.Max,
		Range:              acc.Max - acc.Min,
	}
}
