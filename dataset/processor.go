// Package dataset computes statistics and transforms over integer samples
// and splits, joins and counts words in text.
//
// Statistics follow a degenerate result policy: an empty sample is not an
// error, every aggregate simply returns 0.
package dataset

import (
	"math"
	"slices"

	"numkit/stats"
)

func isValidData(data []int) bool {
	return len(data) != 0
}

func Sum(data []int) float64 {
	if !isValidData(data) {
		return 0
	}
	sum := 0.0
	for _, value := range data {
		sum += float64(value)
	}
	return sum
}

func Average(data []int) float64 {
	if !isValidData(data) {
		return 0
	}
	return Sum(data) / float64(len(data))
}

func Max(data []int) int {
	if !isValidData(data) {
		return 0
	}
	return slices.Max(data)
}

func Min(data []int) int {
	if !isValidData(data) {
		return 0
	}
	return slices.Min(data)
}

func welfordOf(data []int) *stats.Welford {
	welford := stats.NewWelford()
	for _, value := range data {
		welford.Update(float64(value))
	}
	return welford
}

// StandardDeviation is the sample standard deviation (n-1 denominator).
// It is 0 for fewer than two values.
func StandardDeviation(data []int) float64 {
	if !isValidData(data) || len(data) < 2 {
		return 0
	}
	return welfordOf(data).GetSD()
}

// Variance is the sample variance (n-1 denominator). It is 0 for fewer
// than two values.
func Variance(data []int) float64 {
	if !isValidData(data) || len(data) < 2 {
		return 0
	}
	return welfordOf(data).GetSampleVariance()
}

// Sort returns an ascending copy; data is left untouched.
func Sort(data []int) []int {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sorted
}

func FilterEven(data []int) []int {
	evens := make([]int, 0)
	for _, value := range data {
		if value%2 == 0 {
			evens = append(evens, value)
		}
	}
	return evens
}

func FilterOdd(data []int) []int {
	odds := make([]int, 0)
	for _, value := range data {
		if value%2 != 0 {
			odds = append(odds, value)
		}
	}
	return odds
}

// RemoveDuplicates returns each distinct value once. The order of the
// result is unspecified.
func RemoveDuplicates(data []int) []int {
	unique := make(map[int]struct{}, len(data))
	for _, value := range data {
		unique[value] = struct{}{}
	}
	result := make([]int, 0, len(unique))
	for value := range unique {
		result = append(result, value)
	}
	return result
}

// Median averages the two middle values of an even-sized sample.
func Median(data []int) float64 {
	if !isValidData(data) {
		return 0
	}
	return medianOfSorted(Sort(data))
}

func medianOfSorted(sorted []int) float64 {
	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (float64(sorted[middle-1]) + float64(sorted[middle])) / 2
	}
	return float64(sorted[middle])
}

// Mode returns the most frequent value, the smallest one on ties.
func Mode(data []int) int {
	summary := stats.NewSampleSummary()
	for _, value := range data {
		summary.Append(value)
	}
	return summary.Mode()
}

func Range(data []int) int {
	if !isValidData(data) {
		return 0
	}
	return Max(data) - Min(data)
}

// Outliers returns, in input order, the values whose z-score exceeds
// threshold. A sample with zero spread has no outliers.
func Outliers(data []int, threshold float64) []int {
	outliers := make([]int, 0)
	sd := StandardDeviation(data)
	if sd == 0 {
		return outliers
	}
	mean := Average(data)
	for _, value := range data {
		if math.Abs(float64(value)-mean)/sd > threshold {
			outliers = append(outliers, value)
		}
	}
	return outliers
}
