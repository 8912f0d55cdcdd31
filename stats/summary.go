package stats

// SampleSummary accumulates the order-free statistics of an integer sample:
// count, sum, extremes, value frequencies and a Welford mean/variance.
type SampleSummary struct {
	NumValues  uint64
	Sum        float64
	Min        int
	Max        int
	ValueStats *Welford

	frequencies map[int]int
}

func NewSampleSummary() *SampleSummary {
	return &SampleSummary{
		NumValues:   0,
		Sum:         0,
		ValueStats:  NewWelford(),
		frequencies: make(map[int]int),
	}
}

func (summary *SampleSummary) Append(value int) {
	if summary.NumValues == 0 {
		summary.Min = value
		summary.Max = value
	} else {
		if value < summary.Min {
			summary.Min = value
		}
		if value > summary.Max {
			summary.Max = value
		}
	}

	summary.Sum += float64(value)
	summary.ValueStats.Update(float64(value))
	summary.frequencies[value]++
	summary.NumValues++
}

// Mode returns the most frequent value, preferring the smallest on ties.
// It is 0 for an empty summary.
func (summary *SampleSummary) Mode() int {
	mode, best := 0, 0
	for value, count := range summary.frequencies {
		if count > best || (count == best && value < mode) {
			mode, best = value, count
		}
	}
	return mode
}
