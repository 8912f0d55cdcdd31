package utils

import "math/rand/v2"

// GenerateRandomNumbers draws count integers uniformly from [min, max]
// using a randomly seeded source. Results differ between runs.
func GenerateRandomNumbers(count, min, max int) ([]int, error) {
	return generate(rand.Uint64N, rand.Uint64, count, min, max)
}

// GenerateRandomNumbersFrom draws from r, so a seeded source gives
// reproducible output.
func GenerateRandomNumbersFrom(r *rand.Rand, count, min, max int) ([]int, error) {
	return generate(r.Uint64N, r.Uint64, count, min, max)
}

// generate works on the width of [min, max] as a uint64 so that ranges
// wider than math.MaxInt, up to the whole int domain, stay uniform.
func generate(uint64N func(uint64) uint64, uint64All func() uint64, count, min, max int) ([]int, error) {
	if min > max {
		return nil, ErrInvalidRange
	}
	if count < 0 {
		count = 0
	}
	span := uint64(uint(max-min)) + 1
	numbers := make([]int, count)
	for i := range numbers {
		var offset uint64
		if span == 0 {
			offset = uint64All()
		} else {
			offset = uint64N(span)
		}
		numbers[i] = min + int(offset)
	}
	return numbers, nil
}
