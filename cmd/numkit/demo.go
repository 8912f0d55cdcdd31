package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"numkit/calculator"
	"numkit/dataset"
	"numkit/utils"
)

// runDemo prints the demonstration. Failures inside a section are printed
// as part of the output rather than aborting the run.
func runDemo(w io.Writer, cfg demoConfig) error {
	p := &printer{w: w}

	p.line("=== Testing Codebase ===")
	calculatorSection(p)
	datasetSection(p)
	utilitySection(p, cfg)

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func calculatorSection(p *printer) {
	slog.Debug("running calculator section")
	calc := calculator.NewCalculator()

	p.line("Calculator Test:")
	p.line("5 + 3 = %g", calc.Add(5, 3))
	p.line("10 - 4 = %g", calc.Subtract(10, 4))
	p.line("6 * 7 = %g", calc.Multiply(6, 7))
	if quotient, err := calc.Divide(15, 3); err == nil {
		p.line("15 / 3 = %g", quotient)
	}
	if _, err := calc.Divide(1, 0); err != nil {
		p.line("1 / 0 -> %v", err)
	}
	p.line("2 ^ 10 = %g", calc.Power(2, 10))
	if root, err := calc.SquareRoot(16); err == nil {
		p.line("sqrt(16) = %g", root)
	}
	if fact, err := calc.Factorial(5); err == nil {
		p.line("5! = %g", fact)
	}

	calc.SetMemory(calc.Multiply(6, 7))
	p.line("Memory: %g", calc.Memory())
	calc.ClearMemory()
	p.line("Memory after clear: %g", calc.Memory())
}

func datasetSection(p *printer) {
	slog.Debug("running dataset section")
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	p.line("")
	p.line("Data Processing Test:")
	p.line("Sum: %g", dataset.Sum(numbers))
	p.line("Average: %g", dataset.Average(numbers))
	p.line("Max: %d", dataset.Max(numbers))
	p.line("Min: %d", dataset.Min(numbers))
	p.line("Std dev: %.4f", dataset.StandardDeviation(numbers))
	p.line("Variance: %.4f", dataset.Variance(numbers))
	p.line("Even: %s", utils.FormatInts(dataset.FilterEven(numbers)))
	p.line("Odd: %s", utils.FormatInts(dataset.FilterOdd(numbers)))

	summary := dataset.Describe([]int{4, 8, 15, 16, 23, 42, 8})
	p.line("Median: %g Mode: %d Range: %d", summary.Median, summary.Mode, summary.Range)
	p.line("CV: %.4f", summary.CV)

	text := "The quick fox and the lazy dog and THE end."
	p.line("Tokens: %q", dataset.SplitString("a,,b", ','))
	p.line("Joined: %s", dataset.JoinStrings([]string{"x", "y", "z"}, "-"))
	counts := dataset.CountWords(text)
	for _, word := range dataset.SortedWords(counts) {
		p.line("  %s: %d", word, counts[word])
	}
	for _, wc := range dataset.TopWords(counts, 2) {
		p.line("Top: %s (%d)", wc.Word, wc.Count)
	}
}

func utilitySection(p *printer, cfg demoConfig) {
	slog.Debug("running utility section", "seed", cfg.Seed)
	testString := "Hello World"

	p.line("")
	p.line("Utility Functions Test:")
	p.line("Original: %s", testString)
	p.line("Uppercase: %s", utils.ToUpperCase(testString))
	p.line("Lowercase: %s", utils.ToLowerCase(testString))
	p.line("Reversed: %s", utils.Reverse(testString))
	p.line("Trimmed: %q", utils.Trim("  padded  "))
	p.line("gcd(12, 18) = %d", utils.Gcd(12, 18))
	if lcm, err := utils.Lcm(4, 6); err == nil {
		p.line("lcm(4, 6) = %d", lcm)
	}

	var (
		numbers []int
		err     error
	)
	if cfg.Seed != 0 {
		numbers, err = utils.GenerateRandomNumbersFrom(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), 10, 1, 50)
	} else {
		numbers, err = utils.GenerateRandomNumbers(10, 1, 50)
	}
	if err != nil {
		p.line("random: %v", err)
		return
	}
	p.line("Random: %s", utils.FormatInts(numbers))
	p.line("Reversed: %s", utils.FormatInts(utils.ReverseInts(numbers)))

	primes := make([]int, 0)
	if cache, err := utils.NewPrimeCache(1 << 10); err == nil {
		for _, n := range numbers {
			if cache.IsPrime(n) {
				primes = append(primes, n)
			}
		}
		cache.Close()
	}
	p.line("Primes: %s", utils.FormatInts(primes))

	dir, err := os.MkdirTemp("", "numkit")
	if err != nil {
		slog.Warn("create temp dir", "error", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "demo.txt")
	p.line("Write file: %t", utils.WriteFile(path, testString))
	p.line("File exists: %t", utils.FileExists(path))
	p.line("Read back: %s", utils.ReadFile(path))
}
