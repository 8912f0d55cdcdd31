// Package calculator implements basic and advanced arithmetic with a
// single-value memory register.
package calculator

import "math"

// Calculator is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
type Calculator struct {
	memory float64
}

func NewCalculator() *Calculator {
	return &Calculator{
		memory: 0,
	}
}

func (calc *Calculator) Add(a, b float64) float64 {
	return a + b
}

func (calc *Calculator) Subtract(a, b float64) float64 {
	return a - b
}

func (calc *Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide only guards against a zero divisor; a NaN or infinite dividend
// flows through unchecked.
func (calc *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power follows math.Pow, so a negative base with a fractional exponent
// yields NaN.
func (calc *Calculator) Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

func (calc *Calculator) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeInput
	}
	return math.Sqrt(x), nil
}

// Factorial accumulates in float64. Results stop being exact past 22! and
// become +Inf past 170!.
func (calc *Calculator) Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n == 0 || n == 1 {
		return 1, nil
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

func (calc *Calculator) SetMemory(value float64) {
	calc.memory = value
}

func (calc *Calculator) Memory() float64 {
	return calc.memory
}

func (calc *Calculator) ClearMemory() {
	calc.memory = 0
}

// IsValidNumber reports whether x is finite. None of the Calculator
// operations call it.
func IsValidNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
