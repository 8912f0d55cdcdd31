package calculator

import (
	"errors"
	"math"
	"numkit/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Basic(t *testing.T) {
	calc := NewCalculator()

	utils.AssertEqual(t, calc.Add(5, 3), 8.0)
	utils.AssertEqual(t, calc.Subtract(10, 4), 6.0)
	utils.AssertEqual(t, calc.Multiply(6, 7), 42.0)
	utils.AssertEqual(t, calc.Add(-2.5, 2.5), 0.0)
}

func TestCalculator_Divide(t *testing.T) {
	calc := NewCalculator()

	value, err := calc.Divide(15, 3)
	require.NoError(t, err)
	utils.AssertEqual(t, value, 5.0)

	value, err = calc.Divide(1, 3)
	require.NoError(t, err)
	utils.AssertClose(t, value, 0.333333, 1e-6)

	for _, a := range []float64{0, 1, -7.5, math.MaxFloat64} {
		_, err = calc.Divide(a, 0)
		assert.True(t, errors.Is(err, ErrDivisionByZero))
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestCalculator_Divide_NaNDividendPassesThrough(t *testing.T) {
	calc := NewCalculator()

	value, err := calc.Divide(math.NaN(), 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value))
}

func TestCalculator_Power(t *testing.T) {
	calc := NewCalculator()

	utils.AssertEqual(t, calc.Power(2, 10), 1024.0)
	utils.AssertEqual(t, calc.Power(9, 0.5), 3.0)
	utils.AssertEqual(t, calc.Power(5, 0), 1.0)
	assert.True(t, math.IsNaN(calc.Power(-8, 1.0/3)))
}

func TestCalculator_SquareRoot(t *testing.T) {
	calc := NewCalculator()

	for _, x := range []float64{0, 1, 2, 16, 12345.678} {
		root, err := calc.SquareRoot(x)
		require.NoError(t, err)
		utils.AssertClose(t, root*root, x, 1e-9)
	}

	_, err := calc.SquareRoot(-1)
	assert.True(t, errors.Is(err, ErrNegativeInput))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCalculator_Factorial(t *testing.T) {
	calc := NewCalculator()

	expected := map[int]float64{
		0:  1,
		1:  1,
		5:  120,
		10: 3628800,
	}
	for n, want := range expected {
		got, err := calc.Factorial(n)
		require.NoError(t, err)
		utils.AssertEqual(t, got, want)
	}

	big, err := calc.Factorial(171)
	require.NoError(t, err)
	assert.True(t, math.IsInf(big, 1))

	_, err = calc.Factorial(-1)
	assert.True(t, errors.Is(err, ErrNegativeInput))
}

func TestCalculator_Memory(t *testing.T) {
	calc := NewCalculator()
	utils.AssertEqual(t, calc.Memory(), 0.0)

	calc.SetMemory(42.5)
	utils.AssertEqual(t, calc.Memory(), 42.5)

	calc.SetMemory(-1)
	utils.AssertEqual(t, calc.Memory(), -1.0)

	calc.ClearMemory()
	utils.AssertEqual(t, calc.Memory(), 0.0)

	other := NewCalculator()
	calc.SetMemory(7)
	utils.AssertEqual(t, other.Memory(), 0.0)
}

func TestIsValidNumber(t *testing.T) {
	assert.True(t, IsValidNumber(0))
	assert.True(t, IsValidNumber(-1e300))
	assert.False(t, IsValidNumber(math.NaN()))
	assert.False(t, IsValidNumber(math.Inf(1)))
	assert.False(t, IsValidNumber(math.Inf(-1)))
}
