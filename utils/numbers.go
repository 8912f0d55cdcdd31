package utils

func IsEven(n int) bool {
	return n%2 == 0
}

func IsOdd(n int) bool {
	return n%2 != 0
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Gcd follows Go's remainder semantics, so negative inputs can produce a
// negative result.
func Gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm fails only when gcd(a, b) is zero, that is when both are zero.
func Lcm(a, b int) (int, error) {
	gcd := Gcd(a, b)
	if gcd == 0 {
		return 0, ErrDivideByZero
	}
	return (a / gcd) * b, nil
}
