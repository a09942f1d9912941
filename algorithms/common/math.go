package common

// IsPowerOfTwo reports whether n is a positive power of two
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to n.
// Values below 1 map to 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Log2 returns log2(n) for a power-of-two n
func Log2(n int) int {
	order := 0
	for p := 1; p < n; p <<= 1 {
		order++
	}
	return order
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Energy computes the sum of squared values
func Energy(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	return sum
}

// CeilDiv returns ceil(a/b) for positive integers
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
