//go:build !portablemath

package pitch

import "math"

// Default math backend. The portablemath build tag swaps these for the
// self-contained software implementations in softmath.go, for targets where
// results must not depend on the host math library.

func pow2(exp float64) float64 {
	return math.Pow(2, exp)
}

func log2(x float64) float64 {
	return math.Log2(x)
}

func round(x float64) float64 {
	return math.Round(x)
}
