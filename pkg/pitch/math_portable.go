//go:build portablemath

package pitch

// Portable math backend. Every result comes from the software
// implementations in softmath.go, so conversions are bit-for-bit
// reproducible across platforms and math libraries.

func pow2(exp float64) float64 {
	return softPow2(exp)
}

func log2(x float64) float64 {
	return softLog2(x)
}

func round(x float64) float64 {
	return softRound(x)
}
