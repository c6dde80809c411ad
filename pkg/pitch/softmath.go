package pitch

import "math"

// Software floating-point routines backing the portablemath build. They use
// only basic float64 arithmetic plus the raw bit layout (math.Float64bits is
// a bit cast, not a libm call), so the same inputs give the same outputs on
// every platform. They are compiled unconditionally so the default build can
// test them against the standard library.

const (
	softLn2  = 0.6931471805599453
	twoPow52 = 4503599627370496.0 // 2^52; any float64 at or above is integral
	expMask  = 0x7FF
	fracMask = 0x000FFFFFFFFFFFFF
	oneBits  = 0x3FF0000000000000
	expShift = 52
	expBias  = 1023
)

// softPow2 returns 2^x. The exponent is split into integer and fractional
// parts so the exp series only ever runs on an argument below ln2.
func softPow2(x float64) float64 {
	if x != x {
		return x
	}
	n := softFloor(x)
	if n > 1100 {
		return math.Inf(1)
	}
	if n < -1100 {
		return 0
	}

	// exp(f*ln2) with f in [0,1), so the series argument stays below 0.7
	// and 20 terms reach full float64 precision.
	y := (x - n) * softLn2
	sum := 1.0
	term := 1.0
	for i := 1; i < 20; i++ {
		term *= y / float64(i)
		sum += term
	}
	return softScale2(sum, int(n))
}

// softLog2 returns the base-2 logarithm of x for positive finite x.
// The input is decomposed into m * 2^e with m in [1,2); ln(m) comes from the
// atanh series, whose argument never exceeds 1/3 on that interval.
func softLog2(x float64) float64 {
	if x != x || x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return math.Inf(-1)
	}

	bits := math.Float64bits(x)
	exp := int(bits>>expShift&expMask) - expBias
	if exp == -expBias {
		// Subnormal: scale into the normal range first.
		x *= twoPow52
		bits = math.Float64bits(x)
		exp = int(bits>>expShift&expMask) - expBias - expShift
	}
	m := math.Float64frombits(bits&fracMask | oneBits)

	z := (m - 1) / (m + 1)
	zz := z * z
	sum := 0.0
	term := z
	for k := 1; k < 40; k += 2 {
		sum += term / float64(k)
		term *= zz
	}
	return float64(exp) + 2*sum/softLn2
}

// softRound rounds to the nearest integer, ties away from zero, matching
// the standard library's math.Round.
func softRound(x float64) float64 {
	if x != x || x >= twoPow52 || x <= -twoPow52 {
		return x
	}
	t := softTrunc(x)
	switch d := x - t; {
	case d >= 0.5:
		return t + 1
	case d <= -0.5:
		return t - 1
	}
	return t
}

func softTrunc(x float64) float64 {
	if x >= twoPow52 || x <= -twoPow52 {
		return x
	}
	return float64(int64(x))
}

func softFloor(x float64) float64 {
	t := softTrunc(x)
	if x < 0 && t != x {
		return t - 1
	}
	return t
}

// softScale2 multiplies x by 2^n one doubling or halving at a time, which
// also lands subnormal results correctly.
func softScale2(x float64, n int) float64 {
	for ; n > 0; n-- {
		x *= 2
	}
	for ; n < 0; n++ {
		x /= 2
	}
	return x
}
