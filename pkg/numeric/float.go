package numeric

import "math"

// Float is the constraint for the IEEE-754 types the wire boundary
// carries.
type Float interface {
	~float32 | ~float64
}

// FAdd returns a + b under IEEE-754 semantics.
func FAdd[F Float](a, b F) F {
	return a + b
}

// FSub returns a - b under IEEE-754 semantics.
func FSub[F Float](a, b F) F {
	return a - b
}

// FMul returns a * b under IEEE-754 semantics.
func FMul[F Float](a, b F) F {
	return a * b
}

// FDiv returns a / b under IEEE-754 semantics: division by zero yields
// an infinity, 0/0 yields NaN.
func FDiv[F Float](a, b F) F {
	return a / b
}

// FNeg returns v with its sign flipped. FNeg(0) is negative zero.
func FNeg[F Float](v F) F {
	return -v
}

// FAbs returns the absolute value of v. Negative zero maps to
// positive zero; NaN passes through.
func FAbs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	if v == 0 {
		return 0
	}
	return v
}

// FMin returns the smaller of a and b using the x < y comparison form:
// FMin(NaN, 5) == 5 but FMin(5, NaN) is NaN.
func FMin[F Float](a, b F) F {
	if a < b {
		return a
	}
	return b
}

// FMax returns the larger of a and b using the x > y comparison form,
// with the same NaN asymmetry as FMin.
func FMax[F Float](a, b F) F {
	if a > b {
		return a
	}
	return b
}

// FClamp limits v to the inclusive range [lo, hi].
func FClamp[F Float](v, lo, hi F) F {
	return FMax(lo, FMin(hi, v))
}

// FPow returns a raised to the power b. Intermediate computation is
// float64; float32 results are rounded once on the way out.
func FPow[F Float](a, b F) F {
	return F(math.Pow(float64(a), float64(b)))
}
