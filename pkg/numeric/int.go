package numeric

// Integer is the constraint for the fixed-width signed types the wire
// boundary carries.
type Integer interface {
	~int32 | ~int64
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Add returns a + b with two's-complement wrapping.
func Add[T Integer](a, b T) T {
	return a + b
}

// Sub returns a - b with two's-complement wrapping.
func Sub[T Integer](a, b T) T {
	return a - b
}

// Mul returns a * b with two's-complement wrapping.
func Mul[T Integer](a, b T) T {
	return a * b
}

// Neg returns -v. The most negative value has no positive counterpart
// and is returned unchanged.
func Neg[T Integer](v T) T {
	return -v
}

// Abs returns the absolute value of v. The most negative value is
// returned unchanged.
func Abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T Integer](v, lo, hi T) T {
	return Max(lo, Min(hi, v))
}

// FloorDiv returns a / b truncated toward negative infinity:
// FloorDiv(-7, 2) == -4. Division by zero panics, matching Go's
// native division. MinInt / -1 wraps to MinInt.
func FloorDiv[T Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv. The result has the sign
// of b: FloorMod(-7, 2) == 1.
func FloorMod[T Integer](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// Eq reports a == b.
func Eq[T Integer](a, b T) bool {
	return a == b
}

// Ne reports a != b.
func Ne[T Integer](a, b T) bool {
	return a != b
}

// Lt reports a < b.
func Lt[T Integer](a, b T) bool {
	return a < b
}

// Le reports a <= b.
func Le[T Integer](a, b T) bool {
	return a <= b
}

// Gt reports a > b.
func Gt[T Integer](a, b T) bool {
	return a > b
}

// Ge reports a >= b.
func Ge[T Integer](a, b T) bool {
	return a >= b
}

// BitAnd returns a & b.
func BitAnd[T Integer](a, b T) T {
	return a & b
}

// BitOr returns a | b.
func BitOr[T Integer](a, b T) T {
	return a | b
}

// BitXor returns a ^ b.
func BitXor[T Integer](a, b T) T {
	return a ^ b
}

// BitNot returns the bitwise complement of v.
func BitNot[T Integer](v T) T {
	return ^v
}

// ShlInt32 shifts v left by count bits. The count is masked to the
// type width, matching hardware shift semantics.
func ShlInt32(v int32, count uint) int32 {
	return v << (count & 31)
}

// ShrInt32 shifts v right arithmetically by count bits, masked to the
// type width.
func ShrInt32(v int32, count uint) int32 {
	return v >> (count & 31)
}

// ShlInt64 shifts v left by count bits, masked to the type width.
func ShlInt64(v int64, count uint) int64 {
	return v << (count & 63)
}

// ShrInt64 shifts v right arithmetically by count bits, masked to the
// type width.
func ShrInt64(v int64, count uint) int64 {
	return v >> (count & 63)
}

// Gcd returns the greatest common divisor of a and b by magnitude.
// Gcd(0, 0) is 0.
func Gcd[T Integer](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fib returns the n-th Fibonacci number in wrapping int32 arithmetic.
// Fib(0) == 0, Fib(1) == 1; values past Fib(46) wrap.
func Fib(n int32) int32 {
	if n <= 0 {
		return 0
	}
	var a, b int32 = 0, 1
	for i := int32(1); i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// Factorial returns n! in wrapping int32 arithmetic:
// Factorial(13) == 1932053504.
func Factorial(n int32) int32 {
	var product int32 = 1
	for i := int32(2); i <= n; i++ {
		product *= i
	}
	return product
}
