// Package numeric provides the fixed-width wrapping integer and
// IEEE-754 float primitives that quill's wire boundary is specified
// against.
//
// Integer arithmetic wraps silently on overflow (two's complement):
// AddInt32-style overflow produces MinInt32, Neg and Abs leave the
// most negative value unchanged, and division truncates toward
// negative infinity (FloorDiv(-7, 2) == -4). Float operations follow
// IEEE-754: NaN propagates and signed zero is preserved.
package numeric
