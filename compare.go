package obfint

import (
	"cmp"
	"hash/maphash"
)

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Int64) Compare(y Int64) int { return cmp.Compare(x.Int64(), y.Int64()) }

// Equal reports whether x and y hold the same value, whatever their masks.
func (x Int64) Equal(y Int64) bool { return x.Int64() == y.Int64() }

// NotEqual reports whether x and y hold different values.
func (x Int64) NotEqual(y Int64) bool { return x.Int64() != y.Int64() }

// Less reports whether x < y.
func (x Int64) Less(y Int64) bool { return x.Int64() < y.Int64() }

// Greater reports whether x > y.
func (x Int64) Greater(y Int64) bool { return x.Int64() > y.Int64() }

// LessOrEqual reports whether x <= y.
func (x Int64) LessOrEqual(y Int64) bool { return x.Int64() <= y.Int64() }

// GreaterOrEqual reports whether x >= y.
func (x Int64) GreaterOrEqual(y Int64) bool { return x.Int64() >= y.Int64() }

// Compare orders a and b by decoded value, for use with slices.SortFunc.
func Compare(a, b Int64) int { return a.Compare(b) }

// CompareTo compares the decoded value of x with a plain number v.
// Unsigned v is compared exactly, so a negative x is less than any unsigned v.
// Floating point v is compared in float64; a NaN v sorts before every x.
func CompareTo[T Number](x Int64, v T) int {
	a := x.Int64()
	half := 0.5
	if T(half) != 0 {
		return cmp.Compare(float64(a), float64(v))
	}
	var zero T
	if zero-1 > 0 {
		if a < 0 {
			return -1
		}
		return cmp.Compare(uint64(a), uint64(v))
	}
	return cmp.Compare(a, int64(v))
}

// EqualTo reports whether x holds the value v. It is false for a NaN v.
func EqualTo[T Number](x Int64, v T) bool { return !isNaN(v) && CompareTo(x, v) == 0 }

// NotEqualTo reports whether x does not hold the value v. It is true for a NaN v.
func NotEqualTo[T Number](x Int64, v T) bool { return !EqualTo(x, v) }

// LessThan reports whether x < v. It is false for a NaN v.
func LessThan[T Number](x Int64, v T) bool { return !isNaN(v) && CompareTo(x, v) < 0 }

// GreaterThan reports whether x > v. It is false for a NaN v.
func GreaterThan[T Number](x Int64, v T) bool { return !isNaN(v) && CompareTo(x, v) > 0 }

func isNaN[T Number](v T) bool { return v != v }

var hashSeed = maphash.MakeSeed()

// Hash hashes the decoded value. Instances holding the same value hash the same
// within a process regardless of their masks.
func (x Int64) Hash() uint64 {
	return maphash.Comparable(hashSeed, x.Int64())
}
