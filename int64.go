package obfint

import (
	"errors"
	"math"
	"math/big"
)

// Bounds of the values an Int64 can hold, identical to int64's.
const (
	MaxValue int64 = math.MaxInt64
	MinValue int64 = math.MinInt64
)

var (
	// ErrDivideByZero is returned by Div, Mod, DivInt and ModInt when the divisor is zero.
	ErrDivideByZero = errors.New("obfint: division by zero")
	// ErrInvalidLength is returned when binary input is not exactly 8 bytes.
	ErrInvalidLength = errors.New("obfint: value must be exactly 8 bytes")
	// ErrInvalidJSON is returned when JSON input is not a number, a string or null.
	ErrInvalidJSON = errors.New("obfint: invalid JSON value")
)

// Integer lists the widths that convert to int64 without loss.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Number is every plain numeric type an Int64 can be compared with or converted to.
type Number interface {
	Integer | ~uint | ~uint64 | ~uintptr | ~float32 | ~float64
}

// Int64 holds a signed 64-bit integer XOR-masked with a per-instance random key,
// so the plaintext bytes never sit contiguously in memory.
//
// An Int64 is immutable: every operation that produces a new value builds a new
// instance with a fresh mask. Int64 is deliberately not comparable with ==; use
// Equal, Compare or Hash, which work on the decoded value.
//
// The zero value holds 0.
type Int64 struct {
	_      [0]func()
	mask   [8]byte
	masked [8]byte
}

// New returns an Int64 holding v. Every width in Integer widens to int64
// exactly; lossy sources go through the From* constructors.
func New[T Integer](v T) Int64 {
	return encode(int64(v))
}

// encode masks v with 8 fresh bytes from the current Source. mask and masked
// are filled together and never touched again.
func encode(v int64) Int64 {
	var x Int64
	currentSource().Fill(x.mask[:])
	u := uint64(v)
	for i := 0; i < 8; i++ {
		x.masked[i] = byte(u>>(8*i)) ^ x.mask[i]
	}
	return x
}

// Int64 decodes the stored value. It never mutates x.
func (x Int64) Int64() int64 {
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(x.masked[i]^x.mask[i]) << (8 * i)
	}
	return int64(u)
}

// Max returns an Int64 holding MaxValue.
func Max() Int64 { return encode(MaxValue) }

// Min returns an Int64 holding MinValue.
func Min() Int64 { return encode(MinValue) }

// FromUint64 reinterprets v as a two's-complement int64.
// Values above MaxValue wrap to negative numbers.
func FromUint64(v uint64) Int64 {
	return encode(int64(v))
}

// FromUint reinterprets v as a two's-complement int64.
func FromUint(v uint) Int64 {
	return encode(int64(v))
}

// FromFloat64 truncates f toward zero. NaN becomes 0 and values outside the
// int64 range saturate at MinValue or MaxValue.
func FromFloat64(f float64) Int64 {
	return encode(truncFloat(f))
}

// FromFloat32 truncates f toward zero with the same rules as FromFloat64.
func FromFloat32(f float32) Int64 {
	return encode(truncFloat(float64(f)))
}

func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 0x1p63:
		return MaxValue
	case f < -0x1p63:
		return MinValue
	}
	return int64(f)
}

var uint64Mask = new(big.Int).SetUint64(math.MaxUint64)

// FromBigInt keeps the low 64 bits of b in two's complement. A nil b is 0.
func FromBigInt(b *big.Int) Int64 {
	if b == nil {
		return encode(0)
	}
	low := new(big.Int).And(b, uint64Mask)
	return encode(int64(low.Uint64()))
}

// FromBigFloat truncates f toward zero, saturating at the int64 bounds.
// A nil f is 0.
func FromBigFloat(f *big.Float) Int64 {
	if f == nil {
		return encode(0)
	}
	v, _ := f.Int64()
	return encode(v)
}

// Float64 converts the decoded value to float64, rounding to nearest when the
// magnitude exceeds 2^53.
func (x Int64) Float64() float64 { return float64(x.Int64()) }

// Float32 converts the decoded value to float32.
func (x Int64) Float32() float32 { return float32(x.Int64()) }

// BigInt returns the decoded value as a new big.Int.
func (x Int64) BigInt() *big.Int { return big.NewInt(x.Int64()) }

// Narrowing conversions truncate in two's complement, as Go conversions do.

// Int converts to int; on 32-bit platforms the high bits are dropped.
func (x Int64) Int() int { return int(x.Int64()) }

// Int32 keeps the low 32 bits.
func (x Int64) Int32() int32 { return int32(x.Int64()) }

// Int16 keeps the low 16 bits.
func (x Int64) Int16() int16 { return int16(x.Int64()) }

// Int8 keeps the low 8 bits.
func (x Int64) Int8() int8 { return int8(x.Int64()) }

// Uint reinterprets the value as uint.
func (x Int64) Uint() uint { return uint(x.Int64()) }

// Uint64 reinterprets the value as uint64; negative values wrap.
func (x Int64) Uint64() uint64 { return uint64(x.Int64()) }

// Uint32 keeps the low 32 bits.
func (x Int64) Uint32() uint32 { return uint32(x.Int64()) }

// Uint16 keeps the low 16 bits.
func (x Int64) Uint16() uint16 { return uint16(x.Int64()) }

// Uint8 keeps the low 8 bits.
func (x Int64) Uint8() uint8 { return uint8(x.Int64()) }

// As converts the decoded value to T with Go conversion rules.
func As[T Number](x Int64) T {
	return T(x.Int64())
}
