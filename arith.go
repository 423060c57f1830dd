package obfint

// Operations between two Int64 values decode both operands, compute with
// native int64 semantics including wraparound, and return a freshly masked
// Int64.

// Add returns x + y.
func (x Int64) Add(y Int64) Int64 { return encode(x.Int64() + y.Int64()) }

// Sub returns x - y.
func (x Int64) Sub(y Int64) Int64 { return encode(x.Int64() - y.Int64()) }

// Mul returns x * y.
func (x Int64) Mul(y Int64) Int64 { return encode(x.Int64() * y.Int64()) }

// Div returns x / y truncated toward zero. MinValue / -1 wraps to MinValue.
func (x Int64) Div(y Int64) (Int64, error) {
	d := y.Int64()
	if d == 0 {
		return Int64{}, ErrDivideByZero
	}
	return encode(x.Int64() / d), nil
}

// Mod returns the remainder of x / y, with the sign of x.
func (x Int64) Mod(y Int64) (Int64, error) {
	d := y.Int64()
	if d == 0 {
		return Int64{}, ErrDivideByZero
	}
	return encode(x.Int64() % d), nil
}

// And returns the bitwise x & y.
func (x Int64) And(y Int64) Int64 { return encode(x.Int64() & y.Int64()) }

// Or returns the bitwise x | y.
func (x Int64) Or(y Int64) Int64 { return encode(x.Int64() | y.Int64()) }

// Xor returns the bitwise x ^ y.
func (x Int64) Xor(y Int64) Int64 { return encode(x.Int64() ^ y.Int64()) }

// AndNot returns the bit clear x &^ y.
func (x Int64) AndNot(y Int64) Int64 { return encode(x.Int64() &^ y.Int64()) }

// Neg returns -x. Neg of MinValue is MinValue.
func (x Int64) Neg() Int64 { return encode(-x.Int64()) }

// Not returns the bitwise complement ^x.
func (x Int64) Not() Int64 { return encode(^x.Int64()) }

// Inc returns x + 1 in a new instance; x itself is unchanged.
func (x Int64) Inc() Int64 { return encode(x.Int64() + 1) }

// Dec returns x - 1 in a new instance; x itself is unchanged.
func (x Int64) Dec() Int64 { return encode(x.Int64() - 1) }

// Abs returns |x|. Abs of MinValue is MinValue.
func (x Int64) Abs() Int64 {
	v := x.Int64()
	if v < 0 {
		v = -v
	}
	return encode(v)
}

// Lsh shifts left by n bits.
func (x Int64) Lsh(n uint) Int64 { return encode(x.Int64() << n) }

// Rsh is an arithmetic shift right by n bits.
func (x Int64) Rsh(n uint) Int64 { return encode(x.Int64() >> n) }

// Mixed operations with a plain integer return a plain int64: the result
// leaves the obfuscated domain.

// AddInt returns x + v as a plain int64.
func AddInt[T Integer](x Int64, v T) int64 { return x.Int64() + int64(v) }

// SubInt returns x - v as a plain int64.
func SubInt[T Integer](x Int64, v T) int64 { return x.Int64() - int64(v) }

// MulInt returns x * v as a plain int64.
func MulInt[T Integer](x Int64, v T) int64 { return x.Int64() * int64(v) }

// AndInt returns x & v as a plain int64.
func AndInt[T Integer](x Int64, v T) int64 { return x.Int64() & int64(v) }

// OrInt returns x | v as a plain int64.
func OrInt[T Integer](x Int64, v T) int64 { return x.Int64() | int64(v) }

// XorInt returns x ^ v as a plain int64.
func XorInt[T Integer](x Int64, v T) int64 { return x.Int64() ^ int64(v) }

// DivInt returns x / v truncated toward zero as a plain int64, or
// ErrDivideByZero when v is 0.
func DivInt[T Integer](x Int64, v T) (int64, error) {
	d := int64(v)
	if d == 0 {
		return 0, ErrDivideByZero
	}
	return x.Int64() / d, nil
}

// ModInt returns the remainder of x / v as a plain int64, or ErrDivideByZero
// when v is 0.
func ModInt[T Integer](x Int64, v T) (int64, error) {
	d := int64(v)
	if d == 0 {
		return 0, ErrDivideByZero
	}
	return x.Int64() % d, nil
}
