package obfint

import (
	"math"
	"math/big"
	"testing"

	"github.com/NebulousLabs/fastrand"
)

var edgeValues = []int64{
	0, 1, -1, 2, -2, 42, -42, 255, 256, -256,
	math.MaxInt8, math.MinInt8, math.MaxInt16, math.MinInt16,
	math.MaxInt32, math.MinInt32, math.MaxUint32,
	1 << 53, -(1 << 53),
	MaxValue, MinValue, MaxValue - 1, MinValue + 1,
	0x0102030405060708, -0x0102030405060708,
}

// randomValues returns n values drawn from fastrand, independent of the mask source.
func randomValues(n int) []int64 {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(fastrand.Uint64n(math.MaxUint64))
	}
	return vals
}

// plainBytes is the little-endian layout masked bytes are derived from.
func plainBytes(v int64) [8]byte {
	var b [8]byte
	for i := range b {
		b[i] = byte(uint64(v) >> (8 * i))
	}
	return b
}

func TestInt64(t *testing.T) {
	t.Run("RoundTrip", testInt64RoundTrip)
	t.Run("ZeroValue", testInt64ZeroValue)
	t.Run("MaskNonDeterminism", testInt64MaskNonDeterminism)
	t.Run("MaskApplied", testInt64MaskApplied)
	t.Run("DecodeIsPure", testInt64DecodeIsPure)
	t.Run("Bounds", testInt64Bounds)
}

func testInt64RoundTrip(t *testing.T) {
	vals := append(append([]int64{}, edgeValues...), randomValues(1000)...)
	for _, v := range vals {
		if got := New(v).Int64(); got != v {
			t.Errorf("New(%d).Int64() = %d", v, got)
		}
	}
}

func testInt64ZeroValue(t *testing.T) {
	var x Int64
	if got := x.Int64(); got != 0 {
		t.Errorf("zero Int64 decodes to %d, want 0", got)
	}
	if !x.Equal(New(0)) {
		t.Error("zero Int64 should equal New(0)")
	}
}

func testInt64MaskNonDeterminism(t *testing.T) {
	for _, v := range edgeValues {
		const n = 32
		first := New(v)
		allSame := true
		for i := 0; i < n; i++ {
			x := New(v)
			if x.Int64() != v {
				t.Fatalf("New(%d) decoded to %d", v, x.Int64())
			}
			if x.mask != first.mask {
				allSame = false
			}
		}
		if allSame {
			t.Errorf("New(%d): %d constructions produced the same mask", v, n)
		}
	}
}

func testInt64MaskApplied(t *testing.T) {
	a, b := New(int64(0x1122334455667788)), New(int64(-0x0f0f0f0f0f0f0f0f))
	results := map[string]Int64{
		"Add":    a.Add(b),
		"Sub":    a.Sub(b),
		"Mul":    a.Mul(b),
		"And":    a.And(b),
		"Or":     a.Or(b),
		"Xor":    a.Xor(b),
		"AndNot": a.AndNot(b),
		"Neg":    a.Neg(),
		"Not":    a.Not(),
		"Lsh":    a.Lsh(3),
	}
	for name, x := range results {
		plain := plainBytes(x.Int64())
		if x.masked == plain {
			t.Errorf("%s: masked bytes equal the plaintext bytes %x", name, plain)
		}
		if x.mask == [8]byte{} {
			t.Errorf("%s: mask is all zero", name)
		}
	}
}

func testInt64DecodeIsPure(t *testing.T) {
	x := New(int64(987654321))
	mask, masked := x.mask, x.masked
	for i := 0; i < 10; i++ {
		if x.Int64() != 987654321 {
			t.Fatal("repeated decode changed the value")
		}
	}
	if x.mask != mask || x.masked != masked {
		t.Error("decode mutated the representation")
	}
}

func testInt64Bounds(t *testing.T) {
	if MaxValue != math.MaxInt64 {
		t.Errorf("MaxValue = %d, want %d", MaxValue, int64(math.MaxInt64))
	}
	if MinValue != math.MinInt64 {
		t.Errorf("MinValue = %d, want %d", MinValue, int64(math.MinInt64))
	}
	if Max().Int64() != math.MaxInt64 {
		t.Errorf("Max() = %d", Max().Int64())
	}
	if Min().Int64() != math.MinInt64 {
		t.Errorf("Min() = %d", Min().Int64())
	}
}

type score int16

func TestNewWidths(t *testing.T) {
	checks := []struct {
		name string
		got  Int64
		want int64
	}{
		{"int8", New(int8(-128)), -128},
		{"uint8", New(uint8(255)), 255},
		{"int16", New(int16(-32768)), -32768},
		{"uint16", New(uint16(65535)), 65535},
		{"int32", New(int32(math.MinInt32)), math.MinInt32},
		{"uint32", New(uint32(math.MaxUint32)), math.MaxUint32},
		{"int", New(int(-7)), -7},
		{"named", New(score(1200)), 1200},
		{"untyped", New(5), 5},
	}
	for _, c := range checks {
		if got := c.got.Int64(); got != c.want {
			t.Errorf("New(%s) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestLossyConstructors(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		if got := FromUint64(math.MaxUint64).Int64(); got != -1 {
			t.Errorf("FromUint64(MaxUint64) = %d, want -1", got)
		}
		if got := FromUint64(1 << 63).Int64(); got != MinValue {
			t.Errorf("FromUint64(1<<63) = %d, want %d", got, MinValue)
		}
		if got := FromUint(12).Int64(); got != 12 {
			t.Errorf("FromUint(12) = %d", got)
		}
	})
	t.Run("Float", func(t *testing.T) {
		floats := []struct {
			in   float64
			want int64
		}{
			{3.99, 3},
			{-3.99, -3},
			{0.5, 0},
			{math.NaN(), 0},
			{math.Inf(1), MaxValue},
			{math.Inf(-1), MinValue},
			{1e19, MaxValue},
			{-1e19, MinValue},
			{-0x1p63, MinValue},
			{0x1p62, 1 << 62},
		}
		for _, f := range floats {
			if got := FromFloat64(f.in).Int64(); got != f.want {
				t.Errorf("FromFloat64(%v) = %d, want %d", f.in, got, f.want)
			}
		}
		if got := FromFloat32(-2.75).Int64(); got != -2 {
			t.Errorf("FromFloat32(-2.75) = %d, want -2", got)
		}
		if got := FromFloat32(float32(math.Inf(1))).Int64(); got != MaxValue {
			t.Errorf("FromFloat32(+Inf) = %d, want MaxValue", got)
		}
	})
	t.Run("BigInt", func(t *testing.T) {
		huge, _ := new(big.Int).SetString("18446744073709551621", 10) // 2^64 + 5
		neg, _ := new(big.Int).SetString("-18446744073709551617", 10) // -(2^64 + 1)
		checks := []struct {
			in   *big.Int
			want int64
		}{
			{nil, 0},
			{big.NewInt(-9), -9},
			{huge, 5},
			{neg, -1},
			{new(big.Int).SetUint64(math.MaxUint64), -1},
		}
		for _, c := range checks {
			if got := FromBigInt(c.in).Int64(); got != c.want {
				t.Errorf("FromBigInt(%v) = %d, want %d", c.in, got, c.want)
			}
		}
	})
	t.Run("BigFloat", func(t *testing.T) {
		if got := FromBigFloat(big.NewFloat(-12.9)).Int64(); got != -12 {
			t.Errorf("FromBigFloat(-12.9) = %d, want -12", got)
		}
		if got := FromBigFloat(big.NewFloat(1e30)).Int64(); got != MaxValue {
			t.Errorf("FromBigFloat(1e30) = %d, want MaxValue", got)
		}
		if got := FromBigFloat(nil).Int64(); got != 0 {
			t.Errorf("FromBigFloat(nil) = %d, want 0", got)
		}
	})
}

func TestConversions(t *testing.T) {
	v := int64(300)
	x := New(v)
	if got, want := x.Int8(), int8(v); got != want {
		t.Errorf("Int8() = %d, want %d", got, want)
	}
	if got := x.Int8(); got != 44 {
		t.Errorf("Int8() = %d, want 44", got)
	}
	if got, want := x.Uint8(), uint8(v); got != want {
		t.Errorf("Uint8() = %d, want %d", got, want)
	}

	for _, v := range append(append([]int64{}, edgeValues...), randomValues(200)...) {
		x := New(v)
		switch {
		case x.Int() != int(v):
			t.Errorf("Int(%d) = %d", v, x.Int())
		case x.Int32() != int32(v):
			t.Errorf("Int32(%d) = %d", v, x.Int32())
		case x.Int16() != int16(v):
			t.Errorf("Int16(%d) = %d", v, x.Int16())
		case x.Int8() != int8(v):
			t.Errorf("Int8(%d) = %d", v, x.Int8())
		case x.Uint() != uint(v):
			t.Errorf("Uint(%d) = %d", v, x.Uint())
		case x.Uint64() != uint64(v):
			t.Errorf("Uint64(%d) = %d", v, x.Uint64())
		case x.Uint32() != uint32(v):
			t.Errorf("Uint32(%d) = %d", v, x.Uint32())
		case x.Uint16() != uint16(v):
			t.Errorf("Uint16(%d) = %d", v, x.Uint16())
		case x.Float64() != float64(v):
			t.Errorf("Float64(%d) = %v", v, x.Float64())
		case x.Float32() != float32(v):
			t.Errorf("Float32(%d) = %v", v, x.Float32())
		case x.BigInt().Int64() != v:
			t.Errorf("BigInt(%d) = %v", v, x.BigInt())
		case As[int16](x) != int16(v):
			t.Errorf("As[int16](%d) = %d", v, As[int16](x))
		case As[float64](x) != float64(v):
			t.Errorf("As[float64](%d) = %v", v, As[float64](x))
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(int64(i))
	}
}

func BenchmarkNewParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		var i int64
		for pb.Next() {
			_ = New(i)
			i++
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	x := New(int64(1234567890))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Int64()
	}
}
