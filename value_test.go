// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type (
	q7x8     struct{}
	q7x8Near struct{}
	q7x8Sat  struct{}
	q7x8Wrap struct{}
	q7x8Exc  struct{}
	q1x14    struct{}
	q15x15   struct{}
	q15x16   struct{}
	q15x48   struct{}
	q31x32   struct{}
	q10x117  struct{}
	q15x240  struct{}
	q55x200  struct{}
	q63x64   struct{}
)

func (q7x8) Params() Params     { return Params{Range: 7, Resolution: -8} }
func (q7x8Near) Params() Params { return Params{Range: 7, Resolution: -8, Round: RoundNearest} }
func (q7x8Sat) Params() Params  { return Params{Range: 7, Resolution: -8, Overflow: OverflowSaturate} }
func (q7x8Wrap) Params() Params { return Params{Range: 7, Resolution: -8, Overflow: OverflowWrap} }
func (q7x8Exc) Params() Params  { return Params{Range: 7, Resolution: -8, Overflow: OverflowException} }
func (q1x14) Params() Params    { return Params{Range: 1, Resolution: -14} }
func (q15x15) Params() Params   { return Params{Range: 15, Resolution: -15} }
func (q15x16) Params() Params   { return Params{Range: 15, Resolution: -16} }
func (q15x48) Params() Params   { return Params{Range: 15, Resolution: -48} }
func (q31x32) Params() Params   { return Params{Range: 31, Resolution: -32} }
func (q10x117) Params() Params  { return Params{Range: 10, Resolution: -117} }
func (q15x240) Params() Params  { return Params{Range: 15, Resolution: -240} }
func (q55x200) Params() Params  { return Params{Range: 55, Resolution: -200} }
func (q63x64) Params() Params   { return Params{Range: 63, Resolution: -64} }

func raw[F Format](n int64) Value[F] {
	return FromRaw[F](big.NewInt(n))
}

// near checks that got is within tol of want. For |want| > 1 the tolerance is relative.
func near[F Format](a *assert.Assertions, want float64, got Value[F], tol float64, msgAndArgs ...interface{}) bool {
	return a.InDelta(want, got.Float64(), tol*math.Max(1, math.Abs(want)), msgAndArgs...)
}

func TestFromInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(256), FromInt[q7x8](1).Raw().Int64())
	a.Equal(int64(-256), FromInt[q7x8](-1).Raw().Int64())
	a.Equal(int64(32512), FromInt[q7x8](int8(127)).Raw().Int64())
	a.Equal("200", FromInt[q15x16](uint8(200)).String())
	a.Equal("-1234567", FromInt[q31x32](-1234567).String())
	a.Equal("4294967295", FromInt[q63x64](uint32(math.MaxUint32)).String())
	a.Equal("9223372036854775807", FromInt[q63x64](int64(math.MaxInt64)).String())

	a.True(FromInt[q7x8Sat](128).Eq(Max[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](-200).Eq(Lowest[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](uint64(math.MaxUint64)).Eq(Max[q7x8Sat]()))
	a.Equal("-127", FromInt[q7x8Wrap](129).String())
	_, err := Try(func() Value[q7x8Exc] { return FromInt[q7x8Exc](1000) })
	a.True(errors.Is(err, ErrOverflow))
}

func TestFromFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f       float64
		fastest int64
		nearest int64
		err     error
	}{
		{0, 0, 0, nil},
		{1.5, 384, 384, nil},
		{-1.5, -384, -384, nil},
		{0.001, 0, 0, nil},
		{-0.001, -1, 0, nil},
		{0.00195, 0, 0, nil},
		{0.002, 0, 1, nil},
		{-0.002, -1, -1, nil},
		{1.0 / 512, 0, 1, nil},
		{-1.0 / 512, -1, -1, nil},
		{3.0 / 512, 1, 2, nil},
		{math.Inf(1), 0, 0, ErrBadFloat},
		{math.Inf(-1), 0, 0, ErrBadFloat},
		{math.NaN(), 0, 0, ErrBadFloat},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromFloat[q7x8](test.f)
			vn, errn := FromFloat[q7x8Near](test.f)
			if test.err != nil {
				a.True(errors.Is(err, test.err))
				a.True(errors.Is(errn, test.err))
				a.True(Error.Has(err))
				return
			}
			if a.NoError(err) && a.NoError(errn) {
				a.Equal(test.fastest, v.Raw().Int64())
				a.Equal(test.nearest, vn.Raw().Int64())
			}
		})
	}
	a.Panics(func() { MustFromFloat[q7x8](math.NaN()) })
	a.Equal("0.1", MustFromFloat[q10x117](float32(0.1)).Decimal().Round(8).String())
}

func TestFromBigFloat(t *testing.T) {
	a := assert.New(t)
	a.True(FromBigFloat[q7x8Sat](new(big.Float).SetInf(false)).Eq(Max[q7x8Sat]()))
	a.True(FromBigFloat[q7x8Sat](new(big.Float).SetInf(true)).Eq(Lowest[q7x8Sat]()))
	a.True(FromBigFloat[q7x8Sat](big.NewFloat(1e10)).Eq(Max[q7x8Sat]()))
	f, _, err := big.ParseFloat("0.333333333333333333333333333333333333333333", 10, 256, big.ToNearestEven)
	if a.NoError(err) {
		a.True(FromInt[q10x117](1).DivInt(3).Eq(FromBigFloat[q10x117](f)))
	}
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		raw int64
		err string
	}{
		{"0", 0, ""},
		{"1.5", 384, ""},
		{"-0.5", -128, ""},
		{" 2.25 ", 576, ""},
		{`"3"`, 768, ""},
		{"1e1", 2560, ""},
		{"2.5E-1", 64, ""},
		{"0.00390625", 1, ""},
		{"0.00390624", 0, ""},
		{"-0.00390624", -1, ""},
		{"127.99609375", 32767, ""},

		{"", 0, "empty input"},
		{"   ", 0, "empty input"},
		{"1.2.3", 0, "unexpected delimeter at pos 4"},
		{"abc", 0, "unexpected symbol 'a' at pos 1"},
		{" 1-2", 0, "unexpected sign '-' at pos 3"},
		{`"1`, 0, "unterminated quote at pos 1"},
		{"-", 0, "no digits at pos 2"},
		{"1e", 0, "no digits at pos 3"},
		{"e5", 0, "unexpected exponent at pos 1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString[q7x8](test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.raw, v.Raw().Int64())
				}
				return
			}
			if a.Error(err) {
				a.Contains(err.Error(), test.err)
				a.True(errors.Is(err, ErrSyntax))
				a.True(Error.Has(err))
			}
		})
	}
	a.Panics(func() { MustFromString[q7x8]("x") })
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.5", FromDecimal[q7x8](decimal.RequireFromString("1.5")).String())
	a.Equal("1200", FromDecimal[q15x16](decimal.New(12, 2)).String())
	a.Equal(int64(-86), FromDecimal[q7x8](decimal.RequireFromString("-0.333")).Raw().Int64())
	a.Equal(int64(-85), FromDecimal[q7x8Near](decimal.RequireFromString("-0.333")).Raw().Int64())
}

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v string
		s string
	}{
		{raw[q7x8](384).String(), "1.5"},
		{raw[q7x8](-1).String(), "-0.00390625"},
		{raw[q7x8](0).String(), "0"},
		{FromInt[q7x8](-5).String(), "-5"},
		{Max[q15x15]().String(), "32767.999969482421875"},
		{Lowest[q15x15]().String(), "-32767.999969482421875"},
		{Epsilon[q15x16]().String(), "0.0000152587890625"},
		{FromInt[q15x240](0).String(), "0"},
		{FromInt[q55x200](-3).String(), "-3"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v)
		})
	}
}

func TestConversions(t *testing.T) {
	a := assert.New(t)
	v := MustFromString[q7x8]("-1.5")
	a.Equal(int64(-1), v.Int64())
	a.Equal(-1.5, v.Float64())
	a.Equal("1111111010000000", v.BitPattern())
	a.Equal("-1.5", v.Decimal().String())
	bf := v.BigFloat()
	a.Equal("-1.5", bf.Text('f', 1))

	w := MustFromString[q10x117]("-3.75")
	a.Equal(int64(-3), w.Int64())
	a.Equal(-3.75, w.Float64())
	a.InDelta(1.0/3, FromInt[q10x117](1).DivInt(3).Float64(), 1e-15)
	a.Len(w.BitPattern(), 128)
	a.Equal(int64(1)<<62, FromInt[q63x64](1<<62).Int64())
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	v := raw[q7x8](384)
	tests := []struct {
		format string
		s      string
	}{
		{"%v", "1.5"},
		{"%s", "1.5"},
		{"%q", `"1.5"`},
		{"%.3f", "1.500"},
		{"%f", "1.5"},
		{"%b", "0000000110000000"},
		{"%d", "1"},
		{"%8s", "     1.5"},
		{"%-5v|", "1.5  |"},
		{"%#v", "1.5 {7, -8, 0000000110000000}"},
		{"%e", "1.5e+00"},
		{"%.2g", "1.5"},
		{"%x", "%!x(negatable.Value=1.5)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, fmt.Sprintf(test.format, v))
		})
	}
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	defer func() { JSONMode = JSONModeString }()
	type holder struct {
		V Value[q7x8]
	}
	h := holder{V: raw[q7x8](384)}
	tests := []struct {
		mode int
		json string
	}{
		{JSONModeString, `{"V":"1.5"}`},
		{JSONModeNumber, `{"V":1.5}`},
		{JSONModeFloat, `{"V":1.5}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			JSONMode = test.mode
			data, err := json.Marshal(h)
			if a.NoError(err) {
				a.Equal(test.json, string(data))
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data string
		v    Value[q7x8]
		err  bool
	}{
		{`{"V":"1.5"}`, raw[q7x8](384), false},
		{`{"V":-2.25}`, raw[q7x8](-576), false},
		{`{"V":"abc"}`, Value[q7x8]{}, true},
		{`{"V":true}`, Value[q7x8]{}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var h struct {
				V Value[q7x8]
			}
			err := json.Unmarshal([]byte(test.data), &h)
			if test.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.True(test.v.Eq(h.V))
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	f0 := MustFromFloat[q31x32](12345.9)
	f1 := MustFromFloat[q31x32](1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulWide(b *testing.B) {
	f0 := MustFromFloat[q10x117](123.9)
	f1 := MustFromFloat[q10x117](12.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(12345.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(12345.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDiv(b *testing.B) {
	f0 := MustFromFloat[q31x32](12345.9)
	f1 := MustFromFloat[q31x32](1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkDivDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(12345.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}
