// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b     string
		sum, sub string
	}{
		{"1.5", "2.25", "3.75", "-0.75"},
		{"-1", "0.5", "-0.5", "-1.5"},
		{"0", "0", "0", "0"},
		{"127", "0.99609375", "127.99609375", "126.00390625"},
		{"-0.00390625", "0.00390625", "0", "-0.0078125"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := MustFromString[q7x8](test.a), MustFromString[q7x8](test.b)
			a.Equal(test.sum, x.Add(y).String())
			a.Equal(test.sub, x.Sub(y).String())
		})
	}
}

func TestOverflowModes(t *testing.T) {
	a := assert.New(t)

	a.Equal("-127.5", MustFromString[q7x8Wrap]("127.5").Add(FromInt[q7x8Wrap](1)).String())
	a.Equal("127.5", MustFromString[q7x8Wrap]("-127.5").Sub(FromInt[q7x8Wrap](1)).String())
	a.Equal("-127.5", MustFromString[q7x8]("127.5").Add(FromInt[q7x8](1)).String())

	a.True(FromInt[q7x8Sat](127).Add(FromInt[q7x8Sat](1)).Eq(Max[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](-127).Sub(FromInt[q7x8Sat](2)).Eq(Lowest[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](64).MulInt(3).Eq(Max[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](-64).Mul(FromInt[q7x8Sat](4)).Eq(Lowest[q7x8Sat]()))
	a.True(FromInt[q7x8Sat](100).Lsh(1).Eq(Max[q7x8Sat]()))
	a.True(Lowest[q7x8Sat]().Dec().Eq(Lowest[q7x8Sat]()))
	a.Equal("127.99609375", Lowest[q7x8Sat]().Neg().String())

	v, err := Try(func() Value[q7x8Exc] {
		return FromInt[q7x8Exc](100).Add(FromInt[q7x8Exc](100))
	})
	a.True(errors.Is(err, ErrOverflow))
	a.True(Error.Has(err))
	a.True(v.IsZero())

	v, err = Try(func() Value[q7x8Exc] {
		return FromInt[q7x8Exc](100).Add(FromInt[q7x8Exc](27))
	})
	a.NoError(err)
	a.Equal("127", v.String())

	_, err = Try(func() Value[q7x8Exc] {
		return FromInt[q7x8Exc](-100).MulInt(2)
	})
	a.True(errors.Is(err, ErrOverflow))

	a.Panics(func() {
		_, _ = Try(func() Value[q7x8Exc] { panic("unrelated") })
	})
	a.Panics(func() {
		_, _ = Try(func() Value[q7x8Exc] { panic(errors.New("unrelated")) })
	})
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b             int64
		fastest, nearest int64
	}{
		{384, 384, 576, 576},
		{1, 128, 0, 1},
		{-1, 128, -1, -1},
		{3, 64, 0, 1},
		{-3, 64, -1, -1},
		{5, 25, 0, 0},
		{-5, 25, -1, 0},
		{-256, -256, 256, 256},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.fastest, raw[q7x8](test.a).Mul(raw[q7x8](test.b)).Raw().Int64())
			a.Equal(test.nearest, raw[q7x8Near](test.a).Mul(raw[q7x8Near](test.b)).Raw().Int64())
		})
	}
	a.Equal("4.5", MustFromString[q7x8]("1.5").MulInt(3).String())
	a.Equal("-4.5", MustFromString[q7x8]("1.5").MulInt(-3).String())
	x := MustFromString[q10x117]("1.5")
	a.Equal("2.25", x.Mul(x).String())
	a.Equal("-6.75", x.Mul(x).Mul(FromInt[q10x117](-3)).String())
}

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b             int64
		fastest, nearest int64
	}{
		{256, 768, 85, 85},
		{512, 768, 170, 171},
		{-256, 768, -86, -85},
		{-512, 768, -171, -171},
		{768, 512, 384, 384},
		{1, 512, 0, 1},
		{-1, 512, -1, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.fastest, raw[q7x8](test.a).Div(raw[q7x8](test.b)).Raw().Int64())
			a.Equal(test.nearest, raw[q7x8Near](test.a).Div(raw[q7x8Near](test.b)).Raw().Int64())
		})
	}
	a.True(One[q7x8]().Div(Value[q7x8]{}).Eq(Max[q7x8]()))
	a.True(One[q7x8]().Neg().Div(Value[q7x8]{}).Eq(Lowest[q7x8]()))
	a.True(Value[q7x8]{}.Div(Value[q7x8]{}).Eq(Max[q7x8]()))
	a.True(One[q7x8]().DivInt(0).Eq(Max[q7x8]()))
	a.True(One[q10x117]().Neg().Div(Value[q10x117]{}).Eq(Lowest[q10x117]()))
	a.Equal(int64(85), One[q7x8]().DivInt(3).Raw().Int64())
	a.Equal(int64(-86), One[q7x8]().DivInt(-3).Raw().Int64())
	a.Equal(int64(-85), One[q7x8Near]().DivInt(-3).Raw().Int64())
	a.Equal("0.25", FromInt[q55x200](1).Div(FromInt[q55x200](4)).String())
}

func TestShifts(t *testing.T) {
	a := assert.New(t)
	v := MustFromString[q7x8]("1.5")
	a.Equal("6", v.Lsh(2).String())
	a.Equal("0.375", v.Rsh(2).String())
	a.Equal("1.5", v.Rsh(0).String())
	a.Equal(int64(1), raw[q7x8](3).Rsh(1).Raw().Int64())
	a.Equal(int64(-2), raw[q7x8](-3).Rsh(1).Raw().Int64())
	a.Equal(int64(2), raw[q7x8Near](3).Rsh(1).Raw().Int64())
	a.Equal(int64(-2), raw[q7x8Near](-3).Rsh(1).Raw().Int64())
	a.Equal(int64(1), raw[q7x8Near](5).Rsh(2).Raw().Int64())
	a.True(raw[q7x8Near](5).Rsh(100).IsZero())
	a.Equal(int64(-1), raw[q7x8](-5).Rsh(100).Raw().Int64())
	a.Equal("-6", FromInt[q15x240](-3).Lsh(1).String())
	a.Equal("-0.75", FromInt[q15x240](-3).Rsh(2).String())
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b string
		cmp  int
	}{
		{"1", "1", 0},
		{"1", "1.00390625", -1},
		{"-1", "-1.00390625", 1},
		{"0", "-0.00390625", 1},
		{"-127", "127", -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, y := MustFromString[q7x8](test.a), MustFromString[q7x8](test.b)
			a.Equal(test.cmp, x.Cmp(y))
			a.Equal(-test.cmp, y.Cmp(x))
			a.Equal(test.cmp == 0, x.Eq(y))
			a.Equal(test.cmp < 0, x.Lt(y))
			a.Equal(test.cmp <= 0, x.Le(y))
			a.Equal(test.cmp > 0, x.Gt(y))
			a.Equal(test.cmp >= 0, x.Ge(y))
			xw, yw := MustFromString[q15x240](test.a), MustFromString[q15x240](test.b)
			a.Equal(test.cmp, xw.Cmp(yw))
		})
	}
	a.Equal(-1, FromInt[q7x8](-3).Sign())
	a.Equal(0, Value[q7x8]{}.Sign())
	a.Equal(1, Epsilon[q7x8]().Sign())
	a.True(Value[q10x117]{}.IsZero())
	a.Equal(-1, Max[q7x8]().cmpInt(1000))
	a.Equal(1, Max[q7x8]().cmpInt(-1000))
	a.Equal(0, FromInt[q7x8](5).cmpInt(5))
}

func TestNegAbs(t *testing.T) {
	a := assert.New(t)
	a.Equal("-1.5", MustFromString[q7x8]("1.5").Neg().String())
	a.Equal("1.5", MustFromString[q7x8]("-1.5").Abs().String())
	a.Equal("1.5", Abs(MustFromString[q7x8]("-1.5")).String())
	a.True(Value[q7x8]{}.Neg().IsZero())
	a.True(Max[q7x8]().Neg().Eq(Lowest[q7x8]()))
	a.True(Max[q63x64]().Neg().Eq(Lowest[q63x64]()))
	a.Equal("2.5", MustFromString[q7x8]("1.5").Inc().String())
	a.Equal("0.5", MustFromString[q7x8]("1.5").Dec().String())
}
