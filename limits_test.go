// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	badRange      struct{}
	badResolution struct{}
	badRound      struct{}
	q1x11         struct{}
	q1x12         struct{}
	q1x24         struct{}
	q1x25         struct{}
)

func (badRange) Params() Params      { return Params{Range: 0, Resolution: -8} }
func (badResolution) Params() Params { return Params{Range: 8, Resolution: 0} }
func (badRound) Params() Params      { return Params{Range: 8, Resolution: -8, Round: 5} }
func (q1x11) Params() Params         { return Params{Range: 1, Resolution: -11} }
func (q1x12) Params() Params         { return Params{Range: 1, Resolution: -12} }
func (q1x24) Params() Params         { return Params{Range: 1, Resolution: -24} }
func (q1x25) Params() Params         { return Params{Range: 1, Resolution: -25} }

func TestLimits(t *testing.T) {
	a := assert.New(t)
	l := Limits[q15x15]()
	a.Equal(30, l.Digits)
	a.Equal(8, l.Digits10)
	a.Equal(11, l.MaxDigits10)
	a.Equal(2, l.Radix)
	a.True(l.IsSigned)
	a.True(l.IsExact)
	a.True(l.IsBounded)
	a.False(l.IsInteger)
	a.False(l.IsModulo)
	a.False(l.HasInfinity)
	a.False(l.HasQuietNaN)
	a.True(Limits[q7x8Wrap]().IsModulo)
	a.Equal(15, Limits[q7x8]().Digits)
	a.Equal(127, Limits[q10x117]().Digits)

	a.Equal("32767.999969482421875", Max[q15x15]().String())
	a.Equal("0.000030517578125", Epsilon[q15x15]().String())
	a.True(Min[q15x15]().Eq(Epsilon[q15x15]()))
	a.True(Lowest[q15x15]().Eq(Max[q15x15]().Neg()))
	a.Equal("1000000000000001", Lowest[q7x8]().BitPattern())
	a.Equal("0111111111111111", Max[q7x8]().BitPattern())
	a.True(Infinity[q7x8]().IsZero())
	a.True(QuietNaN[q7x8]().IsZero())
	a.Equal("1", One[q10x117]().String())
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Value[q7x8]
		s string
	}{
		{Pi[q7x8](), "3.140625"},
		{HalfPi[q7x8](), "1.5703125"},
		{quarterPi[q7x8](), "0.78515625"},
		{E[q7x8](), "2.71875"},
		{Ln2[q7x8](), "0.69140625"},
		{Ln10[q7x8](), "2.30078125"},
		{Sqrt2[q7x8](), "1.4140625"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.String())
		})
	}
	a.True(Pi[q1x14]().Eq(Max[q1x14]()))
	a.Equal("1.5708007812500000", HalfPi[q1x14]().Decimal().StringFixed(16))
	a.InDelta(3.141592653589793, Pi[q10x117]().Float64(), 1e-15)
	a.InDelta(2.718281828459045, E[q55x200]().Float64(), 1e-15)
	a.InDelta(0.6931471805599453, Ln2[q15x240]().Float64(), 1e-15)
}

func TestParams(t *testing.T) {
	a := assert.New(t)
	a.Equal(16, q7x8{}.Params().Width())
	a.Equal(128, q10x117{}.Params().Width())
	for i, f := range []func(){
		func() { One[badRange]() },
		func() { One[badResolution]() },
		func() { One[badRound]() },
	} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if a.True(ok) {
					a.True(errors.Is(err, ErrParams))
					a.True(Error.Has(err))
				}
			}()
			f()
		})
	}
}

func TestRegime(t *testing.T) {
	a := assert.New(t)
	a.Equal(RegimeLowPolynomial, RegimeOf[q7x8]())
	a.Equal(RegimeLowPolynomial, RegimeOf[q1x11]())
	a.Equal(RegimeMidPolynomial, RegimeOf[q1x12]())
	a.Equal(RegimeMidPolynomial, RegimeOf[q15x16]())
	a.Equal(RegimeMidPolynomial, RegimeOf[q1x24]())
	a.Equal(RegimeIterative, RegimeOf[q1x25]())
	a.Equal(RegimeIterative, RegimeOf[q10x117]())
	a.Equal("low-polynomial", RegimeLowPolynomial.String())
	a.Equal("mid-polynomial", RegimeMidPolynomial.String())
	a.Equal("iterative", RegimeIterative.String())
	a.Equal("Regime(7)", Regime(7).String())
}
