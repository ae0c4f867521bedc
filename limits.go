// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"math/big"

	"github.com/avdva/negatable/internal/consts"
	"github.com/avdva/negatable/internal/mathutil"
)

const radix = 2

// LimitsInfo describes the properties of a format.
type LimitsInfo struct {
	// Digits is the number of radix digits, excluding the sign.
	Digits int
	// Digits10 is the number of decimal digits that survive a round trip through the format.
	Digits10 int
	// MaxDigits10 is the number of decimal digits needed to tell apart all values.
	MaxDigits10 int
	Radix       int

	IsSigned    bool
	IsInteger   bool
	IsExact     bool
	IsBounded   bool
	IsModulo    bool
	HasInfinity bool
	HasQuietNaN bool
}

// Limits returns the properties of format F.
func Limits[F Format]() LimitsInfo {
	l := layoutOf[F]()
	digits := l.params.Range + int(l.frac)
	pow := new(big.Int).Lsh(big.NewInt(1), uint(digits-1))
	d10 := mathutil.DecimalDigitsBig(pow) - 1
	maxD10 := mathutil.DecimalDigitsBig(pow.Lsh(pow, 1)) + 1
	return LimitsInfo{
		Digits:      digits,
		Digits10:    d10,
		MaxDigits10: maxD10,
		Radix:       radix,
		IsSigned:    true,
		IsExact:     true,
		IsBounded:   true,
		IsModulo:    l.params.Overflow == OverflowWrap,
	}
}

// Epsilon returns the difference between 1 and the next value, a single unit in the last place.
func Epsilon[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().rawOne}
}

// Min returns the smallest positive value.
func Min[F Format]() Value[F] {
	return Epsilon[F]()
}

// Max returns the largest value.
func Max[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().be.Max()}
}

// Lowest returns the most negative value, which is -Max.
func Lowest[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().be.Lowest()}
}

// Infinity returns zero, as there are no infinities.
func Infinity[F Format]() Value[F] {
	return Value[F]{}
}

// QuietNaN returns zero, as there are no NaNs.
func QuietNaN[F Format]() Value[F] {
	return Value[F]{}
}

// One returns 1.
func One[F Format]() Value[F] {
	return one[F]()
}

// Pi returns π.
func Pi[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Pi, 0)}
}

// HalfPi returns π/2.
func HalfPi[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Pi, -1)}
}

func quarterPi[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Pi, -2)}
}

// Ln2 returns the natural logarithm of 2.
func Ln2[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Ln2, 0)}
}

// Ln10 returns the natural logarithm of 10.
func Ln10[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Ln10, 0)}
}

// E returns Euler's number.
func E[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.E, 0)}
}

// Sqrt2 returns the square root of 2.
func Sqrt2[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().constant(consts.Sqrt2, 0)}
}
