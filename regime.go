// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import "fmt"

// Regime is an algorithm tier of the elementary functions.
// It only depends on the number of fractional bits.
type Regime int

const (
	// RegimeLowPolynomial uses low order minimax polynomials, up to 11 fractional bits.
	RegimeLowPolynomial Regime = iota
	// RegimeMidPolynomial uses high order polynomials and Padé approximants, up to 24 fractional bits.
	RegimeMidPolynomial
	// RegimeIterative uses Newton-Raphson iterations and hypergeometric series.
	RegimeIterative
)

const (
	lowPolynomialBits = 11
	midPolynomialBits = 24
)

func regimeOf(frac uint) Regime {
	switch {
	case frac <= lowPolynomialBits:
		return RegimeLowPolynomial
	case frac <= midPolynomialBits:
		return RegimeMidPolynomial
	default:
		return RegimeIterative
	}
}

// RegimeOf returns the regime used for the format.
func RegimeOf[F Format]() Regime {
	return layoutOf[F]().regime
}

func (r Regime) String() string {
	switch r {
	case RegimeLowPolynomial:
		return "low-polynomial"
	case RegimeMidPolynomial:
		return "mid-polynomial"
	case RegimeIterative:
		return "iterative"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// variants holds an implementation of a function per regime.
type variants[F Format] [3]func(Value[F]) Value[F]

func (vs variants[F]) evaluate(x Value[F]) Value[F] {
	return vs[layoutOf[F]().regime](x)
}
