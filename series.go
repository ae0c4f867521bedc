// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import "math/bits"

// These variables tune the iterative algorithms.
// They are not thread-safe, so they should be changed on program start.
var (
	// MaxSeriesIterations is the maximum number of terms of a series.
	// A series, that reaches it, returns its partial sum.
	MaxSeriesIterations = 10000
	// MinSeriesTerms is the number of terms a series always adds,
	// before checking if the last term is negligible.
	MinSeriesTerms = 4
	// NewtonBitLimit overrides the number of bits Newton-Raphson iterations aim for.
	// Every iteration doubles the number of correct bits, starting from one,
	// so there are ceil(log2(NewtonBitLimit)) iterations. Zero means half of the width.
	NewtonBitLimit = 0
)

const (
	sinWarmup = 5
	cosWarmup = 6
)

func newtonBound(l *layout) int {
	if NewtonBitLimit > 0 {
		return NewtonBitLimit
	}
	return int(l.width / 2)
}

// newtonSteps returns the number of Newton-Raphson iterations, ceil(log2(newtonBound)).
func newtonSteps(l *layout) int {
	return bits.Len(uint(newtonBound(l) - 1))
}

func negligible[F Format](term Value[F]) bool {
	return term.Abs().Le(Epsilon[F]())
}

// Hypergeometric0F0 returns the sum of x^n / n!, which is e^x.
func Hypergeometric0F0[F Format](x Value[F]) Value[F] {
	term := x
	sum := one[F]().Add(x)
	n := 2
	for ; n < MaxSeriesIterations; n++ {
		term = term.Mul(x).DivInt(int64(n))
		if n > MinSeriesTerms && negligible(term) {
			break
		}
		sum = sum.Add(term)
	}
	if n >= MaxSeriesIterations {
		logNonConvergence("0F0", n)
	}
	return sum
}

// Hypergeometric0F1 returns the sum of x^n / ((b)_n n!),
// where (b)_n is the rising factorial.
func Hypergeometric0F1[F Format](x, b Value[F]) Value[F] {
	o := one[F]()
	bp := b
	term := x.Div(b)
	sum := o.Add(term)
	n := 2
	for ; n < MaxSeriesIterations; n++ {
		bp = bp.Add(o)
		term = term.Mul(x).DivInt(int64(n)).Div(bp)
		if n > MinSeriesTerms && negligible(term) {
			break
		}
		sum = sum.Add(term)
	}
	if n >= MaxSeriesIterations {
		logNonConvergence("0F1", n)
	}
	return sum
}

// Hypergeometric2F1 returns the sum of (a)_n (b)_n / (c)_n * x^n / n!,
// where (q)_n is the rising factorial. The series converges for |x| < 1.
func Hypergeometric2F1[F Format](a, b, c, x Value[F]) Value[F] {
	o := one[F]()
	ap, bp, cp := a, b, c
	term := a.Mul(b).Div(c).Mul(x)
	sum := o.Add(term)
	n := 2
	for ; n < MaxSeriesIterations; n++ {
		ap, bp, cp = ap.Add(o), bp.Add(o), cp.Add(o)
		term = term.Mul(x).DivInt(int64(n))
		term = term.Mul(ap).Div(cp).Mul(bp)
		if n > MinSeriesTerms && negligible(term) {
			break
		}
		sum = sum.Add(term)
	}
	if n >= MaxSeriesIterations {
		logNonConvergence("2F1", n)
	}
	return sum
}
