// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

// reduce returns x - k*period, where k is the integral part of x/period, and whether k is odd.
// x must not be negative.
func reduce[F Format](x, period Value[F]) (Value[F], bool) {
	l := layoutOf[F]()
	k := Trunc(x.Div(period))
	odd := l.be.Sign(l.be.AndMask(k.data, l.frac, 1)) != 0
	return x.Sub(period.Mul(k)), odd
}

// Sin returns the sine of x.
func Sin[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return Sin(x.Neg()).Neg()
	}
	pi, halfPi := Pi[F](), HalfPi[F]()
	var odd bool
	if x.Gt(pi) {
		x, odd = reduce(x, pi)
	}
	sin := variants[F]{sinLow[F], sinMid[F], sinSeries[F]}
	var r Value[F]
	switch {
	case x.Gt(halfPi):
		r = sin.evaluate(pi.Sub(x))
	case x.Eq(halfPi):
		r = one[F]()
	default:
		r = sin.evaluate(x)
	}
	if odd {
		return r.Neg()
	}
	return r
}

func sinLow[F Format](x Value[F]) Value[F] {
	return poly(x.Mul(x), 11, 0xF, -0x153, 0x7FF).Mul(x)
}

func sinMid[F Format](x Value[F]) Value[F] {
	return poly(x.Mul(x), 24, 0x2B, -0xCFA, 0x2221B, -0x2AAAA7, 0xFFFFFF).Mul(x)
}

// sinSeries computes the sine of x in [0, π/2], halving the angle until the Taylor series converges fast.
func sinSeries[F Format](x Value[F]) Value[F] {
	if x.Le(quarterPi[F]()) {
		return sinTaylor(x)
	}
	h := x.Rsh(1)
	return sinSeries(h).Mul(cosSeries(h)).Lsh(1)
}

func sinTaylor[F Format](x Value[F]) Value[F] {
	x2 := x.Mul(x)
	term, sum := x, x
	n := 1
	for ; n < MaxSeriesIterations; n++ {
		k := int64(2 * n)
		term = term.Mul(x2).DivInt(k * (k + 1)).Neg()
		if k > sinWarmup && negligible(term) {
			break
		}
		sum = sum.Add(term)
	}
	if n >= MaxSeriesIterations {
		logNonConvergence("sin", n)
	}
	return sum
}

// Cos returns the cosine of x.
func Cos[F Format](x Value[F]) Value[F] {
	x = x.Abs()
	pi := Pi[F]()
	var odd bool
	if c := x.Cmp(pi); c > 0 || c == 0 && layoutOf[F]().regime != RegimeIterative {
		x, odd = reduce(x, pi)
	}
	r := variants[F]{cosLow[F], cosMid[F], cosSeries[F]}.evaluate(x)
	if odd {
		return r.Neg()
	}
	return r
}

func cosLow[F Format](x Value[F]) Value[F] {
	return cosPoly(x, 11, []int64{0x11, -0x155, 0x800}, []int64{-0x2, 0x55, -0x3FF, 0x7FF})
}

func cosMid[F Format](x Value[F]) Value[F] {
	return cosPoly(x, 24,
		[]int64{-0xD00, 0x22222, -0x2AAAAA, 0x1000000},
		[]int64{-0x3, 0x196, -0x5AD9, 0xAAA4A, -0x7FFFB4, 0xFFFFF6})
}

// cosPoly computes the cosine of x in [0, π].
// Near π/2 the sine of the complementary angle is used, which keeps the precision of small results.
func cosPoly[F Format](x Value[F], q uint, near, far []int64) Value[F] {
	pi, halfPi := Pi[F](), HalfPi[F]()
	delta := halfPi.Sub(x)
	if delta.Abs().Lt(fraction[F](2)) {
		return poly(delta.Mul(delta), q, near...).Mul(delta)
	}
	switch {
	case x.Gt(halfPi):
		if x.Eq(pi) {
			return one[F]().Neg()
		}
		return cosPoly(pi.Sub(x), q, near, far).Neg()
	case x.IsZero():
		return one[F]()
	}
	return poly(x.Mul(x), q, far...)
}

// cosSeries computes the cosine of x in [0, π], with the angle halving like in sinSeries.
func cosSeries[F Format](x Value[F]) Value[F] {
	switch {
	case x.Gt(HalfPi[F]()):
		return cosSeries(Pi[F]().Sub(x)).Neg()
	case x.Le(quarterPi[F]()):
		return cosTaylor(x)
	}
	c := cosSeries(x.Rsh(1))
	return c.Mul(c).Lsh(1).Sub(one[F]())
}

func cosTaylor[F Format](x Value[F]) Value[F] {
	x2 := x.Mul(x)
	term := x2.Rsh(1)
	sum := one[F]().Sub(term)
	n := 1
	for ; n < MaxSeriesIterations; n++ {
		k := int64(2 * n)
		term = term.Mul(x2).DivInt((k + 1) * (k + 2))
		if k > cosWarmup && negligible(term) {
			break
		}
		if n%2 == 0 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
	}
	if n >= MaxSeriesIterations {
		logNonConvergence("cos", n)
	}
	return sum
}

// Tan returns the tangent of x. The tangent of π/2 is Max.
func Tan[F Format](x Value[F]) Value[F] {
	switch {
	case x.Sign() < 0:
		return Tan(x.Neg()).Neg()
	case x.IsZero():
		return x
	case x.Eq(HalfPi[F]()):
		return Max[F]()
	}
	return variants[F]{tanLow[F], tanMid[F], tanSeries[F]}.evaluate(x)
}

func tanLow[F Format](x Value[F]) Value[F] {
	return tanPoly(x, 11, 0xBB, 0xF2, 0x2AE, 0x7FF)
}

func tanMid[F Format](x Value[F]) Value[F] {
	return tanPoly(x, 24, 0x51675, 0x36585, 0xE8BAA, 0x220724, 0x5556BB, 0xFFFFFC)
}

func tanPoly[F Format](x Value[F], q uint, cs ...int64) Value[F] {
	pi, halfPi := Pi[F](), HalfPi[F]()
	if x.Gt(pi) {
		x, _ = reduce(x, pi)
	}
	quarter := pi.DivInt(4)
	switch {
	case x.Gt(halfPi):
		return tanPoly(pi.Sub(x), q, cs...).Neg()
	case x.Gt(quarter):
		// tan(π/4 + t) = (1 + tan t) / (1 - tan t)
		t := tanPoly(x.Sub(quarter), q, cs...)
		o := one[F]()
		return o.Add(t).Div(o.Sub(t))
	case x.Lt(quarter):
		return poly(x.Mul(x), q, cs...).Mul(x)
	}
	return one[F]()
}

func tanSeries[F Format](x Value[F]) Value[F] {
	return Sin(x).Div(Cos(x))
}
