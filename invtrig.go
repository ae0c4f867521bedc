// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

// Asin returns the arcsine of x. Arguments beyond [-1, 1] give 0.
func Asin[F Format](x Value[F]) Value[F] {
	switch {
	case x.Sign() < 0:
		return Asin(x.Neg()).Neg()
	case x.IsZero():
		return x
	case x.isOne():
		return HalfPi[F]()
	case x.cmpInt(1) > 0:
		return Value[F]{}
	}
	return variants[F]{asinLow[F], asinMid[F], asinSeries[F]}.evaluate(x)
}

func asinLow[F Format](x Value[F]) Value[F] {
	if x.Lt(fraction[F](2)) {
		return poly(x.Mul(x), 11, 0x5B, 0x99, 0x155, 0x800).Mul(x)
	}
	return HalfPi[F]().Sub(acosLow(x))
}

func asinMid[F Format](x Value[F]) Value[F] {
	return HalfPi[F]().Sub(acosMid(x))
}

// asinSeries uses asin(x) = x * 2F1(1/2, 1/2; 3/2; x²) for small x, and
// acos(1-δ) = sqrt(2δ) * 2F1(1/2, 1/2; 3/2; δ/2) close to 1.
func asinSeries[F Format](x Value[F]) Value[F] {
	h := half[F]()
	c := one[F]().Add(h)
	if x.Lt(h) {
		return x.Mul(Hypergeometric2F1(h, h, c, x.Mul(x)))
	}
	delta := one[F]().Sub(x)
	return HalfPi[F]().Sub(Sqrt(delta.Lsh(1)).Mul(Hypergeometric2F1(h, h, c, delta.Rsh(1))))
}

// Acos returns the arccosine of x. Arguments beyond [-1, 1] give 0.
func Acos[F Format](x Value[F]) Value[F] {
	switch {
	case x.Sign() < 0:
		return Pi[F]().Sub(Acos(x.Neg()))
	case x.IsZero():
		return HalfPi[F]()
	case x.cmpInt(1) >= 0:
		return Value[F]{}
	}
	return variants[F]{acosLow[F], acosMid[F], acosSeries[F]}.evaluate(x)
}

func acosLow[F Format](x Value[F]) Value[F] {
	return Sqrt(one[F]().Sub(x)).Mul(poly(x, 11, -0x26, 0x98, -0x1B2, 0xC90))
}

func acosMid[F Format](x Value[F]) Value[F] {
	return Sqrt(one[F]().Sub(x)).Mul(poly(x, 24, -0x51BA, 0x1B00E, -0x45683, 0x7E030, -0xCD46E, 0x16C67C, -0x36EFDE, 0x1921FB4))
}

func acosSeries[F Format](x Value[F]) Value[F] {
	return HalfPi[F]().Sub(Asin(x))
}

// Atan returns the arctangent of x.
func Atan[F Format](x Value[F]) Value[F] {
	switch {
	case x.Sign() < 0:
		return Atan(x.Neg()).Neg()
	case x.IsZero():
		return x
	case x.isOne():
		return quarterPi[F]()
	case x.cmpInt(1) > 0:
		return HalfPi[F]().Sub(Atan(one[F]().Div(x)))
	}
	return variants[F]{atanLow[F], atanMid[F], atanNewton[F]}.evaluate(x)
}

func atanLow[F Format](x Value[F]) Value[F] {
	return poly(x.Mul(x), 11, -0x60, 0x145, -0x29D, 0x7FF).Mul(x)
}

func atanMid[F Format](x Value[F]) Value[F] {
	return poly(x.Mul(x), 24, -0x3A4FC, 0xF298F, -0x1F654D, 0x32329B, -0x554255, 0xFFFFC3).Mul(x)
}

// atanNewton solves tan(r) = x for r in [0, π/4], starting from a Padé approximant.
func atanNewton[F Format](x Value[F]) Value[F] {
	o := one[F]()
	if x.Lt(fraction[F](3)) {
		return x.Mul(Hypergeometric2F1(o, half[F](), o.Add(half[F]()), x.Mul(x).Neg()))
	}
	three := integer[F](3)
	r := x.Mul(three).Div(three.Add(x.Mul(x)))
	for i := newtonSteps(layoutOf[F]()); i > 0; i-- {
		c, s := Cos(r), Sin(r)
		r = r.Add(c.Mul(x.Mul(c).Sub(s)))
	}
	return r
}

// Atan2 returns the arctangent of y/x, using the signs of the two to determine the quadrant.
func Atan2[F Format](y, x Value[F]) Value[F] {
	switch {
	case y.IsZero():
		if x.Sign() >= 0 {
			return Value[F]{}
		}
		return Pi[F]()
	case x.IsZero():
		if y.Sign() > 0 {
			return HalfPi[F]()
		}
		return HalfPi[F]().Neg()
	}
	t := Atan(y.Div(x))
	switch {
	case x.Sign() > 0:
		return t
	case y.Sign() < 0:
		return t.Sub(Pi[F]())
	}
	return t.Add(Pi[F]())
}
