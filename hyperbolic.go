// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

// expPair returns e^x and e^-x. Each of them is computed directly,
// so that a small one stays accurate while the other one overflows.
func expPair[F Format](x Value[F]) (ep, em Value[F]) {
	return Exp(x), Exp(x.Neg())
}

// Sinh returns the hyperbolic sine of x.
func Sinh[F Format](x Value[F]) Value[F] {
	ep, em := expPair(x)
	return ep.Sub(em).Rsh(1)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[F Format](x Value[F]) Value[F] {
	ep, em := expPair(x)
	return ep.Add(em).Rsh(1)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return Tanh(x.Neg()).Neg()
	}
	// tanh(x) = (1 - e^-2x) / (1 + e^-2x)
	em := Exp(x.Neg())
	em = em.Mul(em)
	o := one[F]()
	return o.Sub(em).Div(o.Add(em))
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return Asinh(x.Neg()).Neg()
	}
	o := one[F]()
	if x.Lt(fraction[F](3)) {
		h := half[F]()
		return x.Mul(Hypergeometric2F1(h, h, o.Add(h), x.Mul(x).Neg()))
	}
	return Log(x.Add(Sqrt(x.Mul(x).Add(o))))
}

// Acosh returns the inverse hyperbolic cosine of x. Arguments below 1 give 0.
func Acosh[F Format](x Value[F]) Value[F] {
	o := one[F]()
	if x.Le(o) {
		return Value[F]{}
	}
	if t := x.Sub(o); t.Lt(fraction[F](3)) {
		h := half[F]()
		return Sqrt(t.Lsh(1)).Mul(Hypergeometric2F1(h, h, o.Add(h), t.Rsh(1).Neg()))
	}
	return Log(x.Add(Sqrt(x.Mul(x).Sub(o))))
}

// Atanh returns the inverse hyperbolic tangent of x. Arguments beyond (-1, 1) give ±Max.
func Atanh[F Format](x Value[F]) Value[F] {
	switch {
	case x.IsZero():
		return x
	case x.Sign() < 0:
		return Atanh(x.Neg()).Neg()
	case x.cmpInt(1) >= 0:
		return Max[F]()
	}
	o := one[F]()
	if x.Lt(fraction[F](3)) {
		return x.Mul(Hypergeometric2F1(o, half[F](), o.Add(half[F]()), x.Mul(x)))
	}
	return Log(o.Add(x)).Sub(Log(o.Sub(x))).Rsh(1)
}
