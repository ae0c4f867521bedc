// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

// Sqrt returns the square root of x.
// Non-positive x give 0.
func Sqrt[F Format](x Value[F]) Value[F] {
	switch {
	case x.Sign() <= 0:
		return Value[F]{}
	case x.isOne():
		return x
	}
	return variants[F]{sqrtLow[F], sqrtMid[F], sqrtNewton[F]}.evaluate(x)
}

// Hypot returns sqrt(x*x + y*y).
func Hypot[F Format](x, y Value[F]) Value[F] {
	return Sqrt(x.Mul(x).Add(y.Mul(y)))
}

// sqrtMantissa brings x into [1/2, 1], if it is not there yet.
func sqrtMantissa[F Format](x Value[F]) (Value[F], int) {
	if x.Lt(half[F]()) || x.cmpInt(1) > 0 {
		return Frexp(x)
	}
	return x, 0
}

func sqrtLow[F Format](x Value[F]) Value[F] {
	x, n := sqrtMantissa(x)
	// Padé approximants around 5/8 and 7/8.
	var p, q Value[F]
	if x.Lt(coef[F](11, 0x0600)) {
		xp := x.Sub(coef[F](11, 0x0500))
		p = poly(xp, 11, 0x0206, 0x0A1E, 0x0653)
		q = poly(xp, 11, 0x0666, 0x0800)
	} else {
		xp := x.Sub(coef[F](11, 0x0700))
		p = poly(xp, 11, 0x0138, 0x088D, 0x077B)
		q = poly(xp, 11, 0x0492, 0x0800)
	}
	return rescaleRoot(p.Div(q), n)
}

func sqrtMid[F Format](x Value[F]) Value[F] {
	x, n := sqrtMantissa(x)
	// Padé approximant around 3/4.
	xp := x.Sub(coef[F](24, 0x00C00000))
	p := poly(xp, 24, 0x0018A234, 0x00F6560B, 0x02991B85, 0x02991B85, 0x00DDB3D7)
	q := poly(xp, 24, 0x00032916, 0x005ED097, 0x01AAAAAA, 0x02555555, 0x01000000)
	return rescaleRoot(p.Div(q), n)
}

// rescaleRoot returns r * 2^(n/2).
func rescaleRoot[F Format](r Value[F], n int) Value[F] {
	switch {
	case n > 0:
		if n%2 != 0 {
			r = r.Mul(coef[F](24, 0x016A09E6)) // √2
		}
		return r.Lsh(uint(n / 2))
	case n < 0:
		if n%2 != 0 {
			r = r.Mul(coef[F](24, 0x00B504F3)) // 1/√2
		}
		return r.Rsh(uint(-n / 2))
	}
	return r
}

// sqrtNewton refines both the root a and the reciprocal vi = 1/(2a),
// which removes the division from Newton-Raphson iterations.
// Values below 1/2 are normalized first, so that vi stays within the range.
func sqrtNewton[F Format](x Value[F]) Value[F] {
	m, n := Frexp(x)
	guess := m.Rsh(1).Add(half[F]())
	if n < 0 {
		r := newtonRoot(m, guess).Rsh(uint(-n / 2))
		if n%2 != 0 {
			r = r.Div(Sqrt2[F]())
		}
		return r
	}
	guess = guess.Lsh(uint(n / 2))
	if n%2 != 0 {
		guess = guess.Mul(Sqrt2[F]())
	}
	return newtonRoot(x, guess)
}

func newtonRoot[F Format](x, a Value[F]) Value[F] {
	o := one[F]()
	vi := o.Div(a.Lsh(1))
	for i := newtonSteps(layoutOf[F]()); i > 0; i-- {
		vi = vi.Add(vi.Mul(o.Sub(a.Lsh(1).Mul(vi))))
		a = a.Add(vi.Mul(x.Sub(a.Mul(a))))
	}
	return a
}
