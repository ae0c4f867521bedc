// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import "math/big"

// Stepping functions work on the underlying integer, one unit in the last place at a time.
//
// NOTE: wide formats could fail Next(Prior(x)) == x at x == 0, when zero had two
// different representations. The wide storage keeps zero canonical (a nil big.Int),
// so the round trip across zero is bit-exact for all widths. It is covered by tests.

// Next returns the smallest value greater than x.
func Next[F Format](x Value[F]) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Add(x.data, l.rawOne)
	return x.with(l, r, o)
}

// Prior returns the greatest value less than x.
func Prior[F Format](x Value[F]) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Sub(x.data, l.rawOne)
	return x.with(l, r, o)
}

// Distance returns the number of steps from a to b.
func Distance[F Format](a, b Value[F]) *big.Int {
	l := layoutOf[F]()
	d := l.be.Big(b.data)
	return d.Sub(d, l.be.Big(a.data))
}

// Advance returns x moved by n steps.
func Advance[F Format](x Value[F], n int64) Value[F] {
	l := layoutOf[F]()
	d := l.be.Big(x.data)
	r, o := l.be.FromBig(d.Add(d, big.NewInt(n)))
	return x.with(l, r, o)
}
