package mathutil

import "math/bits"

// Int128 is a two's complement 128-bit integer.
type Int128 struct {
	Hi, Lo uint64
}

var one128 = Int128{Lo: 1}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Hi: uint64(v >> 63), Lo: uint64(v)}
}

func (a Int128) Neg() Int128 {
	lo, c := bits.Add64(^a.Lo, 1, 0)
	return Int128{Hi: ^a.Hi + c, Lo: lo}
}

func (a Int128) Add(b Int128) Int128 {
	lo, c := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, c)
	return Int128{Hi: hi, Lo: lo}
}

func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Int128{Hi: hi, Lo: lo}
}

// Inc returns a+1.
func (a Int128) Inc() Int128 {
	return a.Add(one128)
}

// Sign returns -1 if a < 0, 0 if a = 0, 1 if a > 0.
func (a Int128) Sign() int {
	switch {
	case int64(a.Hi) < 0:
		return -1
	case a.Hi == 0 && a.Lo == 0:
		return 0
	}
	return 1
}

// Lsh shifts a left by n bits. Bits shifted past bit 127 are lost.
func (a Int128) Lsh(n uint) Int128 {
	switch {
	case n >= 128:
		return Int128{}
	case n >= 64:
		return Int128{Hi: a.Lo << (n - 64)}
	case n == 0:
		return a
	}
	return Int128{Hi: a.Hi<<n | a.Lo>>(64-n), Lo: a.Lo << n}
}

// Rsh is an arithmetic shift right, so negative values round toward negative infinity.
func (a Int128) Rsh(n uint) Int128 {
	sign := uint64(int64(a.Hi) >> 63)
	switch {
	case n >= 128:
		return Int128{Hi: sign, Lo: sign}
	case n >= 64:
		return Int128{Hi: sign, Lo: uint64(int64(a.Hi) >> (n - 64))}
	case n == 0:
		return a
	}
	return Int128{Hi: uint64(int64(a.Hi) >> n), Lo: a.Lo>>n | a.Hi<<(64-n)}
}

// FitsSigned reports whether a is representable as a width-bit two's complement
// integer. width must be in [1, 64].
func (a Int128) FitsSigned(width uint) bool {
	t := a.Rsh(width - 1)
	return (t.Hi == 0 && t.Lo == 0) || (t.Hi == ^uint64(0) && t.Lo == ^uint64(0))
}

// Truncate returns the low width bits of a, sign extended. width must be in [1, 64].
func (a Int128) Truncate(width uint) int64 {
	s := 64 - width
	return int64(a.Lo<<s) >> s
}

// MulShift64 multiplies two magnitudes and shifts the 128-bit product right by s < 64 bits.
// It returns the shifted product and the discarded low bits.
func MulShift64(a, b uint64, s uint) (q Int128, rem uint64) {
	hi, lo := bits.Mul64(a, b)
	if s == 0 {
		return Int128{Hi: hi, Lo: lo}, 0
	}
	rem = lo & (1<<s - 1)
	return Int128{Hi: hi >> s, Lo: lo>>s | hi<<(64-s)}, rem
}

// ShiftDiv64 computes (a << s) / b for magnitudes with s < 64 and b != 0.
func ShiftDiv64(a, b uint64, s uint) (q Int128, rem uint64) {
	var hi, lo uint64
	if s == 0 {
		lo = a
	} else {
		hi, lo = a>>(64-s), a<<s
	}
	qhi, r := hi/b, hi%b
	qlo, r := bits.Div64(r, lo, b)
	return Int128{Hi: qhi, Lo: qlo}, r
}
