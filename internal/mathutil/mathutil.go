package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	// halfMasks[i] selects the upper half of a 2^(6-i)-bit window.
	halfMasks = [...]uint64{
		0xFFFFFFFF00000000,
		0x00000000FFFF0000,
		0x000000000000FF00,
		0x00000000000000F0,
		0x000000000000000C,
		0x0000000000000002,
	}
)

const wordBits = int(unsafe.Sizeof(big.Word(0)) * 8)

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// DecimalDigitsBig returns the number of decimal digits in |value|.
func DecimalDigitsBig(value *big.Int) int {
	if value.IsUint64() {
		return DecimalDigits(value.Uint64())
	}
	s := value.Text(10)
	if value.Sign() < 0 {
		return len(s) - 1
	}
	return len(s)
}

// Msb64 returns the index of the most significant set bit of value, or -1 for zero.
// It narrows the search window by halves, testing the upper half with a mask each time.
func Msb64(value uint64) int {
	if value == 0 {
		return -1
	}
	msb, width := 0, 64
	for _, mask := range halfMasks {
		width >>= 1
		if value&mask != 0 {
			value >>= uint(width)
			msb += width
		}
	}
	return msb
}

// MsbBig returns the index of the most significant set bit of |value|, or -1 for zero.
func MsbBig(value *big.Int) int {
	words := value.Bits()
	if len(words) == 0 {
		return -1
	}
	top := len(words) - 1
	return top*wordBits + Msb64(uint64(words[top]))
}

// RightShift64 shifts value right by n bits. A negative n shifts left.
// Shift amounts at or beyond the width produce zero.
func RightShift64(value uint64, n int) uint64 {
	switch {
	case n >= 64 || n <= -64:
		return 0
	case n >= 0:
		return value >> uint(n)
	default:
		return value << uint(-n)
	}
}

// Mask64 returns a mask of count set bits starting at bit pos.
// Bits beyond 63 are dropped.
func Mask64(pos, count uint) uint64 {
	if pos >= 64 || count == 0 {
		return 0
	}
	m := ^uint64(0)
	if count < 64 {
		m = 1<<count - 1
	}
	return m << pos
}

// MaskBig returns a mask of count set bits starting at bit pos.
func MaskBig(pos, count uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), count)
	m.Sub(m, big.NewInt(1))
	return m.Lsh(m, pos)
}

// QuoRound returns n/d rounded either toward negative infinity or to the nearest
// integer with ties away from zero. d must not be zero.
func QuoRound(n, d *big.Int, nearest bool) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	neg := (n.Sign() < 0) != (d.Sign() < 0)
	if nearest {
		r.Abs(r).Lsh(r, 1)
		if r.CmpAbs(d) >= 0 {
			if neg {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
		return q
	}
	if neg {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// RshRound shifts n right by s bits with the rounding of QuoRound.
func RshRound(n *big.Int, s uint, nearest bool) *big.Int {
	if s == 0 {
		return new(big.Int).Set(n)
	}
	if !nearest {
		return new(big.Int).Rsh(n, s)
	}
	m := new(big.Int).Abs(n)
	m.Add(m, new(big.Int).Lsh(big.NewInt(1), s-1))
	m.Rsh(m, s)
	if n.Sign() < 0 {
		m.Neg(m)
	}
	return m
}

// UAbs64 returns |val| as an unsigned value, so math.MinInt64 is handled.
func UAbs64(val int64) uint64 {
	mask := val >> 63
	return uint64((val ^ mask) - mask)
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
