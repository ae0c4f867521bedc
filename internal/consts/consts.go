// Package consts computes mathematical constants as scaled integers of any precision.
package consts

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/avdva/negatable/internal/mathutil"
)

// Kind is a mathematical constant.
type Kind int

const (
	Pi Kind = iota
	Ln2
	Ln10
	E
	Sqrt2
)

// guardBits are computed beyond the requested precision, and rounded off at the end.
const guardBits = 32

var (
	logger = zerolog.Nop()

	cache sync.Map // key -> *big.Int
	group singleflight.Group
)

type key struct {
	kind Kind
	bits int
}

// SetLogger sets a logger for diagnostic messages.
// This function is not thread-safe, so this should be called on program start.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func (k Kind) String() string {
	switch k {
	case Pi:
		return "pi"
	case Ln2:
		return "ln2"
	case Ln10:
		return "ln10"
	case E:
		return "e"
	case Sqrt2:
		return "sqrt2"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Scaled returns the constant multiplied by 2^bits and rounded to the nearest integer.
// The result is a new value owned by the caller.
func Scaled(k Kind, bits int) *big.Int {
	return new(big.Int).Set(scaled(k, bits))
}

func scaled(k Kind, bits int) *big.Int {
	kk := key{kind: k, bits: bits}
	if v, found := cache.Load(kk); found {
		return v.(*big.Int)
	}
	v, _, _ := group.Do(fmt.Sprintf("%d/%d", k, bits), func() (interface{}, error) {
		if v, found := cache.Load(kk); found {
			return v, nil
		}
		v := compute(k, bits)
		cache.Store(kk, v)
		logger.Debug().
			Str("constant", k.String()).
			Int("bits", bits).
			Msg("constant computed")
		return v, nil
	})
	return v.(*big.Int)
}

func compute(k Kind, bits int) *big.Int {
	p := uint(guardBits)
	if bits > 0 {
		p += uint(bits)
	}
	var v *big.Int
	switch k {
	case Pi:
		// Machin: π = 16·atan(1/5) - 4·atan(1/239).
		v = atanInv(5, p)
		v.Lsh(v, 4)
		v.Sub(v, new(big.Int).Lsh(atanInv(239, p), 2))
	case Ln2:
		v = atanhInv(3, p)
		v.Lsh(v, 1)
	case Ln10:
		// ln 10 = 3·ln 2 + ln(5/4), ln(5/4) = 2·atanh(1/9).
		v = atanhInv(3, p)
		v.Mul(v, big.NewInt(6))
		v.Add(v, new(big.Int).Lsh(atanhInv(9, p), 1))
	case E:
		v = euler(p)
	case Sqrt2:
		v = new(big.Int).Lsh(big.NewInt(2), 2*p)
		v.Sqrt(v)
	default:
		panic(fmt.Sprintf("unknown constant %v", k))
	}
	return mathutil.RshRound(v, uint(int(p)-bits), true)
}

// atanInv returns atan(1/n)·2^p.
func atanInv(n int64, p uint) *big.Int {
	return arctanSeries(n, p, true)
}

// atanhInv returns atanh(1/n)·2^p.
func atanhInv(n int64, p uint) *big.Int {
	return arctanSeries(n, p, false)
}

// arctanSeries sums x - x³/3 + x⁵/5 ... for x = 1/n, alternating the signs if alternate is set.
func arctanSeries(n int64, p uint, alternate bool) *big.Int {
	bn := big.NewInt(n)
	n2 := new(big.Int).Mul(bn, bn)
	power := new(big.Int).Lsh(big.NewInt(1), p)
	power.Quo(power, bn)
	sum := new(big.Int).Set(power)
	term := new(big.Int)
	for k := int64(3); ; k += 2 {
		power.Quo(power, n2)
		term.Quo(power, big.NewInt(k))
		if term.Sign() == 0 {
			break
		}
		if alternate && k%4 == 3 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// euler returns e·2^p as the sum of 1/k!.
func euler(p uint) *big.Int {
	term := new(big.Int).Lsh(big.NewInt(1), p)
	sum := new(big.Int)
	for k := int64(1); term.Sign() != 0; k++ {
		sum.Add(sum, term)
		term.Quo(term, big.NewInt(k))
	}
	return sum
}
