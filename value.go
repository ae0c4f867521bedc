// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package negatable implements signed binary fixed-point numbers and elementary functions on them.
// The range and the resolution of a number are parts of its type, see Format.
// Numbers of up to 64 bits are stored in an int64, wider ones use math/big.
package negatable

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/avdva/negatable/internal/mathutil"
	"github.com/avdva/negatable/internal/storage"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as exact decimal strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeNumber produces values as exact decimal numbers, like `1234.5678`.
	JSONModeNumber
	// JSONModeFloat marshals values as float64, like `1234.5678`. Can lose precision.
	JSONModeFloat
)

const (
	delim = '.'
	// floatGuardBits are added to the precision of intermediate floats.
	floatGuardBits = 64
)

// Value is a signed fixed-point number of format F.
// Its value is data * 2^Resolution, where data is a two's complement integer
// of F.Params().Width() bits. The zero Value is 0.
// Values are immutable, every operation returns a new one.
type Value[F Format] struct {
	data storage.Int
}

// FromInt returns a value for given integer.
// If n does not fit the range, the overflow mode is applied.
func FromInt[F Format, T constraints.Integer](n T) Value[F] {
	l := layoutOf[F]()
	if n > 0 && uint64(n) > math.MaxInt64 {
		b := new(big.Int).SetUint64(uint64(n))
		return Value[F]{data: l.settle(l.be.FromBig(b.Lsh(b, l.frac)))}
	}
	return Value[F]{data: l.settle(l.be.Scale(int64(n), l.frac))}
}

// FromRaw returns a value, whose data is raw.
func FromRaw[F Format](raw *big.Int) Value[F] {
	l := layoutOf[F]()
	return Value[F]{data: l.settle(l.be.FromBig(raw))}
}

// FromFloat returns a value for given float, rounded according to the round mode.
// Returns an error for infinities and not-a-numbers.
func FromFloat[F Format, T constraints.Float](f T) (Value[F], error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Value[F]{}, Error.Wrap(ErrBadFloat)
	}
	return FromBigFloat[F](new(big.Float).SetFloat64(v)), nil
}

// MustFromFloat is like FromFloat, but panics on errors.
func MustFromFloat[F Format, T constraints.Float](f T) Value[F] {
	v, err := FromFloat[F](f)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBigFloat returns a value for given float, rounded according to the round mode.
// Infinities are treated as overflows.
func FromBigFloat[F Format](f *big.Float) Value[F] {
	l := layoutOf[F]()
	if f.IsInf() {
		if f.Sign() > 0 {
			return Value[F]{data: l.settle(l.be.Max(), storage.Above)}
		}
		return Value[F]{data: l.settle(l.be.Lowest(), storage.Below)}
	}
	m := new(big.Float).SetMantExp(f, int(l.frac))
	var i *big.Int
	if l.nearest {
		// trunc(2m) gives the first discarded bit, so (trunc(2m) ± 1) / 2 rounds half away from zero.
		i, _ = new(big.Float).SetMantExp(m, 1).Int(nil)
		i.Add(i, big.NewInt(int64(i.Sign())))
		i.Quo(i, big.NewInt(2))
	} else {
		var acc big.Accuracy
		i, acc = m.Int(nil)
		if acc == big.Above {
			i.Sub(i, big.NewInt(1))
		}
	}
	return Value[F]{data: l.settle(l.be.FromBig(i))}
}

// FromDecimal returns a value for given decimal, rounded according to the round mode.
func FromDecimal[F Format](d decimal.Decimal) Value[F] {
	l := layoutOf[F]()
	c := d.Coefficient()
	e := int64(d.Exponent())
	if e >= 0 {
		c.Mul(c, new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil))
		return Value[F]{data: l.settle(l.be.FromBig(c.Lsh(c, l.frac)))}
	}
	c.Lsh(c, l.frac)
	q := mathutil.QuoRound(c, new(big.Int).Exp(big.NewInt(10), big.NewInt(-e), nil), l.nearest)
	return Value[F]{data: l.settle(l.be.FromBig(q))}
}

// FromString parses a decimal string, like "-123.456" or "1.5e3", into a value.
// The result is rounded according to the round mode.
func FromString[F Format](s string) (Value[F], error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return Value[F]{}, Error.Wrap(err)
	}
	if err := checkSyntax(s); err != nil {
		err.pos += offset + 1 // +1 to start indices from 1.
		return Value[F]{}, Error.Wrap(err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value[F]{}, Error.Wrap(fmt.Errorf("%w: %v", ErrSyntax, err))
	}
	return FromDecimal[F](d), nil
}

// MustFromString is like FromString, but panics on errors.
func MustFromString[F Format](s string) Value[F] {
	v, err := FromString[F](s)
	if err != nil {
		panic(err)
	}
	return v
}

func prepareString(s string) (prepared string, offset int, err error) {
	if len(s) == 0 {
		return "", 0, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
		if len(s) == 0 || s[len(s)-1] != '"' {
			return "", 0, newPosError("unterminated quote", offset)
		}
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	return s, offset, nil
}

// checkSyntax checks if the string is a decimal number with an optional sign and exponent.
func checkSyntax(s string) *posError {
	var digits bool
	delimPos, expPos := -1, -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits = true
		case r == '-' || r == '+':
			if i != 0 && i != expPos+1 {
				return newPosError(fmt.Sprintf("unexpected sign %q", r), i)
			}
		case r == delim:
			if delimPos >= 0 || expPos >= 0 {
				return newPosError("unexpected delimeter", i)
			}
			delimPos = i
		case r == 'e' || r == 'E':
			if expPos >= 0 || !digits {
				return newPosError("unexpected exponent", i)
			}
			expPos = i
			digits = false
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !digits {
		return newPosError("no digits", len(s))
	}
	return nil
}

// Raw returns the underlying scaled integer.
func (v Value[F]) Raw() *big.Int {
	return layoutOf[F]().be.Big(v.data)
}

// BitPattern returns all the bits of the underlying integer, most significant first.
func (v Value[F]) BitPattern() string {
	return layoutOf[F]().be.Bits(v.data)
}

// Int64 returns the integral part of the value, truncated toward zero.
func (v Value[F]) Int64() int64 {
	l := layoutOf[F]()
	if i, ok := l.be.Int64(v.data); ok && l.frac < 64 {
		if i < 0 {
			return -int64(uint64(-i) >> l.frac)
		}
		return i >> l.frac
	}
	i := l.be.Big(v.data)
	return i.Quo(i, new(big.Int).Lsh(big.NewInt(1), l.frac)).Int64()
}

// Float64 returns the nearest float64 value.
func (v Value[F]) Float64() float64 {
	l := layoutOf[F]()
	if i, ok := l.be.Int64(v.data); ok {
		return math.Ldexp(float64(i), -int(l.frac))
	}
	f := new(big.Float).SetInt(l.be.Big(v.data))
	r, _ := f.SetMantExp(f, -int(l.frac)).Float64()
	return r
}

// BigFloat returns the exact value as a big.Float.
func (v Value[F]) BigFloat() *big.Float {
	l := layoutOf[F]()
	f := new(big.Float).SetPrec(l.width + floatGuardBits).SetInt(l.be.Big(v.data))
	return f.SetMantExp(f, -int(l.frac))
}

// Decimal returns the exact value as a decimal.
func (v Value[F]) Decimal() decimal.Decimal {
	l := layoutOf[F]()
	i := l.be.Big(v.data)
	i.Mul(i, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(l.frac)), nil))
	return decimal.NewFromBigInt(i, -int32(l.frac))
}

// String returns the exact decimal representation of the value.
func (v Value[F]) String() string {
	if v.IsZero() {
		return "0"
	}
	return v.Decimal().String()
}

// GoString returns debug string representation.
func (v Value[F]) GoString() string {
	var f F
	p := f.Params()
	return v.String() + fmt.Sprintf(" {%d, %d, %s}", p.Range, p.Resolution, v.BitPattern())
}

// Format implements fmt.Formatter.
// Verbs 'v' and 's' print the exact value, 'f' uses the precision if set,
// 'e' and 'g' go through float64, 'b' prints the bit pattern, 'd' the integral part.
func (v Value[F]) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v':
		if f.Flag('#') {
			s = v.GoString()
		} else {
			s = v.String()
		}
	case 's':
		s = v.String()
	case 'q':
		s = strconv.Quote(v.String())
	case 'f', 'F':
		if prec, ok := f.Precision(); ok {
			s = v.Decimal().StringFixed(int32(prec))
		} else {
			s = v.String()
		}
	case 'e', 'E', 'g', 'G':
		prec, ok := f.Precision()
		if !ok {
			prec = -1
		}
		s = strconv.FormatFloat(v.Float64(), byte(verb), prec, 64)
	case 'b':
		s = v.BitPattern()
	case 'd':
		s = strconv.FormatInt(v.Int64(), 10)
	default:
		fmt.Fprintf(f, "%%!%c(negatable.Value=%s)", verb, v.String())
		return
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = io.WriteString(f, s)
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value[F]) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Value[F]) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		return []byte(strconv.FormatFloat(v.Float64(), 'f', -1, 64))
	case JSONModeNumber:
		return []byte(v.String())
	default: // marshal as a string
		var builder strings.Builder
		builder.WriteRune('"')
		builder.WriteString(v.String())
		builder.WriteRune('"')
		return []byte(builder.String())
	}
}

// UnmarshalJSON unmarshals a string or a number into a value.
func (v *Value[F]) UnmarshalJSON(data []byte) error {
	value, err := FromString[F](string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}
