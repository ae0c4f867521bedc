// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"fmt"
	"sync"

	"github.com/avdva/negatable/internal/consts"
	"github.com/avdva/negatable/internal/storage"
)

// RoundMode defines how bits below the resolution are discarded.
type RoundMode int

const (
	// RoundFastest truncates toward negative infinity.
	RoundFastest RoundMode = iota
	// RoundNearest rounds to the nearest value, ties away from zero.
	RoundNearest
)

// OverflowMode defines what happens when a result does not fit the range.
type OverflowMode int

const (
	// OverflowUndefined leaves the result unspecified. Currently it wraps.
	OverflowUndefined OverflowMode = iota
	// OverflowWrap wraps the result modulo 2^width.
	OverflowWrap
	// OverflowSaturate clamps the result to Max or Lowest.
	OverflowSaturate
	// OverflowException panics with an error wrapping ErrOverflow. See Try.
	OverflowException
)

// Params describe a fixed-point type.
type Params struct {
	// Range is the number of integer bits, excluding the sign. Must be positive.
	Range int
	// Resolution is the negated number of fractional bits. Must be negative.
	Resolution int
	Round      RoundMode
	Overflow   OverflowMode
}

// Format is implemented by types that select fixed-point parameters.
// Usually it is an empty struct:
//	type Q7x8 struct{}
//	func (Q7x8) Params() negatable.Params { return negatable.Params{Range: 7, Resolution: -8} }
// Params must always return the same value.
type Format interface {
	Params() Params
}

// Width returns the number of bits of the storage, including the sign.
func (p Params) Width() int {
	return p.Range - p.Resolution + 1
}

func (p Params) validate() error {
	switch {
	case p.Range < 1:
		return Error.Wrap(fmt.Errorf("%w: range must be positive, got %d", ErrParams, p.Range))
	case p.Resolution > -1:
		return Error.Wrap(fmt.Errorf("%w: resolution must be negative, got %d", ErrParams, p.Resolution))
	case p.Round < RoundFastest || p.Round > RoundNearest:
		return Error.Wrap(fmt.Errorf("%w: unknown round mode %d", ErrParams, p.Round))
	case p.Overflow < OverflowUndefined || p.Overflow > OverflowException:
		return Error.Wrap(fmt.Errorf("%w: unknown overflow mode %d", ErrParams, p.Overflow))
	}
	return nil
}

// layout is everything derived from Params. It is immutable, except for the constants cache.
type layout struct {
	params  Params
	width   uint
	frac    uint
	nearest bool
	regime  Regime
	be      storage.Backend

	rawOne storage.Int // a single ulp.
	one    storage.Int
	half   storage.Int

	constants sync.Map // constKey -> storage.Int
}

type constKey struct {
	kind  consts.Kind
	shift int
}

var layouts sync.Map // Params -> *layout

func layoutOf[F Format]() *layout {
	var f F
	p := f.Params()
	if l, found := layouts.Load(p); found {
		return l.(*layout)
	}
	l, _ := layouts.LoadOrStore(p, newLayout(p))
	return l.(*layout)
}

func newLayout(p Params) *layout {
	if err := p.validate(); err != nil {
		panic(err)
	}
	frac := uint(-p.Resolution)
	width := uint(p.Width())
	l := &layout{
		params:  p,
		width:   width,
		frac:    frac,
		nearest: p.Round == RoundNearest,
		regime:  regimeOf(frac),
		be:      storage.New(width),
	}
	l.rawOne, _ = l.be.FromInt64(1)
	l.one, _ = l.be.Scale(1, frac)
	l.half, _ = l.be.Scale(1, frac-1)
	return l
}

// settle applies the overflow mode to a result of a storage operation.
func (l *layout) settle(r storage.Int, o storage.Overflow) storage.Int {
	if o == storage.InRange {
		return r
	}
	switch l.params.Overflow {
	case OverflowSaturate:
		if o == storage.Above {
			return l.be.Max()
		}
		return l.be.Lowest()
	case OverflowException:
		panic(Error.Wrap(ErrOverflow))
	}
	return r
}

// constant returns a mathematical constant multiplied by 2^shift.
// Constants beyond the range saturate regardless of the overflow mode.
func (l *layout) constant(k consts.Kind, shift int) storage.Int {
	key := constKey{kind: k, shift: shift}
	if c, found := l.constants.Load(key); found {
		return c.(storage.Int)
	}
	c, o := l.be.FromBig(consts.Scaled(k, int(l.frac)+shift))
	if o != storage.InRange {
		c = l.be.Max()
	}
	l.constants.Store(key, c)
	return c
}
