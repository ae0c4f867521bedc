// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned or raised by this package.
	Error = errs.Class("negatable")

	// ErrOverflow is raised by OverflowException types when a result does not fit the range.
	ErrOverflow = errors.New("overflow")
	// ErrBadFloat is returned for infinities and not-a-numbers.
	ErrBadFloat = errors.New("bad float number")
	// ErrSyntax is returned for malformed strings.
	ErrSyntax = errors.New("invalid syntax")
	// ErrParams is raised when a Format returns invalid Params.
	ErrParams = errors.New("invalid params")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe *posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe *posError) Unwrap() error {
	return ErrSyntax
}

// Try calls f and returns its result.
// If f panics because of an OverflowException type, the error is returned instead.
// Other panics are not recovered.
func Try[F Format](f func() Value[F]) (v Value[F], err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !Error.Has(e) {
				panic(r)
			}
			err = e
		}
	}()
	return f(), nil
}
