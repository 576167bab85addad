// Package rterror holds the error taxonomy shared by the renderer packages.
//
// Every invariant violation detected by the core (an ill-typed tuple, an
// out-of-range matrix index, a singular matrix, a pixel outside the canvas)
// is reported as an *Error carrying one of the Kind values below.  Callers
// test for a kind with errors.Is against the exported sentinels:
//
//	if errors.Is(err, rterror.ErrSingularMatrix) { ... }
package rterror

import (
	"fmt"

	"golang.org/x/xerrors"
)

type Kind int

const (
	// KindType means a tuple was used where the other tuple type was
	// required, or carries a tag that is neither point nor vector.
	KindType Kind = iota

	// KindIndex means a matrix row or column index was out of range.
	KindIndex

	// KindSingularMatrix means an inverse was requested for a matrix whose
	// determinant is exactly zero.
	KindSingularMatrix

	// KindOutOfBounds means a pixel coordinate fell outside a canvas.
	KindOutOfBounds
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type error"
	case KindIndex:
		return "index error"
	case KindSingularMatrix:
		return "singular matrix"
	case KindOutOfBounds:
		return "out of bounds"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is.  They match any *Error of the same kind.
var (
	ErrType           = &Error{Kind: KindType}
	ErrIndex          = &Error{Kind: KindIndex}
	ErrSingularMatrix = &Error{Kind: KindSingularMatrix}
	ErrOutOfBounds    = &Error{Kind: KindOutOfBounds}
)

type Error struct {
	Kind    Kind
	Message string

	inner error
	frame xerrors.Frame
}

func New(kind Kind, message string, inner error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		inner:   inner,
		frame:   xerrors.Caller(1),
	}
}

// Typef, Indexf, Singularf and OutOfBoundsf are shorthands for New with a
// formatted message and no inner error.
func Typef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindType, Message: fmt.Sprintf(format, args...), frame: xerrors.Caller(1)}
}

func Indexf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIndex, Message: fmt.Sprintf(format, args...), frame: xerrors.Caller(1)}
}

func Singularf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindSingularMatrix, Message: fmt.Sprintf(format, args...), frame: xerrors.Caller(1)}
}

func OutOfBoundsf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindOutOfBounds, Message: fmt.Sprintf(format, args...), frame: xerrors.Caller(1)}
}

func (e *Error) Error() string {
	if e.inner == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.inner)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Format(f fmt.State, c rune) { // implements fmt.Formatter
	xerrors.FormatError(e, f, c)
}

func (e *Error) FormatError(p xerrors.Printer) error { // implements xerrors.Formatter
	p.Print(fmt.Sprintf("%s: %s", e.Kind, e.Message))
	if p.Detail() {
		e.frame.Format(p)
	}
	return e.inner
}

func (e *Error) Unwrap() error {
	return e.inner
}
