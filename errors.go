package sbewire

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds     = errors.New("access exceeds buffer capacity")
	ErrNotWrapped      = errors.New("codec is not wrapped over a buffer")
	ErrCursorLent      = errors.New("codec does not own the cursor")
	ErrParentNotSet    = errors.New("codec has no parent to return to")
	ErrNotAdvanced     = errors.New("group element accessed before advance")
	ErrGroupExhausted  = errors.New("group advanced past its count")
	ErrGroupIncomplete = errors.New("group left before every element was visited")
	ErrOutOfOrder      = errors.New("field accessed out of schema order")
	ErrCountOutOfRange = errors.New("count out of range for its encoding")
	ErrArrayLength     = errors.New("source length does not match the array length")
	ErrNestingTooDeep  = errors.New("codecs nested deeper than the cursor allows")
)

// Kind classifies an Error.
type Kind uint8

const (
	// KindBounds is an access that would run past the buffer capacity.
	KindBounds Kind = iota + 1
	// KindSequence is a codec used in the wrong state: lent, not wrapped,
	// not advanced, or out of schema order.
	KindSequence
	// KindRange is a value that does not fit its wire encoding.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindBounds:
		return "bounds"
	case KindSequence:
		return "sequence"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the failure returned by every codec operation.
// Offset, Width and Capacity are only meaningful for KindBounds.
type Error struct {
	Kind     Kind
	Op       string
	Offset   int
	Width    int
	Capacity int
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == KindBounds {
		return fmt.Sprintf("sbewire: %s: %v (offset %d, width %d, capacity %d)",
			e.Op, e.Err, e.Offset, e.Width, e.Capacity)
	}
	return fmt.Sprintf("sbewire: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// IsBounds reports whether err is a capacity violation.
func IsBounds(err error) bool { return IsKind(err, KindBounds) }

// IsSequence reports whether err is a codec used in the wrong state.
func IsSequence(err error) bool { return IsKind(err, KindSequence) }

func boundsError(op string, offset, width, capacity int) error {
	return &Error{Kind: KindBounds, Op: op, Offset: offset, Width: width, Capacity: capacity, Err: ErrOutOfBounds}
}

func sequenceError(op string, err error) error {
	return &Error{Kind: KindSequence, Op: op, Err: err}
}

func rangeError(op string, err error) error {
	return &Error{Kind: KindRange, Op: op, Err: err}
}

func inBounds(offset, width, capacity int) bool {
	return offset >= 0 && width >= 0 && offset <= capacity-width
}
