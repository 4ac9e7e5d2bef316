package sbewire

import (
	"iter"

	"github.com/rawbytedev/sbewire/internal/common"
)

// ArrayEncoder is the write surface of one fixed-length array field. It is
// taken from its codec on demand and checks ownership on every call.
type ArrayEncoder[T Primitive] struct {
	op    string
	scope Scope
	buf   WriteBuf
	rel   int
	n     int
	null  T
}

// NewArrayEncoder describes an n-element array rel bytes into the scope's
// block whose unset slots read as null.
func NewArrayEncoder[T Primitive](op string, s Scope, buf WriteBuf, rel, n int, null T) ArrayEncoder[T] {
	return ArrayEncoder[T]{op: op, scope: s, buf: buf, rel: rel, n: n, null: null}
}

func (a ArrayEncoder[T]) Len() int           { return a.n }
func (a ArrayEncoder[T]) NullValue() T       { return a.null }
func (a ArrayEncoder[T]) EncodedLength() int { return a.n * common.Size[T]() }

// Put writes exactly Len elements.
func (a ArrayEncoder[T]) Put(src []T) error {
	if len(src) != a.n {
		return rangeError(a.op, ErrArrayLength)
	}
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return PutArray(a.buf, off, src)
}

// NullPadded writes a prefix of src and fills the tail with the null value.
func (a ArrayEncoder[T]) NullPadded(src []T) error {
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return PutArrayNullPadded(a.buf, off, a.n, src, a.null)
}

// ZeroPadded writes a prefix of src and zeroes the tail.
func (a ArrayEncoder[T]) ZeroPadded(src []T) error {
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return PutArrayZeroPadded(a.buf, off, a.n, src)
}

// Prefix writes a prefix of src and leaves the tail as it was.
func (a ArrayEncoder[T]) Prefix(src []T) error {
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return PutArrayPrefix(a.buf, off, a.n, src)
}

// Seq drains seq into the array and null-fills the tail.
func (a ArrayEncoder[T]) Seq(seq iter.Seq[T]) error {
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return PutArraySeq(a.buf, off, a.n, seq, a.null)
}

// ArrayDecoder is the read surface of one fixed-length array field.
type ArrayDecoder[T Primitive] struct {
	op    string
	scope Scope
	buf   ReadBuf
	rel   int
	n     int
	null  T
}

func NewArrayDecoder[T Primitive](op string, s Scope, buf ReadBuf, rel, n int, null T) ArrayDecoder[T] {
	return ArrayDecoder[T]{op: op, scope: s, buf: buf, rel: rel, n: n, null: null}
}

func (a ArrayDecoder[T]) Len() int     { return a.n }
func (a ArrayDecoder[T]) NullValue() T { return a.null }

// Get fills dst, which must hold exactly Len elements.
func (a ArrayDecoder[T]) Get(dst []T) error {
	if len(dst) != a.n {
		return rangeError(a.op, ErrArrayLength)
	}
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return err
	}
	return GetArray(a.buf, off, dst)
}

// At reads element i.
func (a ArrayDecoder[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.n {
		return zero, boundsError(a.op, i, 1, a.n)
	}
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return zero, err
	}
	return Get[T](a.buf, off+i*common.Size[T]())
}

// All checks ownership and bounds once and returns an iterator over every
// element in order. A failure is reported here, never by the iterator.
func (a ArrayDecoder[T]) All() (iter.Seq2[int, T], error) {
	off, err := a.scope.At(a.op, a.rel)
	if err != nil {
		return nil, err
	}
	size := common.Size[T]()
	if err := a.buf.Check(a.op, off, a.n*size); err != nil {
		return nil, err
	}
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, common.Get[T](a.buf.data[off+i*size:])) {
				return
			}
		}
	}, nil
}

// NullValue returns the default null sentinel of T.
func NullValue[T Primitive]() T { return common.Null[T]() }

// IsNull reports whether v is the default null sentinel of T. NaN is null.
func IsNull[T Primitive](v T) bool { return common.IsNull(v) }
