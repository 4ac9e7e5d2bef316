package sbewire

import (
	"iter"

	"github.com/rawbytedev/sbewire/internal/common"
)

// Primitive is the set of fixed-width scalar types a field can carry.
type Primitive = common.Primitive

// ReadBuf is a read-only window over caller-owned bytes. Every access is
// bounds-checked against the window's capacity. ReadBuf is a small value;
// copies share the underlying bytes.
type ReadBuf struct {
	data []byte
}

// WriteBuf is the mutable counterpart of ReadBuf.
type WriteBuf struct {
	data []byte
}

// NewReadBuf wraps the first capacity bytes of data.
func NewReadBuf(data []byte, capacity int) (ReadBuf, error) {
	if capacity < 0 || capacity > len(data) {
		return ReadBuf{}, boundsError("NewReadBuf", 0, capacity, len(data))
	}
	return ReadBuf{data: data[:capacity:capacity]}, nil
}

// ReadBufOf wraps all of data.
func ReadBufOf(data []byte) ReadBuf {
	return ReadBuf{data: data[:len(data):len(data)]}
}

// NewWriteBuf wraps the first capacity bytes of data.
func NewWriteBuf(data []byte, capacity int) (WriteBuf, error) {
	if capacity < 0 || capacity > len(data) {
		return WriteBuf{}, boundsError("NewWriteBuf", 0, capacity, len(data))
	}
	return WriteBuf{data: data[:capacity:capacity]}, nil
}

// WriteBufOf wraps all of data.
func WriteBufOf(data []byte) WriteBuf {
	return WriteBuf{data: data[:len(data):len(data)]}
}

func (b ReadBuf) Capacity() int  { return len(b.data) }
func (b WriteBuf) Capacity() int { return len(b.data) }

// ReadBuf returns a read-only view over the same bytes.
func (b WriteBuf) ReadBuf() ReadBuf { return ReadBuf(b) }

// Check reports whether width bytes at offset lie inside the buffer.
func (b ReadBuf) Check(op string, offset, width int) error {
	if !inBounds(offset, width, len(b.data)) {
		return boundsError(op, offset, width, len(b.data))
	}
	return nil
}

func (b WriteBuf) Check(op string, offset, width int) error {
	return ReadBuf(b).Check(op, offset, width)
}

// Get decodes a T at offset.
func Get[T Primitive](b ReadBuf, offset int) (T, error) {
	if err := b.Check("Get", offset, common.Size[T]()); err != nil {
		var zero T
		return zero, err
	}
	return common.Get[T](b.data[offset:]), nil
}

// Put encodes v at offset. Nothing is written when v does not fit.
func Put[T Primitive](b WriteBuf, offset int, v T) error {
	if err := b.Check("Put", offset, common.Size[T]()); err != nil {
		return err
	}
	common.Put(b.data[offset:], v)
	return nil
}

func (b ReadBuf) Uint8(offset int) (uint8, error)     { return Get[uint8](b, offset) }
func (b ReadBuf) Int8(offset int) (int8, error)       { return Get[int8](b, offset) }
func (b ReadBuf) Uint16(offset int) (uint16, error)   { return Get[uint16](b, offset) }
func (b ReadBuf) Int16(offset int) (int16, error)     { return Get[int16](b, offset) }
func (b ReadBuf) Uint32(offset int) (uint32, error)   { return Get[uint32](b, offset) }
func (b ReadBuf) Int32(offset int) (int32, error)     { return Get[int32](b, offset) }
func (b ReadBuf) Uint64(offset int) (uint64, error)   { return Get[uint64](b, offset) }
func (b ReadBuf) Int64(offset int) (int64, error)     { return Get[int64](b, offset) }
func (b ReadBuf) Float32(offset int) (float32, error) { return Get[float32](b, offset) }
func (b ReadBuf) Float64(offset int) (float64, error) { return Get[float64](b, offset) }

func (b WriteBuf) PutUint8(offset int, v uint8) error     { return Put(b, offset, v) }
func (b WriteBuf) PutInt8(offset int, v int8) error       { return Put(b, offset, v) }
func (b WriteBuf) PutUint16(offset int, v uint16) error   { return Put(b, offset, v) }
func (b WriteBuf) PutInt16(offset int, v int16) error     { return Put(b, offset, v) }
func (b WriteBuf) PutUint32(offset int, v uint32) error   { return Put(b, offset, v) }
func (b WriteBuf) PutInt32(offset int, v int32) error     { return Put(b, offset, v) }
func (b WriteBuf) PutUint64(offset int, v uint64) error   { return Put(b, offset, v) }
func (b WriteBuf) PutInt64(offset int, v int64) error     { return Put(b, offset, v) }
func (b WriteBuf) PutFloat32(offset int, v float32) error { return Put(b, offset, v) }
func (b WriteBuf) PutFloat64(offset int, v float64) error { return Put(b, offset, v) }

// Bytes returns n bytes at offset without copying.
func (b ReadBuf) Bytes(offset, n int) ([]byte, error) {
	if err := b.Check("Bytes", offset, n); err != nil {
		return nil, err
	}
	return b.data[offset : offset+n : offset+n], nil
}

// PutBytes copies src to offset.
func (b WriteBuf) PutBytes(offset int, src []byte) error {
	if err := b.Check("PutBytes", offset, len(src)); err != nil {
		return err
	}
	copy(b.data[offset:], src)
	return nil
}

// Fill sets n bytes at offset to v.
func (b WriteBuf) Fill(offset, n int, v byte) error {
	if err := b.Check("Fill", offset, n); err != nil {
		return err
	}
	window := b.data[offset : offset+n]
	if v == 0 {
		clear(window)
		return nil
	}
	for i := range window {
		window[i] = v
	}
	return nil
}

// PutArray writes every element of src starting at offset.
func PutArray[T Primitive](b WriteBuf, offset int, src []T) error {
	size := common.Size[T]()
	if err := b.Check("PutArray", offset, len(src)*size); err != nil {
		return err
	}
	for i, v := range src {
		common.Put(b.data[offset+i*size:], v)
	}
	return nil
}

// PutArrayNullPadded writes up to n elements of src and fills the rest of
// the n-element window with null. Elements past n are ignored.
func PutArrayNullPadded[T Primitive](b WriteBuf, offset, n int, src []T, null T) error {
	size := common.Size[T]()
	if err := b.Check("PutArrayNullPadded", offset, n*size); err != nil {
		return err
	}
	m := min(len(src), n)
	for i := 0; i < m; i++ {
		common.Put(b.data[offset+i*size:], src[i])
	}
	for i := m; i < n; i++ {
		common.Put(b.data[offset+i*size:], null)
	}
	return nil
}

// PutArrayZeroPadded writes up to n elements of src and zeroes the rest of
// the window.
func PutArrayZeroPadded[T Primitive](b WriteBuf, offset, n int, src []T) error {
	size := common.Size[T]()
	if err := b.Check("PutArrayZeroPadded", offset, n*size); err != nil {
		return err
	}
	m := min(len(src), n)
	for i := 0; i < m; i++ {
		common.Put(b.data[offset+i*size:], src[i])
	}
	clear(b.data[offset+m*size : offset+n*size])
	return nil
}

// PutArrayPrefix writes up to n elements of src and leaves the rest of the
// window untouched.
func PutArrayPrefix[T Primitive](b WriteBuf, offset, n int, src []T) error {
	size := common.Size[T]()
	if err := b.Check("PutArrayPrefix", offset, n*size); err != nil {
		return err
	}
	m := min(len(src), n)
	for i := 0; i < m; i++ {
		common.Put(b.data[offset+i*size:], src[i])
	}
	return nil
}

// PutArraySeq drains seq into the window, stopping after n elements, and
// null-fills whatever seq did not produce.
func PutArraySeq[T Primitive](b WriteBuf, offset, n int, seq iter.Seq[T], null T) error {
	size := common.Size[T]()
	if err := b.Check("PutArraySeq", offset, n*size); err != nil {
		return err
	}
	i := 0
	if n > 0 && seq != nil {
		for v := range seq {
			common.Put(b.data[offset+i*size:], v)
			i++
			if i == n {
				break
			}
		}
	}
	for ; i < n; i++ {
		common.Put(b.data[offset+i*size:], null)
	}
	return nil
}

// GetArray fills dst with len(dst) elements read from offset.
func GetArray[T Primitive](b ReadBuf, offset int, dst []T) error {
	size := common.Size[T]()
	if err := b.Check("GetArray", offset, len(dst)*size); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = common.Get[T](b.data[offset+i*size:])
	}
	return nil
}

// PutString copies s into an n-byte char window and zero-fills the tail.
// Bytes of s past n are ignored.
func PutString(b WriteBuf, offset, n int, s string) error {
	if err := b.Check("PutString", offset, n); err != nil {
		return err
	}
	m := copy(b.data[offset:offset+n], s)
	clear(b.data[offset+m : offset+n])
	return nil
}

// GetString reads an n-byte char window up to its first NUL.
func GetString(b ReadBuf, offset, n int) (string, error) {
	raw, err := b.Bytes(offset, n)
	if err != nil {
		return "", err
	}
	for i, c := range raw {
		if c == 0 {
			return string(raw[:i]), nil
		}
	}
	return string(raw), nil
}
