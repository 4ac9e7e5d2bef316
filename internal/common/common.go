package common

import (
	"encoding/binary"
	"math"
)

// Primitive is the set of fixed-width scalar types a wire field can carry.
// char fields are carried as uint8.
type Primitive interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

// Size returns the encoded byte width of T.
func Size[T Primitive]() int {
	var z T
	switch any(z).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	default:
		return 8
	}
}

// Get decodes a little-endian T from the head of b.
// b must hold at least Size[T]() bytes.
func Get[T Primitive](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = int8(b[0])
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return v
}

// Put encodes v little-endian into the head of b.
// b must hold at least Size[T]() bytes.
func Put[T Primitive](b []byte, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[0] = x
	case int8:
		b[0] = byte(x)
	case uint16:
		binary.LittleEndian.PutUint16(b, x)
	case int16:
		binary.LittleEndian.PutUint16(b, uint16(x))
	case uint32:
		binary.LittleEndian.PutUint32(b, x)
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(x))
	case uint64:
		binary.LittleEndian.PutUint64(b, x)
	case int64:
		binary.LittleEndian.PutUint64(b, uint64(x))
	case float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
	case float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(x))
	}
}

// Null returns the default null sentinel of T: the maximum for unsigned
// integers, the minimum for signed integers and NaN for floats.
// char fields override this with 0.
func Null[T Primitive]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *int8:
		*p = math.MinInt8
	case *uint16:
		*p = math.MaxUint16
	case *int16:
		*p = math.MinInt16
	case *uint32:
		*p = math.MaxUint32
	case *int32:
		*p = math.MinInt32
	case *uint64:
		*p = math.MaxUint64
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = float32(math.NaN())
	case *float64:
		*p = math.NaN()
	}
	return v
}

// IsNull reports whether v equals the default null sentinel of T.
// NaN matches NaN here, unlike ==.
func IsNull[T Primitive](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x != x
	case float64:
		return math.IsNaN(x)
	}
	return v == Null[T]()
}
