package common

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	assert.Equal(t, 1, Size[uint8]())
	assert.Equal(t, 1, Size[int8]())
	assert.Equal(t, 2, Size[uint16]())
	assert.Equal(t, 2, Size[int16]())
	assert.Equal(t, 4, Size[uint32]())
	assert.Equal(t, 4, Size[int32]())
	assert.Equal(t, 4, Size[float32]())
	assert.Equal(t, 8, Size[uint64]())
	assert.Equal(t, 8, Size[int64]())
	assert.Equal(t, 8, Size[float64]())
}

func TestLittleEndianLayout(t *testing.T) {
	b := make([]byte, 8)
	Put(b, uint16(0x0102))
	assert.Equal(t, []byte{0x02, 0x01}, b[:2])

	Put(b, int32(-2))
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, b[:4])

	Put(b, float32(35.9))
	assert.Equal(t, []byte{154, 153, 15, 66}, b[:4])
}

func TestRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	check := func(u8 uint8, i8 int8, u16 uint16, i16 int16, u32 uint32, i32 int32, u64 uint64, i64 int64, f64 float64) bool {
		Put(b, u8)
		ok := Get[uint8](b) == u8
		Put(b, i8)
		ok = ok && Get[int8](b) == i8
		Put(b, u16)
		ok = ok && Get[uint16](b) == u16
		Put(b, i16)
		ok = ok && Get[int16](b) == i16
		Put(b, u32)
		ok = ok && Get[uint32](b) == u32
		Put(b, i32)
		ok = ok && Get[int32](b) == i32
		Put(b, u64)
		ok = ok && Get[uint64](b) == u64
		Put(b, i64)
		ok = ok && Get[int64](b) == i64
		Put(b, f64)
		return ok && math.Float64bits(Get[float64](b)) == math.Float64bits(f64)
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestNull(t *testing.T) {
	assert.Equal(t, uint8(math.MaxUint8), Null[uint8]())
	assert.Equal(t, int8(math.MinInt8), Null[int8]())
	assert.Equal(t, uint16(math.MaxUint16), Null[uint16]())
	assert.Equal(t, int16(math.MinInt16), Null[int16]())
	assert.Equal(t, uint32(math.MaxUint32), Null[uint32]())
	assert.Equal(t, int32(math.MinInt32), Null[int32]())
	assert.Equal(t, uint64(math.MaxUint64), Null[uint64]())
	assert.Equal(t, int64(math.MinInt64), Null[int64]())
	assert.True(t, math.IsNaN(float64(Null[float32]())))
	assert.True(t, math.IsNaN(Null[float64]()))

	assert.True(t, IsNull(Null[float32]()))
	assert.True(t, IsNull(Null[int16]()))
	assert.False(t, IsNull(float64(0)))
	assert.False(t, IsNull(uint32(7)))
}
