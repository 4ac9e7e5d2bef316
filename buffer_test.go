package sbewire

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufCapacity(t *testing.T) {
	data := make([]byte, 16)

	r, err := NewReadBuf(data, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Capacity())

	_, err = NewReadBuf(data, 17)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewWriteBuf(data, -1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	w := WriteBufOf(data)
	assert.Equal(t, 16, w.Capacity())
	assert.Equal(t, 16, w.ReadBuf().Capacity())
}

func TestScalarRoundTrip(t *testing.T) {
	data := make([]byte, 64)
	w := WriteBufOf(data)
	r := w.ReadBuf()

	require.NoError(t, w.PutUint8(0, 0xab))
	require.NoError(t, w.PutInt8(1, -5))
	require.NoError(t, w.PutUint16(2, 0x1234))
	require.NoError(t, w.PutInt16(4, -300))
	require.NoError(t, w.PutUint32(6, 0xdeadbeef))
	require.NoError(t, w.PutInt32(10, -70000))
	require.NoError(t, w.PutUint64(14, math.MaxUint64-1))
	require.NoError(t, w.PutInt64(22, math.MinInt64+1))
	require.NoError(t, w.PutFloat32(30, 35.9))
	require.NoError(t, w.PutFloat64(34, -1.5e300))

	u8, _ := r.Uint8(0)
	i8, _ := r.Int8(1)
	u16, _ := r.Uint16(2)
	i16, _ := r.Int16(4)
	u32, _ := r.Uint32(6)
	i32, _ := r.Int32(10)
	u64, _ := r.Uint64(14)
	i64, _ := r.Int64(22)
	f32, _ := r.Float32(30)
	f64, err := r.Float64(34)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xab), u8)
	assert.Equal(t, int8(-5), i8)
	assert.Equal(t, uint16(0x1234), u16)
	assert.Equal(t, int16(-300), i16)
	assert.Equal(t, uint32(0xdeadbeef), u32)
	assert.Equal(t, int32(-70000), i32)
	assert.Equal(t, uint64(math.MaxUint64-1), u64)
	assert.Equal(t, int64(math.MinInt64+1), i64)
	assert.Equal(t, float32(35.9), f32)
	assert.Equal(t, -1.5e300, f64)
	assert.Equal(t, []byte{0x34, 0x12}, data[2:4])
}

func TestScalarQuick(t *testing.T) {
	w := WriteBufOf(make([]byte, 8))
	r := w.ReadBuf()
	check := func(a uint64, b int32, c float32) bool {
		if w.PutUint64(0, a) != nil {
			return false
		}
		got, _ := r.Uint64(0)
		if got != a {
			return false
		}
		_ = w.PutInt32(4, b)
		gotB, _ := r.Int32(4)
		_ = w.PutFloat32(0, c)
		gotC, _ := r.Float32(0)
		return gotB == b && math.Float32bits(gotC) == math.Float32bits(c)
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestBoundsFailureLeavesBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0xee}, 10)
	w := WriteBufOf(data)

	err := w.PutUint32(8, 1)
	require.Error(t, err)
	assert.True(t, IsBounds(err))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 8, e.Offset)
	assert.Equal(t, 4, e.Width)
	assert.Equal(t, 10, e.Capacity)
	assert.Equal(t, bytes.Repeat([]byte{0xee}, 10), data)

	require.Error(t, w.PutBytes(7, []byte{1, 2, 3, 4}))
	require.Error(t, PutArray(w, 4, []uint16{1, 2, 3, 4}))
	require.Error(t, PutArrayNullPadded(w, 4, 4, []uint16{1}, 0))
	require.Error(t, w.Fill(-1, 2, 0))
	assert.Equal(t, bytes.Repeat([]byte{0xee}, 10), data)

	_, err = w.ReadBuf().Uint64(3)
	assert.True(t, IsBounds(err))
}

func TestBytesAndFill(t *testing.T) {
	data := make([]byte, 8)
	w := WriteBufOf(data)
	require.NoError(t, w.PutBytes(1, []byte("abc")))
	require.NoError(t, w.Fill(4, 4, 0x7f))

	got, err := w.ReadBuf().Bytes(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
	assert.Equal(t, []byte{0, 'a', 'b', 'c', 0x7f, 0x7f, 0x7f, 0x7f}, data)

	require.NoError(t, w.Fill(4, 4, 0))
	assert.Equal(t, []byte{0, 0, 0, 0}, data[4:])
}

func TestArrayPolicies(t *testing.T) {
	const n = 6
	tests := []struct {
		name string
		put  func(w WriteBuf) error
		want []int16
	}{
		{
			name: "exact",
			put:  func(w WriteBuf) error { return PutArray(w, 0, []int16{1, 2, 3, 4, 5, 6}) },
			want: []int16{1, 2, 3, 4, 5, 6},
		},
		{
			name: "null padded",
			put:  func(w WriteBuf) error { return PutArrayNullPadded(w, 0, n, []int16{1, 2}, math.MinInt16) },
			want: []int16{1, 2, math.MinInt16, math.MinInt16, math.MinInt16, math.MinInt16},
		},
		{
			name: "zero padded",
			put:  func(w WriteBuf) error { return PutArrayZeroPadded(w, 0, n, []int16{1, 2, 3}) },
			want: []int16{1, 2, 3, 0, 0, 0},
		},
		{
			name: "prefix keeps tail",
			put:  func(w WriteBuf) error { return PutArrayPrefix(w, 0, n, []int16{1}) },
			want: []int16{1, 9, 9, 9, 9, 9},
		},
		{
			name: "seq null fills",
			put: func(w WriteBuf) error {
				return PutArraySeq(w, 0, n, slices.Values([]int16{4, 5, 6}), math.MinInt16)
			},
			want: []int16{4, 5, 6, math.MinInt16, math.MinInt16, math.MinInt16},
		},
		{
			name: "seq truncates",
			put: func(w WriteBuf) error {
				return PutArraySeq(w, 0, n, slices.Values([]int16{1, 2, 3, 4, 5, 6, 7, 8}), math.MinInt16)
			},
			want: []int16{1, 2, 3, 4, 5, 6},
		},
		{
			name: "null padded truncates",
			put: func(w WriteBuf) error {
				return PutArrayNullPadded(w, 0, n, []int16{6, 5, 4, 3, 2, 1, 0, -1}, math.MinInt16)
			},
			want: []int16{6, 5, 4, 3, 2, 1},
		},
		{
			name: "zero padded empty",
			put:  func(w WriteBuf) error { return PutArrayZeroPadded[int16](w, 0, n, nil) },
			want: []int16{0, 0, 0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// trailing guard bytes must survive every policy
			data := make([]byte, n*2+2)
			w := WriteBufOf(data)
			require.NoError(t, PutArray(w, 0, []int16{9, 9, 9, 9, 9, 9}))
			require.NoError(t, w.Fill(n*2, 2, 0xaa))

			require.NoError(t, tt.put(w))

			got := make([]int16, n)
			require.NoError(t, GetArray(w.ReadBuf(), 0, got))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []byte{0xaa, 0xaa}, data[n*2:])
		})
	}
}

func TestArrayFloatNullIsNaN(t *testing.T) {
	w := WriteBufOf(make([]byte, 16))
	require.NoError(t, PutArrayNullPadded(w, 0, 4, []float32{1.5}, NullValue[float32]()))
	got := make([]float32, 4)
	require.NoError(t, GetArray(w.ReadBuf(), 0, got))
	assert.Equal(t, float32(1.5), got[0])
	for _, v := range got[1:] {
		assert.True(t, IsNull(v))
	}
}

func TestPutString(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, 8)
	w := WriteBufOf(data)

	require.NoError(t, PutString(w, 1, 6, "abc"))
	assert.Equal(t, []byte{'x', 'a', 'b', 'c', 0, 0, 0, 'x'}, data)
	s, err := GetString(w.ReadBuf(), 1, 6)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	require.NoError(t, PutString(w, 1, 6, "abcdefgh"))
	s, err = GetString(w.ReadBuf(), 1, 6)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", s)
	assert.Equal(t, byte('x'), data[7])
}

func FuzzArrayNullPadded(f *testing.F) {
	f.Add([]byte{1, 2, 3}, uint8(5))
	f.Add([]byte{}, uint8(0))
	f.Fuzz(func(t *testing.T, src []byte, n uint8) {
		data := make([]byte, int(n)+1)
		data[n] = 0x5a
		w := WriteBufOf(data)
		require.NoError(t, PutArrayNullPadded(w, 0, int(n), src, 0xff))

		m := min(len(src), int(n))
		assert.Equal(t, src[:m], data[:m])
		for _, b := range data[m:n] {
			assert.Equal(t, byte(0xff), b)
		}
		assert.Equal(t, byte(0x5a), data[n])
	})
}
