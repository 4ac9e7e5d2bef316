package arraydemo

import (
	"slices"
	"testing"

	"github.com/rawbytedev/sbewire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type field[T sbewire.Primitive] struct {
	name string
	enc  func(*DemoEncoder) sbewire.ArrayEncoder[T]
	dec  func(*DemoDecoder) ([Fixed16Length]T, error)
	null T
}

func same[T sbewire.Primitive](a, b T) bool {
	return a == b || (a != a && b != b)
}

func values[T sbewire.Primitive](n int, base int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(base + i)
	}
	return out
}

func wrapDemo(t *testing.T) (*DemoEncoder, *DemoDecoder, []byte) {
	t.Helper()
	data := make([]byte, sbewire.MessageHeaderLength+int(DemoBlockLength))
	var enc DemoEncoder
	require.NoError(t, enc.WrapAndApplyHeader(sbewire.WriteBufOf(data), 0))
	var dec DemoDecoder
	require.NoError(t, dec.WrapAndReadHeader(sbewire.ReadBufOf(data), 0))
	return &enc, &dec, data
}

func assertWindow[T sbewire.Primitive](t *testing.T, want []T, got [Fixed16Length]T) {
	t.Helper()
	for i := range got {
		assert.True(t, same(want[i], got[i]), "element %d: want %v got %v", i, want[i], got[i])
	}
}

func checkPolicies[T sbewire.Primitive](t *testing.T, f field[T]) {
	t.Run(f.name, func(t *testing.T) {
		enc, dec, _ := wrapDemo(t)
		a := f.enc(enc)
		assert.Equal(t, Fixed16Length, a.Len())

		full := values[T](Fixed16Length, 1)
		require.NoError(t, a.Put(full))
		got, err := f.dec(dec)
		require.NoError(t, err)
		assertWindow(t, full, got)

		short := values[T](5, 40)
		require.NoError(t, a.NullPadded(short))
		got, err = f.dec(dec)
		require.NoError(t, err)
		want := append(slices.Clone(short), slices.Repeat([]T{f.null}, Fixed16Length-5)...)
		assertWindow(t, want, got)

		require.NoError(t, a.ZeroPadded(values[T](3, 60)))
		got, _ = f.dec(dec)
		want = append(values[T](3, 60), make([]T, Fixed16Length-3)...)
		assertWindow(t, want, got)

		require.NoError(t, a.Put(full))
		require.NoError(t, a.Prefix(values[T](2, 90)))
		got, _ = f.dec(dec)
		want = append(values[T](2, 90), full[2:]...)
		assertWindow(t, want, got)

		long := values[T](Fixed16Length+4, 10)
		require.NoError(t, a.NullPadded(long))
		got, _ = f.dec(dec)
		assertWindow(t, long[:Fixed16Length], got)

		require.NoError(t, a.Seq(slices.Values(long)))
		got, _ = f.dec(dec)
		assertWindow(t, long[:Fixed16Length], got)

		require.NoError(t, a.Seq(slices.Values(values[T](4, 20))))
		got, _ = f.dec(dec)
		want = append(values[T](4, 20), slices.Repeat([]T{f.null}, Fixed16Length-4)...)
		assertWindow(t, want, got)

		require.ErrorIs(t, a.Put(short), sbewire.ErrArrayLength)
	})
}

func TestArrayPolicies(t *testing.T) {
	checkPolicies(t, field[byte]{"char", (*DemoEncoder).Fixed16Char, (*DemoDecoder).Fixed16Char, 0})
	checkPolicies(t, field[uint8]{"u8", (*DemoEncoder).Fixed16U8, (*DemoDecoder).Fixed16U8, Fixed16U8NullValue()})
	checkPolicies(t, field[int8]{"i8", (*DemoEncoder).Fixed16I8, (*DemoDecoder).Fixed16I8, Fixed16I8NullValue()})
	checkPolicies(t, field[int16]{"i16", (*DemoEncoder).Fixed16I16, (*DemoDecoder).Fixed16I16, Fixed16I16NullValue()})
	checkPolicies(t, field[int32]{"i32", (*DemoEncoder).Fixed16I32, (*DemoDecoder).Fixed16I32, Fixed16I32NullValue()})
	checkPolicies(t, field[int64]{"i64", (*DemoEncoder).Fixed16I64, (*DemoDecoder).Fixed16I64, Fixed16I64NullValue()})
	checkPolicies(t, field[uint16]{"u16", (*DemoEncoder).Fixed16U16, (*DemoDecoder).Fixed16U16, Fixed16U16NullValue()})
	checkPolicies(t, field[uint32]{"u32", (*DemoEncoder).Fixed16U32, (*DemoDecoder).Fixed16U32, Fixed16U32NullValue()})
	checkPolicies(t, field[uint64]{"u64", (*DemoEncoder).Fixed16U64, (*DemoDecoder).Fixed16U64, Fixed16U64NullValue()})
	checkPolicies(t, field[float32]{"f32", (*DemoEncoder).Fixed16F32, (*DemoDecoder).Fixed16F32, Fixed16F32NullValue()})
	checkPolicies(t, field[float64]{"f64", (*DemoEncoder).Fixed16F64, (*DemoDecoder).Fixed16F64, Fixed16F64NullValue()})
}

func TestFieldsDoNotOverlap(t *testing.T) {
	enc, dec, data := wrapDemo(t)

	var chars [Fixed16Length]byte
	copy(chars[:], "sixteen-chars!!!")
	require.NoError(t, enc.PutFixed16Char(chars))
	require.NoError(t, enc.PutFixed16I16NullPadded([]int16{-1, -2}))
	require.NoError(t, enc.PutFixed16U64ZeroPadded([]uint64{1 << 40}))
	require.NoError(t, enc.PutFixed16F64Seq(slices.Values([]float64{0.5})))
	require.NoError(t, enc.PutFixed16U8Prefix([]uint8{1, 2, 3}))

	gotChars, err := dec.Fixed16Char()
	require.NoError(t, err)
	assert.Equal(t, chars, gotChars)

	i16, _ := dec.Fixed16I16()
	assert.Equal(t, int16(-2), i16[1])
	assert.Equal(t, Fixed16I16NullValue(), i16[15])

	u64, _ := dec.Fixed16U64()
	assert.Equal(t, uint64(1<<40), u64[0])
	assert.Equal(t, uint64(0), u64[15])

	f64, _ := dec.Fixed16F64()
	assert.Equal(t, 0.5, f64[0])
	assert.True(t, sbewire.IsNull(f64[15]))

	u8, _ := dec.Fixed16U8()
	assert.Equal(t, [Fixed16Length]uint8{1, 2, 3}, u8)

	i32, _ := dec.Fixed16I32()
	assert.Equal(t, [Fixed16Length]int32{}, i32)

	assert.Equal(t, int(DemoBlockLength), enc.EncodedLength())
	assert.Equal(t, len(data)-sbewire.MessageHeaderLength, dec.EncodedLength())
}

func TestDemoWrapMismatch(t *testing.T) {
	data := make([]byte, sbewire.MessageHeaderLength+int(DemoBlockLength))
	var enc DemoEncoder
	require.NoError(t, enc.WrapAndApplyHeader(sbewire.WriteBufOf(data), 0))
	data[4] = 1

	var dec DemoDecoder
	assert.ErrorIs(t, dec.WrapAndReadHeader(sbewire.ReadBufOf(data), 0), ErrHeaderMismatch)
	assert.True(t, sbewire.IsBounds(enc.Wrap(sbewire.WriteBufOf(data[:100]), 0)))
}
