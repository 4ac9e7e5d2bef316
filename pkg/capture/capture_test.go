package capture

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("sbe message body "), 64)
	for _, compress := range []bool{false, true} {
		codec := NewCodec(zstd.SpeedDefault)
		frame, err := codec.AppendFrame(nil, payload, compress)
		require.NoError(t, err)
		assert.Equal(t, []byte("SBEC"), frame[:4])
		if compress {
			assert.Less(t, len(frame), len(payload))
		} else {
			assert.Len(t, frame, HeaderLength+len(payload)+4)
		}

		got, h, err := codec.OpenFrame(frame)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
		assert.Equal(t, compress, h.Compressed())
		assert.Equal(t, uint32(len(payload)), h.RawLen)
		require.NoError(t, codec.Close())
	}
}

func TestFrameCorruption(t *testing.T) {
	codec := NewCodec(zstd.SpeedFastest)
	defer codec.Close()
	frame, err := codec.AppendFrame(nil, []byte("payload"), false)
	require.NoError(t, err)

	flipped := bytes.Clone(frame)
	flipped[HeaderLength+2] ^= 0xff
	_, _, err = codec.OpenFrame(flipped)
	assert.ErrorIs(t, err, ErrChecksum)

	badMagic := bytes.Clone(frame)
	badMagic[0] = 'X'
	_, _, err = codec.OpenFrame(badMagic)
	assert.ErrorIs(t, err, ErrBadMagic)

	badVersion := bytes.Clone(frame)
	badVersion[4] = 9
	_, _, err = codec.OpenFrame(badVersion)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, _, err = codec.OpenFrame(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrTruncated)

	huge := bytes.Clone(frame)
	huge[9] = 0x7f
	_, _, err = codec.OpenFrame(huge)
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestStream(t *testing.T) {
	var file bytes.Buffer
	w := NewWriter(&file, true)
	payloads := [][]byte{
		[]byte("first"),
		bytes.Repeat([]byte{7}, 5000),
		{},
	}
	for _, p := range payloads {
		require.NoError(t, w.WriteFrame(p))
	}
	assert.Equal(t, 3, w.Frames())
	require.NoError(t, w.Close())

	r := NewReader(bytes.NewReader(file.Bytes()))
	defer r.Close()
	for _, want := range payloads {
		got, h, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, len(want) > 0, h.Compressed())
		assert.Equal(t, want, bytes.Clone(got))
	}
	_, _, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamTruncated(t *testing.T) {
	var file bytes.Buffer
	w := NewWriter(&file, false)
	require.NoError(t, w.WriteFrame([]byte("abcdef")))

	data := file.Bytes()
	for _, cut := range []int{3, HeaderLength + 2, len(data) - 1} {
		r := NewReader(bytes.NewReader(data[:cut]))
		_, _, err := r.Next()
		assert.ErrorIs(t, err, ErrTruncated, "cut at %d", cut)
	}
}
