// Package capture stores packed SBE buffers in a framed file. Each frame
// carries one buffer of back-to-back messages, optionally zstd-compressed,
// guarded by a CRC32.
package capture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
)

const (
	Version byte = 1

	FlagZstd byte = 0x01

	// HeaderLength covers magic, version, flags, payload length and raw length.
	HeaderLength = 14
	crcLength    = 4

	// MaxPayload bounds both the stored and the decompressed payload.
	MaxPayload = 64 << 20
)

var magic = [4]byte{'S', 'B', 'E', 'C'}

var (
	ErrBadMagic           = errors.New("capture: bad frame magic")
	ErrUnsupportedVersion = errors.New("capture: unsupported frame version")
	ErrFrameTooLarge      = errors.New("capture: frame exceeds size limit")
	ErrChecksum           = errors.New("capture: crc mismatch")
	ErrRawLength          = errors.New("capture: decompressed length mismatch")
	ErrTruncated          = errors.New("capture: truncated frame")
)

// Header is the fixed part in front of every payload.
type Header struct {
	Version    byte
	Flags      byte
	PayloadLen uint32
	RawLen     uint32
}

func (h Header) Compressed() bool { return h.Flags&FlagZstd != 0 }

// FrameLength is the full size of the frame on disk.
func (h Header) FrameLength() int { return HeaderLength + int(h.PayloadLen) + crcLength }

func putHeader(dst []byte, h Header) {
	copy(dst, magic[:])
	dst[4] = h.Version
	dst[5] = h.Flags
	binary.LittleEndian.PutUint32(dst[6:], h.PayloadLen)
	binary.LittleEndian.PutUint32(dst[10:], h.RawLen)
}

// ParseHeader validates the fixed part of a frame.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLength {
		return Header{}, ErrTruncated
	}
	if !bytes.Equal(b[:4], magic[:]) {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:    b[4],
		Flags:      b[5],
		PayloadLen: binary.LittleEndian.Uint32(b[6:]),
		RawLen:     binary.LittleEndian.Uint32(b[10:]),
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.PayloadLen > MaxPayload || h.RawLen > MaxPayload {
		return h, ErrFrameTooLarge
	}
	return h, nil
}

// Codec builds and opens frames. It keeps one zstd encoder and decoder,
// created on first use.
type Codec struct {
	level zstd.EncoderLevel
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

func NewCodec(level zstd.EncoderLevel) *Codec {
	return &Codec{level: level}
}

// AppendFrame appends a frame holding raw to dst.
func (c *Codec) AppendFrame(dst, raw []byte, compress bool) ([]byte, error) {
	if len(raw) > MaxPayload {
		return dst, ErrFrameTooLarge
	}
	h := Header{Version: Version, RawLen: uint32(len(raw))}
	payload := raw
	if compress && len(raw) > 0 {
		enc, err := c.encoder()
		if err != nil {
			return dst, err
		}
		payload = enc.EncodeAll(raw, nil)
		h.Flags |= FlagZstd
	}
	h.PayloadLen = uint32(len(payload))

	start := len(dst)
	dst = append(dst, make([]byte, HeaderLength)...)
	putHeader(dst[start:], h)
	dst = append(dst, payload...)
	crc := crc32.ChecksumIEEE(dst[start+len(magic):])
	return binary.LittleEndian.AppendUint32(dst, crc), nil
}

// OpenFrame checks one complete frame and returns its raw payload. An
// uncompressed payload aliases frame.
func (c *Codec) OpenFrame(frame []byte) ([]byte, Header, error) {
	h, err := ParseHeader(frame)
	if err != nil {
		return nil, h, err
	}
	if len(frame) < h.FrameLength() {
		return nil, h, ErrTruncated
	}
	end := HeaderLength + int(h.PayloadLen)
	want := binary.LittleEndian.Uint32(frame[end:])
	if crc32.ChecksumIEEE(frame[len(magic):end]) != want {
		return nil, h, ErrChecksum
	}
	payload := frame[HeaderLength:end:end]
	if !h.Compressed() {
		if h.RawLen != h.PayloadLen {
			return nil, h, ErrRawLength
		}
		return payload, h, nil
	}
	dec, err := c.decoder()
	if err != nil {
		return nil, h, err
	}
	raw, err := dec.DecodeAll(payload, make([]byte, 0, h.RawLen))
	if err != nil {
		return nil, h, fmt.Errorf("capture: zstd: %w", err)
	}
	if len(raw) != int(h.RawLen) {
		return nil, h, ErrRawLength
	}
	return raw, h, nil
}

func (c *Codec) encoder() (*zstd.Encoder, error) {
	if c.enc == nil {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(c.level))
		if err != nil {
			return nil, err
		}
		c.enc = enc
	}
	return c.enc, nil
}

func (c *Codec) decoder() (*zstd.Decoder, error) {
	if c.dec == nil {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxPayload))
		if err != nil {
			return nil, err
		}
		c.dec = dec
	}
	return c.dec, nil
}

// Close releases the zstd state.
func (c *Codec) Close() error {
	var err error
	if c.enc != nil {
		err = c.enc.Close()
		c.enc = nil
	}
	if c.dec != nil {
		c.dec.Close()
		c.dec = nil
	}
	return err
}
