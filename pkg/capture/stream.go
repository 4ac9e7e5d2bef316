package capture

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Writer appends frames to an io.Writer.
type Writer struct {
	w        io.Writer
	codec    *Codec
	compress bool
	scratch  []byte
	frames   int
}

func NewWriter(w io.Writer, compress bool) *Writer {
	return &Writer{w: w, codec: NewCodec(zstd.SpeedBetterCompression), compress: compress}
}

// WriteFrame stores raw as one frame.
func (w *Writer) WriteFrame(raw []byte) error {
	frame, err := w.codec.AppendFrame(w.scratch[:0], raw, w.compress)
	if err != nil {
		return err
	}
	w.scratch = frame
	if _, err := w.w.Write(frame); err != nil {
		return fmt.Errorf("capture: write frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Frames is the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

func (w *Writer) Close() error { return w.codec.Close() }

// Reader walks the frames of an io.Reader.
type Reader struct {
	r      io.Reader
	codec  *Codec
	buf    []byte
	frames int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, codec: NewCodec(zstd.SpeedDefault)}
}

// Next returns the raw payload of the next frame and its header. The
// payload is only valid until the following call. io.EOF marks a clean end;
// a partial frame fails with ErrTruncated.
func (r *Reader) Next() ([]byte, Header, error) {
	if cap(r.buf) < HeaderLength {
		r.buf = make([]byte, HeaderLength, 4096)
	}
	hdr := r.buf[:HeaderLength]
	if _, err := io.ReadFull(r.r, hdr); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Header{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, Header{}, ErrTruncated
		}
		return nil, Header{}, fmt.Errorf("capture: read frame %d: %w", r.frames, err)
	}
	h, err := ParseHeader(hdr)
	if err != nil {
		return nil, h, err
	}
	n := h.FrameLength()
	if cap(r.buf) < n {
		grown := make([]byte, n)
		copy(grown, hdr)
		r.buf = grown
	}
	frame := r.buf[:n]
	if _, err := io.ReadFull(r.r, frame[HeaderLength:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, h, ErrTruncated
		}
		return nil, h, fmt.Errorf("capture: read frame %d: %w", r.frames, err)
	}
	raw, h, err := r.codec.OpenFrame(frame)
	if err != nil {
		return nil, h, fmt.Errorf("frame %d: %w", r.frames, err)
	}
	r.frames++
	return raw, h, nil
}

func (r *Reader) Close() error { return r.codec.Close() }
