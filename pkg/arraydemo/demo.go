// Package arraydemo holds the codecs generated for a schema made of one
// sixteen-element array per primitive type. It exists to exercise every
// array write policy against every element width.
package arraydemo

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/rawbytedev/sbewire"
)

const (
	SchemaID        uint16 = 2
	SchemaVersion   uint16 = 0
	DemoTemplateID  uint16 = 1
	DemoBlockLength uint16 = 688

	Fixed16Length = 16
)

var ErrHeaderMismatch = errors.New("header does not describe a Demo message")

func Fixed16CharNullValue() byte { return 0 }
func Fixed16U8NullValue() uint8 { return math.MaxUint8 }
func Fixed16I8NullValue() int8 { return math.MinInt8 }
func Fixed16I16NullValue() int16 { return math.MinInt16 }
func Fixed16I32NullValue() int32 { return math.MinInt32 }
func Fixed16I64NullValue() int64 { return math.MinInt64 }
func Fixed16U16NullValue() uint16 { return math.MaxUint16 }
func Fixed16U32NullValue() uint32 { return math.MaxUint32 }
func Fixed16U64NullValue() uint64 { return math.MaxUint64 }
func Fixed16F32NullValue() float32 { return sbewire.NullValue[float32]() }
func Fixed16F64NullValue() float64 { return sbewire.NullValue[float64]() }

// DemoEncoder writes one Demo message in place.
type DemoEncoder struct {
	buf    sbewire.WriteBuf
	offset int
	cur    sbewire.Cursor
}

func (e *DemoEncoder) Wrap(buf sbewire.WriteBuf, offset int) error {
	if err := e.cur.Reset(offset, int(DemoBlockLength), buf.Capacity()); err != nil {
		return err
	}
	e.buf, e.offset = buf, offset
	return nil
}

func (e *DemoEncoder) WrapAndApplyHeader(buf sbewire.WriteBuf, offset int) error {
	var hdr sbewire.MessageHeaderEncoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return err
	}
	if err := e.Wrap(buf, hdr.BodyOffset()); err != nil {
		return err
	}
	return hdr.Apply(sbewire.MessageHeader{
		BlockLength: DemoBlockLength,
		TemplateID:  DemoTemplateID,
		SchemaID:    SchemaID,
		Version:     SchemaVersion,
	})
}

func (e *DemoEncoder) Offset() int        { return e.offset }
func (e *DemoEncoder) EncodedLength() int { return e.cur.Limit() - e.offset }

func (e *DemoEncoder) scope() sbewire.Scope {
	return sbewire.NewScope(&e.cur, sbewire.RootToken, e.offset)
}

func (e *DemoEncoder) Fixed16Char() sbewire.ArrayEncoder[byte] {
	return sbewire.NewArrayEncoder("Demo.fixed16Char", e.scope(), e.buf, 0, Fixed16Length, Fixed16CharNullValue())
}

func (e *DemoEncoder) PutFixed16Char(v [Fixed16Length]byte) error { return e.Fixed16Char().Put(v[:]) }
func (e *DemoEncoder) PutFixed16CharNullPadded(src []byte) error { return e.Fixed16Char().NullPadded(src) }
func (e *DemoEncoder) PutFixed16CharZeroPadded(src []byte) error { return e.Fixed16Char().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16CharPrefix(src []byte) error { return e.Fixed16Char().Prefix(src) }
func (e *DemoEncoder) PutFixed16CharSeq(seq iter.Seq[byte]) error { return e.Fixed16Char().Seq(seq) }

func (e *DemoEncoder) Fixed16U8() sbewire.ArrayEncoder[uint8] {
	return sbewire.NewArrayEncoder("Demo.fixed16U8", e.scope(), e.buf, 16, Fixed16Length, Fixed16U8NullValue())
}

func (e *DemoEncoder) PutFixed16U8(v [Fixed16Length]uint8) error { return e.Fixed16U8().Put(v[:]) }
func (e *DemoEncoder) PutFixed16U8NullPadded(src []uint8) error { return e.Fixed16U8().NullPadded(src) }
func (e *DemoEncoder) PutFixed16U8ZeroPadded(src []uint8) error { return e.Fixed16U8().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16U8Prefix(src []uint8) error { return e.Fixed16U8().Prefix(src) }
func (e *DemoEncoder) PutFixed16U8Seq(seq iter.Seq[uint8]) error { return e.Fixed16U8().Seq(seq) }

func (e *DemoEncoder) Fixed16I8() sbewire.ArrayEncoder[int8] {
	return sbewire.NewArrayEncoder("Demo.fixed16I8", e.scope(), e.buf, 32, Fixed16Length, Fixed16I8NullValue())
}

func (e *DemoEncoder) PutFixed16I8(v [Fixed16Length]int8) error { return e.Fixed16I8().Put(v[:]) }
func (e *DemoEncoder) PutFixed16I8NullPadded(src []int8) error { return e.Fixed16I8().NullPadded(src) }
func (e *DemoEncoder) PutFixed16I8ZeroPadded(src []int8) error { return e.Fixed16I8().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16I8Prefix(src []int8) error { return e.Fixed16I8().Prefix(src) }
func (e *DemoEncoder) PutFixed16I8Seq(seq iter.Seq[int8]) error { return e.Fixed16I8().Seq(seq) }

func (e *DemoEncoder) Fixed16I16() sbewire.ArrayEncoder[int16] {
	return sbewire.NewArrayEncoder("Demo.fixed16I16", e.scope(), e.buf, 48, Fixed16Length, Fixed16I16NullValue())
}

func (e *DemoEncoder) PutFixed16I16(v [Fixed16Length]int16) error { return e.Fixed16I16().Put(v[:]) }
func (e *DemoEncoder) PutFixed16I16NullPadded(src []int16) error { return e.Fixed16I16().NullPadded(src) }
func (e *DemoEncoder) PutFixed16I16ZeroPadded(src []int16) error { return e.Fixed16I16().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16I16Prefix(src []int16) error { return e.Fixed16I16().Prefix(src) }
func (e *DemoEncoder) PutFixed16I16Seq(seq iter.Seq[int16]) error { return e.Fixed16I16().Seq(seq) }

func (e *DemoEncoder) Fixed16I32() sbewire.ArrayEncoder[int32] {
	return sbewire.NewArrayEncoder("Demo.fixed16I32", e.scope(), e.buf, 80, Fixed16Length, Fixed16I32NullValue())
}

func (e *DemoEncoder) PutFixed16I32(v [Fixed16Length]int32) error { return e.Fixed16I32().Put(v[:]) }
func (e *DemoEncoder) PutFixed16I32NullPadded(src []int32) error { return e.Fixed16I32().NullPadded(src) }
func (e *DemoEncoder) PutFixed16I32ZeroPadded(src []int32) error { return e.Fixed16I32().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16I32Prefix(src []int32) error { return e.Fixed16I32().Prefix(src) }
func (e *DemoEncoder) PutFixed16I32Seq(seq iter.Seq[int32]) error { return e.Fixed16I32().Seq(seq) }

func (e *DemoEncoder) Fixed16I64() sbewire.ArrayEncoder[int64] {
	return sbewire.NewArrayEncoder("Demo.fixed16I64", e.scope(), e.buf, 144, Fixed16Length, Fixed16I64NullValue())
}

func (e *DemoEncoder) PutFixed16I64(v [Fixed16Length]int64) error { return e.Fixed16I64().Put(v[:]) }
func (e *DemoEncoder) PutFixed16I64NullPadded(src []int64) error { return e.Fixed16I64().NullPadded(src) }
func (e *DemoEncoder) PutFixed16I64ZeroPadded(src []int64) error { return e.Fixed16I64().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16I64Prefix(src []int64) error { return e.Fixed16I64().Prefix(src) }
func (e *DemoEncoder) PutFixed16I64Seq(seq iter.Seq[int64]) error { return e.Fixed16I64().Seq(seq) }

func (e *DemoEncoder) Fixed16U16() sbewire.ArrayEncoder[uint16] {
	return sbewire.NewArrayEncoder("Demo.fixed16U16", e.scope(), e.buf, 272, Fixed16Length, Fixed16U16NullValue())
}

func (e *DemoEncoder) PutFixed16U16(v [Fixed16Length]uint16) error { return e.Fixed16U16().Put(v[:]) }
func (e *DemoEncoder) PutFixed16U16NullPadded(src []uint16) error { return e.Fixed16U16().NullPadded(src) }
func (e *DemoEncoder) PutFixed16U16ZeroPadded(src []uint16) error { return e.Fixed16U16().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16U16Prefix(src []uint16) error { return e.Fixed16U16().Prefix(src) }
func (e *DemoEncoder) PutFixed16U16Seq(seq iter.Seq[uint16]) error { return e.Fixed16U16().Seq(seq) }

func (e *DemoEncoder) Fixed16U32() sbewire.ArrayEncoder[uint32] {
	return sbewire.NewArrayEncoder("Demo.fixed16U32", e.scope(), e.buf, 304, Fixed16Length, Fixed16U32NullValue())
}

func (e *DemoEncoder) PutFixed16U32(v [Fixed16Length]uint32) error { return e.Fixed16U32().Put(v[:]) }
func (e *DemoEncoder) PutFixed16U32NullPadded(src []uint32) error { return e.Fixed16U32().NullPadded(src) }
func (e *DemoEncoder) PutFixed16U32ZeroPadded(src []uint32) error { return e.Fixed16U32().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16U32Prefix(src []uint32) error { return e.Fixed16U32().Prefix(src) }
func (e *DemoEncoder) PutFixed16U32Seq(seq iter.Seq[uint32]) error { return e.Fixed16U32().Seq(seq) }

func (e *DemoEncoder) Fixed16U64() sbewire.ArrayEncoder[uint64] {
	return sbewire.NewArrayEncoder("Demo.fixed16U64", e.scope(), e.buf, 368, Fixed16Length, Fixed16U64NullValue())
}

func (e *DemoEncoder) PutFixed16U64(v [Fixed16Length]uint64) error { return e.Fixed16U64().Put(v[:]) }
func (e *DemoEncoder) PutFixed16U64NullPadded(src []uint64) error { return e.Fixed16U64().NullPadded(src) }
func (e *DemoEncoder) PutFixed16U64ZeroPadded(src []uint64) error { return e.Fixed16U64().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16U64Prefix(src []uint64) error { return e.Fixed16U64().Prefix(src) }
func (e *DemoEncoder) PutFixed16U64Seq(seq iter.Seq[uint64]) error { return e.Fixed16U64().Seq(seq) }

func (e *DemoEncoder) Fixed16F32() sbewire.ArrayEncoder[float32] {
	return sbewire.NewArrayEncoder("Demo.fixed16F32", e.scope(), e.buf, 496, Fixed16Length, Fixed16F32NullValue())
}

func (e *DemoEncoder) PutFixed16F32(v [Fixed16Length]float32) error { return e.Fixed16F32().Put(v[:]) }
func (e *DemoEncoder) PutFixed16F32NullPadded(src []float32) error { return e.Fixed16F32().NullPadded(src) }
func (e *DemoEncoder) PutFixed16F32ZeroPadded(src []float32) error { return e.Fixed16F32().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16F32Prefix(src []float32) error { return e.Fixed16F32().Prefix(src) }
func (e *DemoEncoder) PutFixed16F32Seq(seq iter.Seq[float32]) error { return e.Fixed16F32().Seq(seq) }

func (e *DemoEncoder) Fixed16F64() sbewire.ArrayEncoder[float64] {
	return sbewire.NewArrayEncoder("Demo.fixed16F64", e.scope(), e.buf, 560, Fixed16Length, Fixed16F64NullValue())
}

func (e *DemoEncoder) PutFixed16F64(v [Fixed16Length]float64) error { return e.Fixed16F64().Put(v[:]) }
func (e *DemoEncoder) PutFixed16F64NullPadded(src []float64) error { return e.Fixed16F64().NullPadded(src) }
func (e *DemoEncoder) PutFixed16F64ZeroPadded(src []float64) error { return e.Fixed16F64().ZeroPadded(src) }
func (e *DemoEncoder) PutFixed16F64Prefix(src []float64) error { return e.Fixed16F64().Prefix(src) }
func (e *DemoEncoder) PutFixed16F64Seq(seq iter.Seq[float64]) error { return e.Fixed16F64().Seq(seq) }

// DemoDecoder reads one Demo message in place.
type DemoDecoder struct {
	buf    sbewire.ReadBuf
	offset int
	cur    sbewire.Cursor
}

func (d *DemoDecoder) Wrap(buf sbewire.ReadBuf, offset, actingBlockLength int) error {
	if actingBlockLength < int(DemoBlockLength) {
		return fmt.Errorf("%w: block length %d", ErrHeaderMismatch, actingBlockLength)
	}
	if err := d.cur.Reset(offset, actingBlockLength, buf.Capacity()); err != nil {
		return err
	}
	d.buf, d.offset = buf, offset
	return nil
}

// WrapAndReadHeader reads the header at offset and wraps the body after it.
func (d *DemoDecoder) WrapAndReadHeader(buf sbewire.ReadBuf, offset int) error {
	var hdr sbewire.MessageHeaderDecoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return err
	}
	if hdr.TemplateID() != DemoTemplateID || hdr.SchemaID() != SchemaID {
		return fmt.Errorf("%w: template %d schema %d", ErrHeaderMismatch, hdr.TemplateID(), hdr.SchemaID())
	}
	return d.Wrap(buf, hdr.BodyOffset(), int(hdr.BlockLength()))
}

func (d *DemoDecoder) Offset() int        { return d.offset }
func (d *DemoDecoder) EncodedLength() int { return d.cur.Limit() - d.offset }

func (d *DemoDecoder) scope() sbewire.Scope {
	return sbewire.NewScope(&d.cur, sbewire.RootToken, d.offset)
}

func (d *DemoDecoder) Fixed16Char() ([Fixed16Length]byte, error) {
	var v [Fixed16Length]byte
	err := sbewire.NewArrayDecoder("Demo.fixed16Char", d.scope(), d.buf, 0, Fixed16Length, Fixed16CharNullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16U8() ([Fixed16Length]uint8, error) {
	var v [Fixed16Length]uint8
	err := sbewire.NewArrayDecoder("Demo.fixed16U8", d.scope(), d.buf, 16, Fixed16Length, Fixed16U8NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16I8() ([Fixed16Length]int8, error) {
	var v [Fixed16Length]int8
	err := sbewire.NewArrayDecoder("Demo.fixed16I8", d.scope(), d.buf, 32, Fixed16Length, Fixed16I8NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16I16() ([Fixed16Length]int16, error) {
	var v [Fixed16Length]int16
	err := sbewire.NewArrayDecoder("Demo.fixed16I16", d.scope(), d.buf, 48, Fixed16Length, Fixed16I16NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16I32() ([Fixed16Length]int32, error) {
	var v [Fixed16Length]int32
	err := sbewire.NewArrayDecoder("Demo.fixed16I32", d.scope(), d.buf, 80, Fixed16Length, Fixed16I32NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16I64() ([Fixed16Length]int64, error) {
	var v [Fixed16Length]int64
	err := sbewire.NewArrayDecoder("Demo.fixed16I64", d.scope(), d.buf, 144, Fixed16Length, Fixed16I64NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16U16() ([Fixed16Length]uint16, error) {
	var v [Fixed16Length]uint16
	err := sbewire.NewArrayDecoder("Demo.fixed16U16", d.scope(), d.buf, 272, Fixed16Length, Fixed16U16NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16U32() ([Fixed16Length]uint32, error) {
	var v [Fixed16Length]uint32
	err := sbewire.NewArrayDecoder("Demo.fixed16U32", d.scope(), d.buf, 304, Fixed16Length, Fixed16U32NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16U64() ([Fixed16Length]uint64, error) {
	var v [Fixed16Length]uint64
	err := sbewire.NewArrayDecoder("Demo.fixed16U64", d.scope(), d.buf, 368, Fixed16Length, Fixed16U64NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16F32() ([Fixed16Length]float32, error) {
	var v [Fixed16Length]float32
	err := sbewire.NewArrayDecoder("Demo.fixed16F32", d.scope(), d.buf, 496, Fixed16Length, Fixed16F32NullValue()).Get(v[:])
	return v, err
}

func (d *DemoDecoder) Fixed16F64() ([Fixed16Length]float64, error) {
	var v [Fixed16Length]float64
	err := sbewire.NewArrayDecoder("Demo.fixed16F64", d.scope(), d.buf, 560, Fixed16Length, Fixed16F64NullValue()).Get(v[:])
	return v, err
}
