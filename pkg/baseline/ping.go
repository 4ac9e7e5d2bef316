package baseline

import (
	"github.com/rawbytedev/sbewire"
)

const (
	PingTemplateID  uint16 = 2
	PingBlockLength uint16 = 10
)

// PingEncoder writes a Ping: a sequence number and a flag word, no groups
// and no var data.
type PingEncoder struct {
	buf    sbewire.WriteBuf
	offset int
	cur    sbewire.Cursor
}

func (e *PingEncoder) Wrap(buf sbewire.WriteBuf, offset int) error {
	if err := e.cur.Reset(offset, int(PingBlockLength), buf.Capacity()); err != nil {
		return err
	}
	e.buf, e.offset = buf, offset
	return nil
}

func (e *PingEncoder) WrapAndApplyHeader(buf sbewire.WriteBuf, offset int) error {
	var hdr sbewire.MessageHeaderEncoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return err
	}
	if err := e.Wrap(buf, hdr.BodyOffset()); err != nil {
		return err
	}
	return hdr.Apply(headerFor(PingTemplateID, PingBlockLength))
}

func (e *PingEncoder) Offset() int        { return e.offset }
func (e *PingEncoder) EncodedLength() int { return e.cur.Limit() - e.offset }

func (e *PingEncoder) SetSeq(v uint64) error {
	off, err := sbewire.NewScope(&e.cur, sbewire.RootToken, e.offset).At("Ping.seq", 0)
	if err != nil {
		return err
	}
	return e.buf.PutUint64(off, v)
}

func (e *PingEncoder) SetFlags(v uint16) error {
	off, err := sbewire.NewScope(&e.cur, sbewire.RootToken, e.offset).At("Ping.flags", 8)
	if err != nil {
		return err
	}
	return e.buf.PutUint16(off, v)
}

type PingDecoder struct {
	buf               sbewire.ReadBuf
	offset            int
	actingBlockLength int
	cur               sbewire.Cursor
}

func (d *PingDecoder) Wrap(buf sbewire.ReadBuf, offset, actingBlockLength, actingVersion int) error {
	if err := checkBlock("Ping", actingBlockLength, PingBlockLength); err != nil {
		return err
	}
	if err := d.cur.Reset(offset, actingBlockLength, buf.Capacity()); err != nil {
		return err
	}
	d.buf, d.offset, d.actingBlockLength = buf, offset, actingBlockLength
	return nil
}

func (d *PingDecoder) WrapHeader(hdr *sbewire.MessageHeaderDecoder) error {
	if err := checkHeader("Ping", hdr, PingTemplateID); err != nil {
		return err
	}
	return d.Wrap(hdr.Buf(), hdr.BodyOffset(), int(hdr.BlockLength()), int(hdr.Version()))
}

func (d *PingDecoder) Offset() int        { return d.offset }
func (d *PingDecoder) EncodedLength() int { return d.cur.Limit() - d.offset }

func (d *PingDecoder) Seq() (uint64, error) {
	off, err := sbewire.NewScope(&d.cur, sbewire.RootToken, d.offset).At("Ping.seq", 0)
	if err != nil {
		return 0, err
	}
	return d.buf.Uint64(off)
}

func (d *PingDecoder) Flags() (uint16, error) {
	off, err := sbewire.NewScope(&d.cur, sbewire.RootToken, d.offset).At("Ping.flags", 8)
	if err != nil {
		return 0, err
	}
	return d.buf.Uint16(off)
}
