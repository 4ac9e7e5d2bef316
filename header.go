package sbewire

import (
	"github.com/rawbytedev/sbewire/internal/common"
)

// MessageHeaderLength is the size of the header in front of every message.
const MessageHeaderLength = 8

const (
	blockLengthOffset = 0
	templateIDOffset  = 2
	schemaIDOffset    = 4
	versionOffset     = 6
)

// MessageHeader is a decoded copy of a message header.
type MessageHeader struct {
	BlockLength uint16 `json:"blockLength" yaml:"blockLength"`
	TemplateID  uint16 `json:"templateId" yaml:"templateId"`
	SchemaID    uint16 `json:"schemaId" yaml:"schemaId"`
	Version     uint16 `json:"version" yaml:"version"`
}

// MessageHeaderEncoder writes the four header fields.
type MessageHeaderEncoder struct {
	buf    WriteBuf
	offset int
}

// Wrap positions the header at offset. The full header must fit.
func (h *MessageHeaderEncoder) Wrap(buf WriteBuf, offset int) error {
	if err := buf.Check("MessageHeader.Wrap", offset, MessageHeaderLength); err != nil {
		return err
	}
	h.buf, h.offset = buf, offset
	return nil
}

func (h *MessageHeaderEncoder) SetBlockLength(v uint16) error {
	return h.buf.PutUint16(h.offset+blockLengthOffset, v)
}

func (h *MessageHeaderEncoder) SetTemplateID(v uint16) error {
	return h.buf.PutUint16(h.offset+templateIDOffset, v)
}

func (h *MessageHeaderEncoder) SetSchemaID(v uint16) error {
	return h.buf.PutUint16(h.offset+schemaIDOffset, v)
}

func (h *MessageHeaderEncoder) SetVersion(v uint16) error {
	return h.buf.PutUint16(h.offset+versionOffset, v)
}

// Apply writes all four fields at once.
func (h *MessageHeaderEncoder) Apply(m MessageHeader) error {
	if err := h.buf.Check("MessageHeader.Apply", h.offset, MessageHeaderLength); err != nil {
		return err
	}
	b := h.buf.data[h.offset:]
	common.Put(b[blockLengthOffset:], m.BlockLength)
	common.Put(b[templateIDOffset:], m.TemplateID)
	common.Put(b[schemaIDOffset:], m.SchemaID)
	common.Put(b[versionOffset:], m.Version)
	return nil
}

// BodyOffset is where the message body following this header starts.
func (h *MessageHeaderEncoder) BodyOffset() int { return h.offset + MessageHeaderLength }

// MessageHeaderDecoder reads the four header fields. Wrap validates the
// whole header, so the getters cannot fail afterwards; an unwrapped
// decoder reads zeros.
type MessageHeaderDecoder struct {
	buf    ReadBuf
	offset int
}

func (h *MessageHeaderDecoder) Wrap(buf ReadBuf, offset int) error {
	if err := buf.Check("MessageHeader.Wrap", offset, MessageHeaderLength); err != nil {
		return err
	}
	h.buf, h.offset = buf, offset
	return nil
}

func (h *MessageHeaderDecoder) field(rel int) uint16 {
	v, _ := h.buf.Uint16(h.offset + rel)
	return v
}

func (h *MessageHeaderDecoder) BlockLength() uint16 { return h.field(blockLengthOffset) }
func (h *MessageHeaderDecoder) TemplateID() uint16  { return h.field(templateIDOffset) }
func (h *MessageHeaderDecoder) SchemaID() uint16    { return h.field(schemaIDOffset) }
func (h *MessageHeaderDecoder) Version() uint16     { return h.field(versionOffset) }

func (h *MessageHeaderDecoder) Header() MessageHeader {
	return MessageHeader{
		BlockLength: h.BlockLength(),
		TemplateID:  h.TemplateID(),
		SchemaID:    h.SchemaID(),
		Version:     h.Version(),
	}
}

// Buf returns the buffer the header was wrapped over.
func (h *MessageHeaderDecoder) Buf() ReadBuf { return h.buf }

func (h *MessageHeaderDecoder) BodyOffset() int { return h.offset + MessageHeaderLength }

// NextMessageOffset returns where a message packed after the one at prev
// begins, given that message's encoded body length.
func NextMessageOffset(prev, encodedLength int) int {
	return prev + MessageHeaderLength + encodedLength
}
