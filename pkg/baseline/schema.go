// Package baseline holds the codecs generated for the car example schema:
// the Car message with its Engine composite, two repeating groups and three
// var data fields, plus a small Ping message sharing the schema.
package baseline

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/sbewire"
)

const (
	SchemaID      uint16 = 1
	SchemaVersion uint16 = 0
)

var (
	ErrTemplateMismatch = errors.New("template id does not match")
	ErrSchemaMismatch   = errors.New("schema id does not match")
	ErrShortBlock       = errors.New("acting block length shorter than the schema block")
)

func checkHeader(name string, hdr *sbewire.MessageHeaderDecoder, templateID uint16) error {
	if got := hdr.TemplateID(); got != templateID {
		return fmt.Errorf("%s: %w: got %d, want %d", name, ErrTemplateMismatch, got, templateID)
	}
	if got := hdr.SchemaID(); got != SchemaID {
		return fmt.Errorf("%s: %w: got %d, want %d", name, ErrSchemaMismatch, got, SchemaID)
	}
	return nil
}

func checkBlock(name string, acting int, block uint16) error {
	if acting < int(block) {
		return fmt.Errorf("%s: %w: %d < %d", name, ErrShortBlock, acting, block)
	}
	return nil
}

func headerFor(templateID, blockLength uint16) sbewire.MessageHeader {
	return sbewire.MessageHeader{
		BlockLength: blockLength,
		TemplateID:  templateID,
		SchemaID:    SchemaID,
		Version:     SchemaVersion,
	}
}
