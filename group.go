package sbewire

import (
	"math"

	"github.com/rawbytedev/sbewire/internal/common"
)

const (
	// GroupHeaderLength is the size of a repeating group's dimension header:
	// blockLength u16 then numInGroup u16.
	GroupHeaderLength = 4
	// MaxGroupCount is the largest count accepted on encode. 65535 is the
	// u16 null and never written.
	MaxGroupCount = math.MaxUint16 - 1
)

// GroupEncoder writes a repeating group. It holds the cursor from
// BeginGroupEncode until End, and every Advance claims the next element's
// fixed block at the limit.
type GroupEncoder struct {
	cur         *Cursor
	parent, tok Token
	count       int
	index       int
	blockLength int
	offset      int
}

// BeginGroupEncode writes the dimension header at the limit and lends the
// parent's cursor to the group. The whole fixed part of the group must fit.
func BeginGroupEncode(op string, parent Scope, buf WriteBuf, count, blockLength int) (GroupEncoder, error) {
	if _, err := parent.At(op, 0); err != nil {
		return GroupEncoder{}, err
	}
	if count < 0 || count > MaxGroupCount {
		return GroupEncoder{}, rangeError(op, ErrCountOutOfRange)
	}
	if blockLength < 0 || blockLength > math.MaxUint16 {
		return GroupEncoder{}, rangeError(op, ErrCountOutOfRange)
	}
	cur := parent.Cursor()
	at := cur.Limit()
	if err := buf.Check(op, at, GroupHeaderLength+count*blockLength); err != nil {
		return GroupEncoder{}, err
	}
	if _, err := cur.Reserve(op, GroupHeaderLength); err != nil {
		return GroupEncoder{}, err
	}
	common.Put(buf.data[at:], uint16(blockLength))
	common.Put(buf.data[at+2:], uint16(count))
	tok, err := cur.Lend(op, parent.Token())
	if err != nil {
		return GroupEncoder{}, err
	}
	return GroupEncoder{
		cur:         cur,
		parent:      parent.Token(),
		tok:         tok,
		count:       count,
		blockLength: blockLength,
	}, nil
}

// Advance moves to the next element.
func (g *GroupEncoder) Advance(op string) error {
	if g.cur == nil {
		return sequenceError(op, ErrNotWrapped)
	}
	if err := g.cur.Check(op, g.tok); err != nil {
		return err
	}
	if g.index >= g.count {
		return sequenceError(op, ErrGroupExhausted)
	}
	off, err := g.cur.Reserve(op, g.blockLength)
	if err != nil {
		return err
	}
	g.offset = off
	g.index++
	return nil
}

// Scope returns the current element's view. It reports ErrNotAdvanced
// until Advance succeeds once.
func (g *GroupEncoder) Scope() Scope {
	s := NewScope(g.cur, g.tok, g.offset)
	switch {
	case g.cur == nil:
		s.err = ErrNotWrapped
	case g.index == 0:
		s.err = ErrNotAdvanced
	}
	return s
}

// At resolves a field offset inside the current element.
func (g *GroupEncoder) At(op string, rel int) (int, error) {
	return g.Scope().At(op, rel)
}

func (g *GroupEncoder) Count() int { return g.count }

// Index is the 1-based position of the current element, 0 before Advance.
func (g *GroupEncoder) Index() int { return g.index }

// Offset is the start of the current element's fixed block.
func (g *GroupEncoder) Offset() int { return g.offset }

// End returns the cursor to the parent once every element was written.
// Ending twice fails with ErrParentNotSet.
func (g *GroupEncoder) End(op string) error {
	if g.cur == nil {
		return sequenceError(op, ErrParentNotSet)
	}
	if g.cur.owner == g.tok && g.index < g.count {
		return sequenceError(op, ErrGroupIncomplete)
	}
	return g.cur.Reclaim(op, g.tok, g.parent)
}

// GroupDecoder reads a repeating group. The acting block length comes from
// the dimension header, so elements written by a newer schema with wider
// blocks are still walked correctly.
type GroupDecoder struct {
	cur         *Cursor
	parent, tok Token
	count       int
	index       int
	blockLength int
	offset      int
}

// BeginGroupDecode reads the dimension header at the limit and lends the
// parent's cursor to the group.
func BeginGroupDecode(op string, parent Scope, buf ReadBuf) (GroupDecoder, error) {
	if _, err := parent.At(op, 0); err != nil {
		return GroupDecoder{}, err
	}
	cur := parent.Cursor()
	at := cur.Limit()
	if err := buf.Check(op, at, GroupHeaderLength); err != nil {
		return GroupDecoder{}, err
	}
	blockLength := int(common.Get[uint16](buf.data[at:]))
	count := int(common.Get[uint16](buf.data[at+2:]))
	if _, err := cur.Reserve(op, GroupHeaderLength); err != nil {
		return GroupDecoder{}, err
	}
	tok, err := cur.Lend(op, parent.Token())
	if err != nil {
		return GroupDecoder{}, err
	}
	return GroupDecoder{
		cur:         cur,
		parent:      parent.Token(),
		tok:         tok,
		count:       count,
		blockLength: blockLength,
	}, nil
}

func (g *GroupDecoder) Advance(op string) error {
	if g.cur == nil {
		return sequenceError(op, ErrNotWrapped)
	}
	if err := g.cur.Check(op, g.tok); err != nil {
		return err
	}
	if g.index >= g.count {
		return sequenceError(op, ErrGroupExhausted)
	}
	off, err := g.cur.Reserve(op, g.blockLength)
	if err != nil {
		return err
	}
	g.offset = off
	g.index++
	return nil
}

func (g *GroupDecoder) Scope() Scope {
	s := NewScope(g.cur, g.tok, g.offset)
	switch {
	case g.cur == nil:
		s.err = ErrNotWrapped
	case g.index == 0:
		s.err = ErrNotAdvanced
	}
	return s
}

func (g *GroupDecoder) At(op string, rel int) (int, error) {
	return g.Scope().At(op, rel)
}

func (g *GroupDecoder) Count() int       { return g.count }
func (g *GroupDecoder) Index() int       { return g.index }
func (g *GroupDecoder) Offset() int      { return g.offset }
func (g *GroupDecoder) BlockLength() int { return g.blockLength }

// Remaining is the number of elements not yet advanced to.
func (g *GroupDecoder) Remaining() int { return g.count - g.index }

// End returns the cursor to the parent once every element was read.
func (g *GroupDecoder) End(op string) error {
	if g.cur == nil {
		return sequenceError(op, ErrParentNotSet)
	}
	if g.cur.owner == g.tok && g.index < g.count {
		return sequenceError(op, ErrGroupIncomplete)
	}
	return g.cur.Reclaim(op, g.tok, g.parent)
}
