package sbewire

// Token identifies which codec currently owns a message's cursor.
// Zero never owns anything.
type Token uint64

// RootToken is held by the top-level message codec after Wrap.
const RootToken Token = 1

// MaxNesting bounds how many codecs can hold the cursor at once, the root
// included.
const MaxNesting = 16

// Cursor tracks the moving limit of one message: the first byte after
// everything written or read so far. It lives inside the top-level codec
// and is handed to composites and groups by lending a fresh Token. Only the
// current owner may touch the buffer; the parent gets the cursor back with
// Reclaim.
//
// Tokens keep increasing across Reset, so handles taken from an earlier
// wrap never match a live one.
type Cursor struct {
	limit    int
	capacity int
	owner    Token
	issued   Token
	depth    int
	chain    [MaxNesting]Token
}

// Reset places the limit after a fixed block of blockLength bytes at start
// and gives ownership to RootToken.
func (c *Cursor) Reset(start, blockLength, capacity int) error {
	if !inBounds(start, blockLength, capacity) {
		return boundsError("Wrap", start, blockLength, capacity)
	}
	*c = Cursor{
		limit:    start + blockLength,
		capacity: capacity,
		owner:    RootToken,
		issued:   max(c.issued, RootToken),
		depth:    1,
		chain:    [MaxNesting]Token{RootToken},
	}
	return nil
}

// Check fails unless tok owns the cursor.
func (c *Cursor) Check(op string, tok Token) error {
	if c == nil || c.owner == 0 {
		return sequenceError(op, ErrNotWrapped)
	}
	if c.owner != tok {
		return sequenceError(op, ErrCursorLent)
	}
	return nil
}

// Lend moves ownership from the holder of from to a new token.
func (c *Cursor) Lend(op string, from Token) (Token, error) {
	if err := c.Check(op, from); err != nil {
		return 0, err
	}
	if c.depth == MaxNesting {
		return 0, rangeError(op, ErrNestingTooDeep)
	}
	c.issued++
	c.owner = c.issued
	c.chain[c.depth] = c.owner
	c.depth++
	return c.owner, nil
}

// Reclaim returns ownership from child to parent. A child that still lent
// the cursor further fails with ErrCursorLent; one that is no longer
// holding it at all (already handed back, or from an earlier wrap) fails
// with ErrParentNotSet.
func (c *Cursor) Reclaim(op string, child, parent Token) error {
	if c == nil || c.owner == 0 || child == 0 {
		return sequenceError(op, ErrParentNotSet)
	}
	at := c.active(child)
	switch {
	case at <= 0:
		return sequenceError(op, ErrParentNotSet)
	case at != c.depth-1:
		return sequenceError(op, ErrCursorLent)
	case c.chain[at-1] != parent:
		return sequenceError(op, ErrParentNotSet)
	}
	c.depth--
	c.chain[c.depth] = 0
	c.owner = parent
	return nil
}

// active returns the position of tok in the chain of holders, or -1.
func (c *Cursor) active(tok Token) int {
	for i := c.depth - 1; i >= 0; i-- {
		if c.chain[i] == tok {
			return i
		}
	}
	return -1
}

func (c *Cursor) Limit() int    { return c.limit }
func (c *Cursor) Capacity() int { return c.capacity }

// SetLimit moves the limit to an absolute position inside the buffer.
func (c *Cursor) SetLimit(op string, limit int) error {
	if limit < 0 || limit > c.capacity {
		return boundsError(op, limit, 0, c.capacity)
	}
	c.limit = limit
	return nil
}

// Reserve claims n bytes at the limit and returns where they start.
// The limit does not move when the bytes do not fit.
func (c *Cursor) Reserve(op string, n int) (int, error) {
	at := c.limit
	if !inBounds(at, n, c.capacity) {
		return 0, boundsError(op, at, n, c.capacity)
	}
	c.limit += n
	return at, nil
}

// Scope is one codec's view of the cursor: the token it holds and where its
// fixed block starts. Scopes handed out by groups are only valid for the
// element current when they were taken.
type Scope struct {
	cur  *Cursor
	tok  Token
	base int
	err  error
}

func NewScope(cur *Cursor, tok Token, base int) Scope {
	return Scope{cur: cur, tok: tok, base: base}
}

// At checks ownership and resolves a field offset relative to the block.
func (s Scope) At(op string, rel int) (int, error) {
	if s.err != nil {
		return 0, sequenceError(op, s.err)
	}
	if err := s.cur.Check(op, s.tok); err != nil {
		return 0, err
	}
	return s.base + rel, nil
}

func (s Scope) Cursor() *Cursor { return s.cur }
func (s Scope) Token() Token    { return s.tok }
func (s Scope) Base() int       { return s.base }

// Stage enforces schema order over the variable-position members of one
// level: groups first, then var data, each exactly once.
type Stage struct {
	next int
}

// Check fails unless member want is the next one in order.
func (s *Stage) Check(op string, want int) error {
	if s.next != want {
		return sequenceError(op, ErrOutOfOrder)
	}
	return nil
}

// Pass records member want as done.
func (s *Stage) Pass(want int) { s.next = want + 1 }

// Complete fails unless all total members were visited.
func (s *Stage) Complete(op string, total int) error {
	if s.next != total {
		return sequenceError(op, ErrOutOfOrder)
	}
	return nil
}

func (s *Stage) Reset() { s.next = 0 }
