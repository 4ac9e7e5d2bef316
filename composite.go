package sbewire

// Composite is the runtime half of a nested fixed-width record. Entering
// one lends the parent's cursor to it; Leave hands it back. Fields of a
// composite sit at static offsets inside the parent's block, so the limit
// does not move.
type Composite struct {
	scope  Scope
	parent Token
}

// EnterComposite lends the cursor held by parent to a composite of width
// bytes placed rel bytes into the parent's block.
func EnterComposite(op string, parent Scope, rel, width int) (Composite, error) {
	off, err := parent.At(op, rel)
	if err != nil {
		return Composite{}, err
	}
	cur := parent.Cursor()
	if !inBounds(off, width, cur.Capacity()) {
		return Composite{}, boundsError(op, off, width, cur.Capacity())
	}
	tok, err := cur.Lend(op, parent.Token())
	if err != nil {
		return Composite{}, err
	}
	return Composite{scope: NewScope(cur, tok, off), parent: parent.Token()}, nil
}

// Enter lends this composite's cursor to a composite nested inside it.
func (c *Composite) Enter(op string, rel, width int) (Composite, error) {
	return EnterComposite(op, c.Scope(), rel, width)
}

// At resolves a field offset inside the composite.
func (c *Composite) At(op string, rel int) (int, error) {
	if c.scope.cur == nil {
		return 0, sequenceError(op, ErrNotWrapped)
	}
	return c.scope.At(op, rel)
}

func (c *Composite) Scope() Scope { return c.scope }
func (c *Composite) Offset() int  { return c.scope.base }

// Leave returns the cursor to the parent.
func (c *Composite) Leave(op string) error {
	if c.scope.cur == nil {
		return sequenceError(op, ErrParentNotSet)
	}
	return c.scope.cur.Reclaim(op, c.scope.tok, c.parent)
}
