package sweeptree

// Cursor points at either an occupied node or an empty slot. It is the sum
// of the two cursor kinds: exactly one of Node or Leaf reports true.
//
// Cursors are single-use. Navigation consumes the cursor it is called on and
// produces the next one, so there is never more than one usable view into the
// tree; stale copies panic with ErrStaleCursor.
type Cursor[T any] struct {
	node   NodeCursor[T]
	leaf   LeafCursor[T]
	isNode bool
}

// Node returns the node cursor when the cursor points at an occupied node.
func (c Cursor[T]) Node() (NodeCursor[T], bool) {
	return c.node, c.isNode
}

// Leaf returns the leaf cursor when the cursor points at an empty slot.
func (c Cursor[T]) Leaf() (LeafCursor[T], bool) {
	return c.leaf, !c.isNode
}

// Release consumes the cursor and returns the tree's checkout.
func (c Cursor[T]) Release() {
	if c.isNode {
		c.node.Release()
	} else {
		c.leaf.Release()
	}
}

// NodeCursor is a cursor over an occupied node.
type NodeCursor[T any] struct {
	tree *Tree[T]
	id   nodeID
	gen  uint64
}

// LeafCursor is a cursor over an empty slot: the root slot of an empty tree,
// or a childless side of a node. It is the only place a key can be inserted.
type LeafCursor[T any] struct {
	tree *Tree[T]
	pos  position
	gen  uint64
}

// cursorFor wraps the slot at pos, currently holding id (0 for empty), in
// the matching cursor kind.
func (t *Tree[T]) cursorFor(id nodeID, pos position, gen uint64) Cursor[T] {
	if id == 0 {
		return Cursor[T]{leaf: LeafCursor[T]{tree: t, pos: pos, gen: gen}}
	}
	return Cursor[T]{node: NodeCursor[T]{tree: t, id: id, gen: gen}, isNode: true}
}

// Key returns the node's key handle without consuming the cursor.
func (c NodeCursor[T]) Key() *T {
	c.tree.validate(c.gen)
	return c.tree.at(c.id).key
}

// Color returns the node's color without consuming the cursor.
func (c NodeCursor[T]) Color() Color {
	c.tree.validate(c.gen)
	return c.tree.at(c.id).color
}

// LeftChild consumes the cursor and returns a cursor for the node's left
// child slot.
func (c NodeCursor[T]) LeftChild() Cursor[T] {
	return c.child(sideLeft)
}

// RightChild consumes the cursor and returns a cursor for the node's right
// child slot.
func (c NodeCursor[T]) RightChild() Cursor[T] {
	return c.child(sideRight)
}

func (c NodeCursor[T]) child(s side) Cursor[T] {
	t := c.tree
	gen := t.consume(c.gen)
	return t.cursorFor(t.at(c.id).childOn(s), position{parent: c.id, side: s}, gen)
}

// Parent consumes the cursor and returns a cursor for the node's parent, or
// false when the node occupies the root slot.
func (c NodeCursor[T]) Parent() (NodeCursor[T], bool) {
	t := c.tree
	t.validate(c.gen)
	pos := t.at(c.id).pos
	if pos.parent == 0 {
		// Not consumed: the caller keeps the cursor it has.
		return NodeCursor[T]{}, false
	}
	gen := t.consume(c.gen)
	return NodeCursor[T]{tree: t, id: pos.parent, gen: gen}, true
}

// Release consumes the cursor and returns the tree's checkout.
func (c NodeCursor[T]) Release() {
	c.tree.validate(c.gen)
	c.tree.release()
}

// Delete removes the node from the tree and its key handle from the index,
// consuming the cursor and returning the tree's checkout. Rebalancing runs as
// needed; a node with two children is handled by the successor policy (see
// deleteNode).
func (c NodeCursor[T]) Delete() {
	t := c.tree
	t.validate(c.gen)
	t.deleteNode(c.id)
	t.release()
}

// Insert allocates a red node holding key in the empty slot, registers it in
// the index, and repairs the red-black invariants. The returned node cursor
// points at the new node and keeps the tree checked out.
//
// The key handle must be non-nil, not already indexed, and must stay at a
// stable address for as long as the tree references it; violating the first
// two panics with ErrNilKey or ErrKeyIndexed.
func (c LeafCursor[T]) Insert(key *T) NodeCursor[T] {
	t := c.tree
	gen := t.consume(c.gen)
	if key == nil {
		panic(ErrNilKey)
	}
	if _, dup := t.index[key]; dup {
		panic(ErrKeyIndexed)
	}
	id := t.alloc(key, c.pos)
	*t.slot(c.pos) = id
	t.index[key] = id
	t.repairInsert(id)
	return NodeCursor[T]{tree: t, id: id, gen: gen}
}

// Parent consumes the cursor and returns a cursor for the node owning the
// empty slot, or false when the slot is the root of an empty tree, in which
// case the cursor stays usable.
func (c LeafCursor[T]) Parent() (NodeCursor[T], bool) {
	t := c.tree
	if c.pos.parent == 0 {
		t.validate(c.gen)
		return NodeCursor[T]{}, false
	}
	gen := t.consume(c.gen)
	return NodeCursor[T]{tree: t, id: c.pos.parent, gen: gen}, true
}

// Release consumes the cursor and returns the tree's checkout.
func (c LeafCursor[T]) Release() {
	c.tree.validate(c.gen)
	c.tree.release()
}
