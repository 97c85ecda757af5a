package sweeptree

// Tree is an indexed red-black tree over caller-owned key handles of type T.
//
// The tree never compares keys. Callers navigate with cursors, descending the
// branch their own ordering dictates, and the tree maintains the red-black
// balance and an auxiliary index from key handle to node. The index is keyed
// by the identity (address) of the handle, not by value: two handles with
// equal values at different addresses are distinct entries, and a handle must
// stay at a stable address for as long as the tree references it.
//
// A Tree is not safe for concurrent use. Beyond that, it enforces a
// single-live-cursor discipline at runtime: requesting a cursor checks the
// tree out, and the tree stays checked out until the cursor is consumed by a
// terminal operation (Delete) or explicitly released. Requesting a second
// cursor, or reading the tree around a live cursor, panics with
// ErrCursorHeld. Using a cursor after navigation has consumed it panics with
// ErrStaleCursor.
type Tree[T any] struct {
	nodes []node[T]
	free  []nodeID
	root  nodeID
	index map[*T]nodeID

	// Cursor checkout state. gen is bumped every time a cursor is issued or
	// consumed, so copies of consumed cursors fail loudly.
	held bool
	gen  uint64
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{
		index: make(map[*T]nodeID),
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return len(t.index)
}

// Root checks the tree out and returns a cursor for the root slot: a node
// cursor when the slot is occupied, a leaf cursor when the tree is empty.
// Panics with ErrCursorHeld if a cursor is already live.
func (t *Tree[T]) Root() Cursor[T] {
	gen := t.checkout()
	return t.cursorFor(t.root, rootPos, gen)
}

// Get jumps directly to the node holding the given key handle, bypassing
// root-to-node descent. A miss is a normal empty result and leaves the tree
// checked in; a hit checks the tree out like Root does. Panics with
// ErrCursorHeld if a cursor is already live.
func (t *Tree[T]) Get(key *T) (NodeCursor[T], bool) {
	if t.held {
		panic(ErrCursorHeld)
	}
	id, ok := t.index[key]
	if !ok {
		return NodeCursor[T]{}, false
	}
	gen := t.checkout()
	return NodeCursor[T]{tree: t, id: id, gen: gen}, true
}

// Swap exchanges the key handles of the two nodes indexed by a and b. Tree
// shape, node colors, and positions are untouched; only which handle lives at
// which node changes, and the index is updated to match. This re-ranks two
// external objects without paying for a delete and reinsert, which is what a
// sweep-line caller needs when two adjacent edges trade places.
//
// Returns ErrKeyNotIndexed if either handle is not currently indexed. Panics
// with ErrCursorHeld if a cursor is live.
func (t *Tree[T]) Swap(a, b *T) error {
	if t.held {
		panic(ErrCursorHeld)
	}
	idA, ok := t.index[a]
	if !ok {
		return ErrKeyNotIndexed
	}
	idB, ok := t.index[b]
	if !ok {
		return ErrKeyNotIndexed
	}
	t.exchangeKeys(idA, idB)
	return nil
}

// Walk visits every key handle in tree order (left subtree, node, right
// subtree) until fn returns false. Panics with ErrCursorHeld if a cursor is
// live.
func (t *Tree[T]) Walk(fn func(key *T) bool) {
	if t.held {
		panic(ErrCursorHeld)
	}
	t.walk(t.root, fn)
}

func (t *Tree[T]) walk(id nodeID, fn func(key *T) bool) bool {
	if id == 0 {
		return true
	}
	n := t.at(id)
	if !t.walk(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return t.walk(n.right, fn)
}

// exchangeKeys swaps the key handles held by two nodes and points their index
// entries at the nodes now holding them.
func (t *Tree[T]) exchangeKeys(a, b nodeID) {
	na, nb := t.at(a), t.at(b)
	na.key, nb.key = nb.key, na.key
	t.index[na.key] = a
	t.index[nb.key] = b
}

// checkout marks the tree as having a live cursor and returns the generation
// the new cursor must carry.
func (t *Tree[T]) checkout() uint64 {
	if t.held {
		panic(ErrCursorHeld)
	}
	t.held = true
	t.gen++
	return t.gen
}

// release returns the checkout.
func (t *Tree[T]) release() {
	t.held = false
	t.gen++
}

// consume validates a live cursor's generation and advances it, invalidating
// any copies of the cursor that was just used.
func (t *Tree[T]) consume(gen uint64) uint64 {
	if !t.held || gen != t.gen {
		panic(ErrStaleCursor)
	}
	t.gen++
	return t.gen
}

// validate checks a cursor generation without consuming it.
func (t *Tree[T]) validate(gen uint64) {
	if !t.held || gen != t.gen {
		panic(ErrStaleCursor)
	}
}
