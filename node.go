package sweeptree

// nodeID identifies a node within a tree's arena. ID 0 is reserved and means
// "no node" (an empty slot). IDs of freed nodes are recycled.
type nodeID uint32

// Color is the red-black color of a node. Empty slots are implicitly Black.
type Color uint8

const (
	Red Color = iota
	Black
)

// String returns "red" or "black".
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// side selects one of a node's two child slots.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

func (s side) opposite() side {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

func (s side) String() string {
	if s == sideLeft {
		return "left"
	}
	return "right"
}

// position describes the slot a node occupies: the root slot when parent is
// 0, otherwise the given child slot of the given parent. Nodes are relocated
// (rotation, deletion splice) by reading and writing through positions rather
// than re-deriving structure.
type position struct {
	parent nodeID
	side   side
}

// root slot position.
var rootPos = position{}

// node is a tree element in the arena. The key handle is caller-owned
// storage; the tree never copies or compares it.
type node[T any] struct {
	key   *T
	color Color
	pos   position
	left  nodeID
	right nodeID
}

func (n *node[T]) childOn(s side) nodeID {
	if s == sideLeft {
		return n.left
	}
	return n.right
}

func (n *node[T]) setChild(s side, id nodeID) {
	if s == sideLeft {
		n.left = id
	} else {
		n.right = id
	}
}

// at returns the arena cell for id. The caller guarantees id is non-zero and
// live. Ids are stable for a node's whole lifetime; cell pointers stay valid
// across rotations and recoloring but not across alloc, which may grow the
// arena.
func (t *Tree[T]) at(id nodeID) *node[T] {
	return &t.nodes[id-1]
}

// slot returns the storage cell a position refers to: the root slot, or a
// child slot of the parent node.
func (t *Tree[T]) slot(p position) *nodeID {
	if p.parent == 0 {
		return &t.root
	}
	parent := t.at(p.parent)
	if p.side == sideLeft {
		return &parent.left
	}
	return &parent.right
}

// colorOf treats an empty slot as black.
func (t *Tree[T]) colorOf(id nodeID) Color {
	if id == 0 {
		return Black
	}
	return t.at(id).color
}

// alloc places a new red node holding key at pos and returns its id,
// recycling a freed arena cell when one is available. The arena only ever
// appends, so node ids and cell addresses in use are never relocated.
func (t *Tree[T]) alloc(key *T, pos position) nodeID {
	n := node[T]{key: key, color: Red, pos: pos}
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id-1] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes))
}

// freeNode returns an arena cell to the free list.
func (t *Tree[T]) freeNode(id nodeID) {
	t.nodes[id-1] = node[T]{}
	t.free = append(t.free, id)
}

// minimum returns the leftmost node of the subtree rooted at id. Pure
// structural descent; no key comparison is involved.
func (t *Tree[T]) minimum(id nodeID) nodeID {
	for t.at(id).left != 0 {
		id = t.at(id).left
	}
	return id
}
