package sweeptree

// rotate performs a rotation of the node id in direction dir: the child on
// the side opposite dir is promoted into id's slot, and the promoted child's
// subtree on side dir becomes id's new child on the side opposite dir.
//
// This is a pure structural transform. It rewrites child links and position
// descriptors only; node ids are stable, so the index is untouched, and the
// in-order sequence of keys is preserved.
func (t *Tree[T]) rotate(id nodeID, dir side) {
	n := t.at(id)
	opp := dir.opposite()
	promotedID := n.childOn(opp)
	promoted := t.at(promotedID)
	transferID := promoted.childOn(dir)

	// The promoted child takes over id's slot.
	*t.slot(n.pos) = promotedID
	promoted.pos = n.pos

	// Its subtree on side dir transfers to id.
	n.setChild(opp, transferID)
	if transferID != 0 {
		t.at(transferID).pos = position{parent: id, side: opp}
	}

	// id descends to side dir of the promoted child.
	promoted.setChild(dir, id)
	n.pos = position{parent: promotedID, side: dir}
}

// repairInsert restores the red-black invariants after inserting the red
// node id, walking up toward the root as recoloring propagates.
//
// Cases, checked in order:
//  1. id occupies the root slot: blacken it.
//  2. The parent is black: nothing to do.
//  3. Parent and uncle are both red: blacken them, redden the grandparent,
//     and repair again at the grandparent.
//  4. Parent red, uncle black or absent: if id is the inner ("zig-zag")
//     grandchild, first rotate the parent to straighten the path. Then
//     rotate the grandparent away from the parent's side and swap the
//     colors of the (possibly new) parent and the grandparent.
func (t *Tree[T]) repairInsert(id nodeID) {
	n := t.at(id)
	if n.pos.parent == 0 {
		n.color = Black // case 1
		return
	}

	pID := n.pos.parent
	p := t.at(pID)
	if p.color == Black {
		return // case 2
	}

	// The parent is red, so it cannot be the root and a grandparent exists.
	gID := p.pos.parent
	g := t.at(gID)
	pSide := p.pos.side

	if uncleID := g.childOn(pSide.opposite()); t.colorOf(uncleID) == Red {
		// case 3
		p.color = Black
		t.at(uncleID).color = Black
		g.color = Red
		t.repairInsert(gID)
		return
	}

	// case 4
	if n.pos.side != pSide {
		// Straighten the zig-zag: id rises into the parent's slot.
		t.rotate(pID, pSide)
	}
	top := g.childOn(pSide)
	t.at(top).color = Black
	g.color = Red
	t.rotate(gID, pSide.opposite())
}
