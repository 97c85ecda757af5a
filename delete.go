package sweeptree

// deleteNode removes the node id from the tree and drops its key handle from
// the index.
//
// A node with two children never leaves its slot: its key handle is
// exchanged with the in-order successor's (through the same machinery as
// Swap, so the index follows), and the successor node, which has at most one
// child, is the one physically removed. Removing a black node runs the
// delete fixup first, while the node still occupies its slot, so black
// heights can be repaired in place.
func (t *Tree[T]) deleteNode(id nodeID) {
	n := t.at(id)
	if n.left != 0 && n.right != 0 {
		succ := t.minimum(n.right)
		t.exchangeKeys(id, succ)
		id = succ
		n = t.at(id)
	}

	// At most one child remains; it (or the empty slot) splices into the
	// deleted node's position.
	childID := n.left
	if childID == 0 {
		childID = n.right
	}

	if n.color == Black {
		if t.colorOf(childID) == Red {
			t.at(childID).color = Black
		} else {
			t.fixDelete(id)
		}
	}

	*t.slot(n.pos) = childID
	if childID != 0 {
		t.at(childID).pos = n.pos
	}

	delete(t.index, n.key)
	t.freeNode(id)
}

// fixDelete restores black-height balance before removing the black node id,
// which at this point has no red child to absorb the missing black. The walk
// is the classic sibling-based repair; id still occupies its slot, so sibling
// and parent relationships read normally.
//
// Cases, checked in order:
//  1. id occupies the root slot: the whole tree loses one black level.
//  2. Red sibling: rotate it above the parent, exposing a black sibling.
//  3. Parent, sibling, and sibling's children all black: redden the sibling
//     and repeat at the parent.
//  4. Red parent, black sibling with black children: trade their colors.
//  5. Black sibling whose only red child is the inner one: rotate the
//     sibling so the red child moves outside.
//  6. Black sibling with a red outer child: rotate the parent toward id,
//     recoloring so every path through the sibling side keeps its count and
//     id's side gains the missing black.
func (t *Tree[T]) fixDelete(id nodeID) {
	n := t.at(id)
	if n.pos.parent == 0 {
		return // case 1
	}

	pID := n.pos.parent
	s := n.pos.side
	p := t.at(pID)

	sibID := p.childOn(s.opposite())
	if t.colorOf(sibID) == Red {
		// case 2
		p.color = Red
		t.at(sibID).color = Black
		t.rotate(pID, s)
		sibID = p.childOn(s.opposite())
	}

	sib := t.at(sibID)
	if t.colorOf(sib.left) == Black && t.colorOf(sib.right) == Black {
		if p.color == Black && sib.color == Black {
			// case 3
			sib.color = Red
			t.fixDelete(pID)
			return
		}
		// case 4
		sib.color = Red
		p.color = Black
		return
	}

	if t.colorOf(sib.childOn(s.opposite())) == Black {
		// case 5: the red child is on the inner side.
		sib.color = Red
		t.at(sib.childOn(s)).color = Black
		t.rotate(sibID, s.opposite())
		sibID = p.childOn(s.opposite())
		sib = t.at(sibID)
	}

	// case 6
	sib.color = p.color
	p.color = Black
	t.at(sib.childOn(s.opposite())).color = Black
	t.rotate(pID, s)
}
