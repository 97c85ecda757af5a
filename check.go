package sweeptree

import "fmt"

// Check walks the whole tree verifying its structural invariants: the root
// is black, no red node has a red child, every path from a node to a
// descendant empty slot crosses the same number of black nodes, every node's
// recorded position matches the slot it was reached through, and the index
// maps exactly the reachable key handles to the nodes holding them.
//
// It exists for tests and stress tooling; all errors wrap ErrCorrupt. Panics
// with ErrCursorHeld if a cursor is live.
func (t *Tree[T]) Check() error {
	if t.held {
		panic(ErrCursorHeld)
	}
	if t.root != 0 && t.at(t.root).color != Black {
		return fmt.Errorf("%w: root is red", ErrCorrupt)
	}

	reached := 0
	if _, err := t.checkSubtree(t.root, rootPos, &reached); err != nil {
		return err
	}

	if reached != len(t.index) {
		return fmt.Errorf("%w: %d reachable nodes but %d index entries",
			ErrCorrupt, reached, len(t.index))
	}
	return nil
}

// checkSubtree verifies the subtree occupying the slot described by pos and
// returns its black height. reached counts nodes whose index entry checked
// out, so the caller can detect entries pointing at unreachable nodes.
func (t *Tree[T]) checkSubtree(id nodeID, pos position, reached *int) (int, error) {
	if id == 0 {
		return 1, nil // empty slots are black
	}
	n := t.at(id)

	if n.pos != pos {
		return 0, fmt.Errorf("%w: node %d recorded at (parent %d, %s) but reached through (parent %d, %s)",
			ErrCorrupt, id, n.pos.parent, n.pos.side, pos.parent, pos.side)
	}
	if n.key == nil {
		return 0, fmt.Errorf("%w: node %d has no key handle", ErrCorrupt, id)
	}
	if got, ok := t.index[n.key]; !ok {
		return 0, fmt.Errorf("%w: key handle of node %d missing from index", ErrCorrupt, id)
	} else if got != id {
		return 0, fmt.Errorf("%w: key handle of node %d indexed to node %d", ErrCorrupt, id, got)
	}
	*reached++

	if n.color == Red {
		if t.colorOf(n.left) == Red || t.colorOf(n.right) == Red {
			return 0, fmt.Errorf("%w: red node %d has a red child", ErrCorrupt, id)
		}
	}

	lh, err := t.checkSubtree(n.left, position{parent: id, side: sideLeft}, reached)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkSubtree(n.right, position{parent: id, side: sideRight}, reached)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: node %d has black height %d on the left but %d on the right",
			ErrCorrupt, id, lh, rh)
	}

	if n.color == Black {
		lh++
	}
	return lh, nil
}
