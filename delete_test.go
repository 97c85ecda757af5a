package sweeptree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeleteRootWithOneChild: insert 7, then 4 as its left child, delete the
// root. The spliced-in child must be recolored black.
func TestDeleteRootWithOneChild(t *testing.T) {
	tree := New[int]()
	hs := handles(7, 4)
	for _, h := range hs {
		insertInt(tree, h)
	}

	nc, ok := tree.Get(hs[0])
	require.True(t, ok)
	nc.Delete()

	root, ok := tree.Root().Node()
	require.True(t, ok)
	assert.Equal(t, 4, *root.Key())
	assert.Equal(t, Black, root.Color())
	below := root.LeftChild()
	_, emptyLeft := below.Leaf()
	assert.True(t, emptyLeft)
	below.Release()

	assert.Equal(t, 1, tree.Len())
	require.NoError(t, tree.Check())
}

func TestDeleteSoleNode(t *testing.T) {
	tree := New[int]()
	key := 42
	insertInt(tree, &key)

	nc, ok := tree.Get(&key)
	require.True(t, ok)
	nc.Delete()

	assert.Equal(t, 0, tree.Len())
	_, ok = tree.Get(&key)
	assert.False(t, ok)

	cur := tree.Root()
	_, isLeaf := cur.Leaf()
	assert.True(t, isLeaf)
	cur.Release()
	require.NoError(t, tree.Check())
}

// TestDeleteRedLeaf removes a red bottom node, which needs no fixup.
func TestDeleteRedLeaf(t *testing.T) {
	tree := New[int]()
	hs := handles(5, 3, 7)
	for _, h := range hs {
		insertInt(tree, h)
	}

	nc, ok := tree.Get(hs[1])
	require.True(t, ok)
	nc.Delete()

	require.NoError(t, tree.Check())
	assert.Equal(t, []int{5, 7}, inorder(tree))
}

// TestDeleteBlackLeaf forces the delete fixup. In the 7-node complete shape
// the bottom level is all red, so strip 1, 3, and 5 first (no fixup needed),
// leaving 2 as a childless black node whose removal must rebalance through
// its sibling.
func TestDeleteBlackLeaf(t *testing.T) {
	tree := New[int]()
	hs := handles(4, 2, 6, 1, 3, 5, 7)
	for _, h := range hs {
		insertInt(tree, h)
	}
	require.NoError(t, tree.Check())

	for _, i := range []int{3, 4, 5, 1} {
		nc, ok := tree.Get(hs[i])
		require.True(t, ok)
		nc.Delete()
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, []int{4, 6, 7}, inorder(tree))
}

// TestDeleteTwoChildren removes interior nodes: the node keeps its slot, its
// key handle trades places with the in-order successor's, and the successor
// node is spliced out.
func TestDeleteTwoChildren(t *testing.T) {
	tree := New[int]()
	hs := handles(4, 2, 6, 1, 3, 5, 7)
	for _, h := range hs {
		insertInt(tree, h)
	}

	// Delete the root, which has two children.
	nc, ok := tree.Get(hs[0])
	require.True(t, ok)
	nc.Delete()

	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, inorder(tree))
	assert.Equal(t, 6, tree.Len())

	_, ok = tree.Get(hs[0])
	assert.False(t, ok)

	// The former successor handle still resolves after being relocated.
	got, ok := tree.Get(hs[5])
	require.True(t, ok)
	assert.Same(t, hs[5], got.Key())
	got.Release()
}

// TestDeleteDrain deletes every node of a random tree in random order,
// verifying all invariants after each removal.
func TestDeleteDrain(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		tree := New[int]()
		hs := handles(rng.Perm(200)[:100]...)
		for _, h := range hs {
			insertInt(tree, h)
		}
		require.NoError(t, tree.Check())

		order := rng.Perm(len(hs))
		for i, idx := range order {
			nc, ok := tree.Get(hs[idx])
			require.True(t, ok)
			nc.Delete()
			if err := tree.Check(); err != nil {
				t.Fatalf("round %d: invariants broken after %d deletes: %v", round, i+1, err)
			}
		}
		assert.Equal(t, 0, tree.Len())
	}
}
