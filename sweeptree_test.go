package sweeptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descendToLeaf drives a cursor from the root down to the empty slot where
// key belongs under ordinary integer ordering. The tree never compares keys;
// this is the caller-side discipline every test uses.
func descendToLeaf(tree *Tree[int], key *int) LeafCursor[int] {
	cur := tree.Root()
	for {
		nc, ok := cur.Node()
		if !ok {
			lc, _ := cur.Leaf()
			return lc
		}
		if *key < *nc.Key() {
			cur = nc.LeftChild()
		} else {
			cur = nc.RightChild()
		}
	}
}

// insertInt inserts a caller-owned int handle by ordered descent.
func insertInt(tree *Tree[int], key *int) {
	descendToLeaf(tree, key).Insert(key).Release()
}

// handles pins a set of int keys at stable addresses.
func handles(keys ...int) []*int {
	hs := make([]*int, len(keys))
	for i, k := range keys {
		v := k
		hs[i] = &v
	}
	return hs
}

// inorder collects the key values in tree order.
func inorder(tree *Tree[int]) []int {
	var got []int
	tree.Walk(func(key *int) bool {
		got = append(got, *key)
		return true
	})
	return got
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, 0, tree.Len())

	cur := tree.Root()
	_, isNode := cur.Node()
	assert.False(t, isNode)
	lc, isLeaf := cur.Leaf()
	assert.True(t, isLeaf)
	lc.Release()

	require.NoError(t, tree.Check())
}

func TestInsertIntoEmptyRoot(t *testing.T) {
	tree := New[int]()
	key := 5

	lc, ok := tree.Root().Leaf()
	require.True(t, ok)
	nc := lc.Insert(&key)
	assert.Same(t, &key, nc.Key())
	assert.Equal(t, Black, nc.Color())
	nc.Release()

	assert.Equal(t, 1, tree.Len())
	require.NoError(t, tree.Check())
}

// TestInsertZigZag covers the two-rotation repair: 5, then 3 as left child,
// then 4 as the inner grandchild. The middle key ends up at the root.
func TestInsertZigZag(t *testing.T) {
	tree := New[int]()
	for _, h := range handles(5, 3, 4) {
		insertInt(tree, h)
	}

	root, ok := tree.Root().Node()
	require.True(t, ok)
	assert.Equal(t, 4, *root.Key())
	assert.Equal(t, Black, root.Color())

	left, ok := root.LeftChild().Node()
	require.True(t, ok)
	assert.Equal(t, 3, *left.Key())
	assert.Equal(t, Red, left.Color())

	back, ok := left.Parent()
	require.True(t, ok)
	right, ok := back.RightChild().Node()
	require.True(t, ok)
	assert.Equal(t, 5, *right.Key())
	assert.Equal(t, Red, right.Color())
	right.Release()

	require.NoError(t, tree.Check())
	assert.Equal(t, []int{3, 4, 5}, inorder(tree))
}

// TestInsertSingleRotation covers the straight-line repair: 5, 6, 7 inserted
// in order forces one left rotation at the root.
func TestInsertSingleRotation(t *testing.T) {
	tree := New[int]()
	for _, h := range handles(5, 6, 7) {
		insertInt(tree, h)
	}

	root, ok := tree.Root().Node()
	require.True(t, ok)
	assert.Equal(t, 6, *root.Key())
	assert.Equal(t, Black, root.Color())

	left, ok := root.LeftChild().Node()
	require.True(t, ok)
	assert.Equal(t, 5, *left.Key())
	assert.Equal(t, Red, left.Color())

	back, ok := left.Parent()
	require.True(t, ok)
	right, ok := back.RightChild().Node()
	require.True(t, ok)
	assert.Equal(t, 7, *right.Key())
	assert.Equal(t, Red, right.Color())
	right.Release()

	require.NoError(t, tree.Check())
}

// TestInsertMirroredZigZag is the mirror image of TestInsertZigZag: 5, then
// 7 as right child, then 6 as the inner grandchild of the right spine.
func TestInsertMirroredZigZag(t *testing.T) {
	tree := New[int]()
	for _, h := range handles(5, 7, 6) {
		insertInt(tree, h)
	}

	root, ok := tree.Root().Node()
	require.True(t, ok)
	assert.Equal(t, 6, *root.Key())
	assert.Equal(t, Black, root.Color())
	root.Release()

	require.NoError(t, tree.Check())
	assert.Equal(t, []int{5, 6, 7}, inorder(tree))
}

func TestLen(t *testing.T) {
	tree := New[int]()
	hs := handles(10, 20, 30, 40, 50)
	for i, h := range hs {
		insertInt(tree, h)
		assert.Equal(t, i+1, tree.Len())
	}
}

func TestWalkEarlyExit(t *testing.T) {
	tree := New[int]()
	for _, h := range handles(1, 2, 3, 4, 5) {
		insertInt(tree, h)
	}

	var got []int
	tree.Walk(func(key *int) bool {
		got = append(got, *key)
		return len(got) < 3
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIdentityKeyedIndex(t *testing.T) {
	// Two handles with equal values at different addresses are distinct
	// entries; the index keys by identity, never by value.
	tree := New[int]()
	a, b := 7, 7
	lc, _ := tree.Root().Leaf()
	lc.Insert(&a).Release()

	// &b is unknown to the tree even though *a == *b.
	_, ok := tree.Get(&b)
	assert.False(t, ok)

	nc, ok := tree.Get(&a)
	require.True(t, ok)
	assert.Same(t, &a, nc.Key())
	nc.Release()
}
