package bptree

import (
	"cmp"
	"slices"
)

// nodeID addresses a node in the tree's arena.
type nodeID int32

// nilNode marks an absent link or child.
const nilNode nodeID = -1

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindInternal
)

// node is either a leaf or an internal node, selected by kind.
//
// Leaf: keys are distinct and ascending, vals[i] holds every value stored
// under keys[i] in insertion order, prev/next link the leaf chain.
//
// Internal: least holds every key below keys[0]; children[i] holds the keys
// in [keys[i], keys[i+1]). keys[i] is the smallest key under children[i].
type node[K cmp.Ordered, V any] struct {
	kind nodeKind
	keys []K

	// leaf
	vals [][]V
	prev nodeID
	next nodeID

	// internal
	least    nodeID
	children []nodeID
}

func (n *node[K, V]) isLeaf() bool { return n.kind == kindLeaf }

// width is the quantity bounded by the branching factor: distinct keys for
// a leaf, children (least included) for an internal node.
func (n *node[K, V]) width() int {
	if n.isLeaf() {
		return len(n.keys)
	}
	return len(n.children) + 1
}

// route returns the slot of the child responsible for key, or -1 for the
// least child.
func (n *node[K, V]) route(key K) int {
	i, found := slices.BinarySearch(n.keys, key)
	if found {
		return i
	}
	return i - 1
}

func (n *node[K, V]) child(slot int) nodeID {
	if slot < 0 {
		return n.least
	}
	return n.children[slot]
}

// mapChild maps key to child, keeping keys sorted.
func (n *node[K, V]) mapChild(key K, child nodeID) {
	i, found := slices.BinarySearch(n.keys, key)
	if found {
		n.children[i] = child
		return
	}
	n.keys = slices.Insert(n.keys, i, key)
	n.children = slices.Insert(n.children, i, child)
}

// put appends value under key and reports whether key is new to the leaf.
func (n *node[K, V]) put(key K, value V) bool {
	i, found := slices.BinarySearch(n.keys, key)
	if found {
		n.vals[i] = append(n.vals[i], value)
		return false
	}
	n.keys = slices.Insert(n.keys, i, key)
	n.vals = slices.Insert(n.vals, i, []V{value})
	return true
}
