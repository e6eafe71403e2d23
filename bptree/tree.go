package bptree

import (
	"cmp"
	"slices"
)

const (
	// MinBranchingFactor is the exclusive lower bound for the branching factor.
	MinBranchingFactor = 2
	// DefaultBranchingFactor is a reasonable fan-out for in-memory indexes.
	DefaultBranchingFactor = 25
)

// Tree is a B+ tree from K to one or more V.
type Tree[K cmp.Ordered, V any] struct {
	nodes []*node[K, V]
	root  nodeID

	branchingFactor int
	// siblingSize is the number of keys (leaf) or children (internal) moved
	// into the new sibling on split.
	siblingSize int

	size     int // values
	keyCount int // distinct keys
}

// New creates an empty tree whose root is a leaf.
//
// branchingFactor bounds the children of an internal node and the distinct
// keys of a leaf. It must be greater than MinBranchingFactor.
func New[K cmp.Ordered, V any](branchingFactor int) (*Tree[K, V], error) {
	if branchingFactor <= MinBranchingFactor {
		return nil, &InvalidBranchingFactorError{BranchingFactor: branchingFactor}
	}

	t := &Tree[K, V]{
		branchingFactor: branchingFactor,
		siblingSize:     (branchingFactor + 2) / 2, // ceil((bf+1)/2)
	}
	t.root = t.alloc(kindLeaf)
	return t, nil
}

// BranchingFactor returns the configured branching factor.
func (t *Tree[K, V]) BranchingFactor() int { return t.branchingFactor }

// Len returns the number of values stored.
func (t *Tree[K, V]) Len() int { return t.size }

// KeyCount returns the number of distinct keys stored.
func (t *Tree[K, V]) KeyCount() int { return t.keyCount }

// Height returns the number of levels, counting the root leaf as 1.
func (t *Tree[K, V]) Height() int {
	h := 1
	for n := t.node(t.root); !n.isLeaf(); n = t.node(n.least) {
		h++
	}
	return h
}

// Insert stores value under key. Duplicate keys are kept: the value is
// appended to the key's value list.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.insert(t.root, key, value)
	t.size++

	if !t.overflows(t.root) {
		return
	}

	// The old root keeps its larger half and is mapped under its new first
	// key; the split-off sibling becomes the least child.
	old := t.root
	sibling := t.split(old)

	root := t.alloc(kindInternal)
	r := t.node(root)
	r.least = sibling
	r.mapChild(t.firstLeafKey(old), old)
	t.root = root
}

func (t *Tree[K, V]) insert(id nodeID, key K, value V) {
	n := t.node(id)
	if n.isLeaf() {
		if n.put(key, value) {
			t.keyCount++
		}
		return
	}

	slot := n.route(key)
	child := n.child(slot)
	t.insert(child, key, value)

	if !t.overflows(child) {
		return
	}

	sibling := t.split(child)
	if slot < 0 {
		n.least = sibling
	} else {
		// The sibling took the child's smallest keys, so its minimum is the
		// key the child was mapped under.
		n.children[slot] = sibling
	}
	n.mapChild(t.firstLeafKey(child), child)
}

func (t *Tree[K, V]) overflows(id nodeID) bool {
	return t.node(id).width() > t.branchingFactor
}

// split moves the siblingSize smallest entries of id into a new node that
// precedes id, and returns the new node.
func (t *Tree[K, V]) split(id nodeID) nodeID {
	if t.node(id).isLeaf() {
		return t.splitLeaf(id)
	}
	return t.splitInternal(id)
}

func (t *Tree[K, V]) splitLeaf(id nodeID) nodeID {
	sid := t.alloc(kindLeaf)
	n, s := t.node(id), t.node(sid)

	k := t.siblingSize
	s.keys = slices.Clone(n.keys[:k])
	s.vals = slices.Clone(n.vals[:k])
	n.keys = slices.Delete(n.keys, 0, k)
	n.vals = slices.Delete(n.vals, 0, k)

	s.next = id
	s.prev = n.prev
	if n.prev != nilNode {
		t.node(n.prev).next = sid
	}
	n.prev = sid

	return sid
}

func (t *Tree[K, V]) splitInternal(id nodeID) nodeID {
	sid := t.alloc(kindInternal)
	n, s := t.node(id), t.node(sid)

	// least plus k mapped children make siblingSize children.
	k := t.siblingSize - 1
	s.least = n.least
	s.keys = slices.Clone(n.keys[:k])
	s.children = slices.Clone(n.children[:k])

	// The first surviving child has no smaller key left in this node.
	n.least = n.children[k]
	n.keys = slices.Delete(n.keys, 0, k+1)
	n.children = slices.Delete(n.children, 0, k+1)

	return sid
}

// firstLeafKey returns the smallest key under id. id must not be empty.
func (t *Tree[K, V]) firstLeafKey(id nodeID) K {
	n := t.node(id)
	for !n.isLeaf() {
		n = t.node(n.least)
	}
	return n.keys[0]
}

func (t *Tree[K, V]) node(id nodeID) *node[K, V] {
	return t.nodes[id]
}

func (t *Tree[K, V]) alloc(kind nodeKind) nodeID {
	t.nodes = append(t.nodes, &node[K, V]{
		kind:  kind,
		prev:  nilNode,
		next:  nilNode,
		least: nilNode,
	})
	return nodeID(len(t.nodes) - 1) //nolint:gosec // arena size is bounded by inserts
}
