package bptree

import (
	"fmt"
	"iter"
	"strings"
)

// Ascend calls fn for each key in ascending order until fn returns false.
// The values slice must not be modified.
func (t *Tree[K, V]) Ascend(fn func(key K, values []V) bool) {
	for id := t.leftmostLeaf(); id != nilNode; {
		n := t.node(id)
		for i, k := range n.keys {
			if !fn(k, n.vals[i]) {
				return
			}
		}
		id = n.next
	}
}

// Descend calls fn for each key in descending order until fn returns false.
// It follows the leaf chain's prev links.
func (t *Tree[K, V]) Descend(fn func(key K, values []V) bool) {
	for id := t.rightmostLeaf(); id != nilNode; {
		n := t.node(id)
		for i := len(n.keys) - 1; i >= 0; i-- {
			if !fn(n.keys[i], n.vals[i]) {
				return
			}
		}
		id = n.prev
	}
}

// All returns an iterator over keys and their values in ascending order.
func (t *Tree[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		t.Ascend(yield)
	}
}

// Min returns the smallest key.
func (t *Tree[K, V]) Min() (K, bool) {
	n := t.node(t.leftmostLeaf())
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[0], true
}

// Max returns the largest key.
func (t *Tree[K, V]) Max() (K, bool) {
	n := t.node(t.rightmostLeaf())
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[len(n.keys)-1], true
}

// String renders the tree level by level, one line per level. Each node
// prints its keys; internal nodes print only their routing keys.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder

	level := []nodeID{t.root}
	for len(level) > 0 {
		var next []nodeID
		for i, id := range level {
			if i > 0 {
				sb.WriteByte(' ')
			}
			n := t.node(id)
			fmt.Fprintf(&sb, "%v", n.keys)
			if !n.isLeaf() {
				next = append(next, n.least)
				next = append(next, n.children...)
			}
		}
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}
