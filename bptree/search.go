package bptree

import (
	"cmp"
	"slices"
)

// RangeSearch returns the values whose keys satisfy comparator against key,
// in ascending key order. Values sharing a key keep their insertion order.
//
// A NaN key or an unrecognized comparator yields an empty result.
func (t *Tree[K, V]) RangeSearch(key K, comparator Comparator) []V {
	if isNaN(key) {
		return nil
	}

	switch comparator {
	case LessEqual:
		return t.searchLessEqual(key)
	case Equal:
		return t.searchEqual(key)
	case GreaterEqual:
		return t.searchGreaterEqual(key)
	default:
		return nil
	}
}

// Get returns the values stored under key.
func (t *Tree[K, V]) Get(key K) []V {
	return t.RangeSearch(key, Equal)
}

// searchLessEqual walks the leaf chain from the leftmost leaf and stops at
// the first key above the bound.
func (t *Tree[K, V]) searchLessEqual(key K) []V {
	var out []V
	for id := t.leftmostLeaf(); id != nilNode; {
		n := t.node(id)
		for i, k := range n.keys {
			if cmp.Compare(k, key) > 0 {
				return out
			}
			out = append(out, n.vals[i]...)
		}
		id = n.next
	}
	return out
}

func (t *Tree[K, V]) searchEqual(key K) []V {
	n := t.node(t.findLeaf(key))
	i, found := slices.BinarySearch(n.keys, key)
	if !found {
		return nil
	}
	return slices.Clone(n.vals[i])
}

// searchGreaterEqual starts at the ceiling of key inside the leaf that
// routes key and collects everything after it.
func (t *Tree[K, V]) searchGreaterEqual(key K) []V {
	var out []V
	id := t.findLeaf(key)
	n := t.node(id)

	i, _ := slices.BinarySearch(n.keys, key)
	for _, vs := range n.vals[i:] {
		out = append(out, vs...)
	}

	for id = n.next; id != nilNode; id = n.next {
		n = t.node(id)
		for _, vs := range n.vals {
			out = append(out, vs...)
		}
	}
	return out
}

// findLeaf descends to the leaf whose key range contains key.
func (t *Tree[K, V]) findLeaf(key K) nodeID {
	id := t.root
	for n := t.node(id); !n.isLeaf(); n = t.node(id) {
		id = n.child(n.route(key))
	}
	return id
}

func (t *Tree[K, V]) leftmostLeaf() nodeID {
	id := t.root
	for n := t.node(id); !n.isLeaf(); n = t.node(id) {
		id = n.least
	}
	return id
}

func (t *Tree[K, V]) rightmostLeaf() nodeID {
	id := t.root
	for n := t.node(id); !n.isLeaf(); n = t.node(id) {
		id = n.children[len(n.children)-1]
	}
	return id
}

// isNaN reports whether k is unordered with itself, which only happens for
// floating point NaN.
func isNaN[K cmp.Ordered](k K) bool {
	return k != k //nolint:staticcheck // NaN check for generic keys
}
