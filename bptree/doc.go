// Package bptree provides an in-memory B+ tree mapping ordered keys to one or
// more values.
//
// # Structure
//
// All values live in leaves. Leaves are linked in key order through
// prev/next references, so range scans walk the leaf chain without
// re-descending the tree. Internal nodes hold a least child plus a sorted
// map of routing keys, where every routing key is the smallest key found
// under the child it maps to:
//
//	          [least | 15 | 25]
//	         /        |       \
//	 [5 10 13 14]  [15 23]  [25 47]
//
// Duplicate keys are collapsed inside one leaf entry: the entry keeps every
// value in insertion order.
//
// # Memory Layout
//
// Nodes are kept in an arena slice and addressed by index. Leaf links and
// child references are arena indices, so the leaf chain's back-references
// never form owning pointer cycles.
//
// # Range Search
//
//	tree, _ := bptree.New[float64, string](3)
//	tree.Insert(10, "a")
//	tree.Insert(15, "b")
//	tree.RangeSearch(12, bptree.GreaterEqual) // [b]
//
// RangeSearch understands exactly three comparators: LessEqual ("<="),
// Equal ("==") and GreaterEqual (">="). Unknown comparators and NaN keys
// return an empty result instead of an error.
//
// # Thread Safety
//
// Tree is not safe for concurrent use. The tree supports insertion and
// lookup only; there is no removal.
package bptree
