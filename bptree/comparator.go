package bptree

// Comparator selects the range mode of RangeSearch.
type Comparator string

const (
	// LessEqual matches keys <= the search key.
	LessEqual Comparator = "<="
	// Equal matches keys == the search key.
	Equal Comparator = "=="
	// GreaterEqual matches keys >= the search key.
	GreaterEqual Comparator = ">="
)

// Comparators lists the recognized comparators in display order.
var Comparators = []Comparator{LessEqual, Equal, GreaterEqual}

// Valid reports whether c is one of the recognized comparators.
func (c Comparator) Valid() bool {
	switch c {
	case LessEqual, Equal, GreaterEqual:
		return true
	default:
		return false
	}
}

// String returns the comparator token.
func (c Comparator) String() string { return string(c) }
