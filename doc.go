// Package nutridex provides an in-memory, multi-attribute index over food
// records.
//
// A Store keeps one B+ tree per numeric attribute (nutrient), a roaring
// bitmap of all rows, and a substring-chunk index over record names. Queries
// narrow candidates with the cheap indexes first and intersect the results:
//
//	store, _ := nutridex.New()
//	_ = store.AddRecords(records)
//
//	// Conjunctive numeric rules
//	lowCarb, _ := store.FilterByRules([]string{"carbohydrate <= 10", "protein >= 5"})
//
//	// Case-insensitive name substring
//	peaches := store.FilterByName("peach")
//
//	// Both at once
//	hits, _ := store.Query(nutridex.Query{Name: "bar", Rules: []string{"fiber >= 3"}})
//
// # Rules
//
// Rules are "attribute comparator value" with comparators "<=", "==" and
// ">=". An unknown comparator matches nothing; an unknown attribute or a
// malformed rule is an error.
//
// # Ordering
//
// All returns records in the store's sequence order. AddRecords sorts the
// sequence by name; AddRecord appends without re-sorting, so call
// SortByName after a series of single inserts. Filters return their
// matches in sequence order.
//
// # Thread Safety
//
// A Store is not safe for concurrent use. Serialize access or use one store
// per session.
package nutridex
