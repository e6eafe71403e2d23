// Package metadata provides the attribute schema and the numeric filter
// rules evaluated against a store.
//
// # Rules
//
// A rule compares one numeric attribute against a threshold:
//
//	carbohydrate >= 4
//	fat <= 10.5
//	protein == 2
//
// Rules are written as three whitespace-separated fields. The comparator
// vocabulary is closed: "<=", "==" and ">=". ParseRule checks the field
// count and the threshold but passes the comparator through untouched; an
// unknown comparator simply matches nothing when the rule is evaluated.
//
//	rules, err := metadata.ParseRules([]string{"calories <= 200", "protein >= 5"})
//
// # Schema
//
// A Schema is the ordered list of attributes a store indexes:
//
//	schema, _ := metadata.NewSchema("calories", "fat", "protein")
//	err := schema.Validate(rec) // *UnknownAttributeError for undeclared attributes
package metadata
