// Package testutil provides testing utilities for nutridex.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random records and rules, and
// brute-force oracles that act as ground truth for the indexes.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(1000, model.DefaultAttributes)
//	rules := rng.Rules(2, model.DefaultAttributes)
//
// # Ground Truth
//
//	want := testutil.ExpectedFilter(recs, rules)
//	want := testutil.ExpectedName(recs, "app")
package testutil
