// Package model defines the core types shared by the index and its callers.
//
// # Identity Types
//
//   - RowID: Store-local, dense record identifier (uint32)
//   - Record.ID: Stable, caller-supplied identifier (24 hex characters for
//     generated records)
//
// # Data Types
//
//   - Record: A food item with a name and numeric nutrient attributes
//
// # Record Builder
//
// Use the fluent API to construct records:
//
//	rec := model.NewRecord("556540ff5d613c9d5f5935a9", "Stewarts_PeachRhubarbSmoothie").
//	    WithNutrient("calories", 170).
//	    WithNutrient("protein", 2).
//	    Build()
package model
