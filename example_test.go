package nutridex_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/nutridex"
	"github.com/hupe1980/nutridex/metadata"
	"github.com/hupe1980/nutridex/model"
)

func exampleStore() *nutridex.Store {
	db, err := nutridex.New()
	if err != nil {
		log.Fatal(err)
	}

	err = db.AddRecords([]*model.Record{
		model.NewRecord("1", "Pineapple").WithNutrients(map[string]float64{
			model.Calories: 50, model.Fat: 0.1, model.Carbohydrate: 13, model.Fiber: 1.4, model.Protein: 0.5,
		}).Build(),
		model.NewRecord("2", "Apple Pie").WithNutrients(map[string]float64{
			model.Calories: 237, model.Fat: 11, model.Carbohydrate: 34, model.Fiber: 1.6, model.Protein: 1.9,
		}).Build(),
		model.NewRecord("3", "Bacon").WithNutrients(map[string]float64{
			model.Calories: 541, model.Fat: 42, model.Carbohydrate: 1.4, model.Fiber: 0, model.Protein: 37,
		}).Build(),
		model.NewRecord("4", "Apple").WithNutrients(map[string]float64{
			model.Calories: 52, model.Fat: 0.2, model.Carbohydrate: 14, model.Fiber: 2.4, model.Protein: 0.3,
		}).Build(),
	})
	if err != nil {
		log.Fatal(err)
	}
	return db
}

// ExampleStore_FilterByName demonstrates case-insensitive substring search.
func ExampleStore_FilterByName() {
	db := exampleStore()

	for _, rec := range db.FilterByName("APPLE") {
		fmt.Println(rec.Name)
	}
	// Output:
	// Apple
	// Apple Pie
	// Pineapple
}

// ExampleStore_FilterByRules demonstrates a conjunction of numeric rules.
func ExampleStore_FilterByRules() {
	db := exampleStore()

	recs, err := db.FilterByRules([]string{"calories <= 100", "fiber >= 1.5"})
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range recs {
		fmt.Println(rec.Name)
	}
	// Output: Apple
}

// ExampleStore_Query combines a name filter with rules.
func ExampleStore_Query() {
	db := exampleStore()

	recs, err := db.Query(nutridex.Query{Name: "apple", Rules: []string{"fat >= 1"}})
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range recs {
		fmt.Println(rec.Name)
	}
	// Output: Apple Pie
}

// ExampleStore_Filter shows error handling for rules outside the schema.
func ExampleStore_Filter() {
	db := exampleStore()

	rule, err := metadata.ParseRule("sodium <= 10")
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Filter(rule)
	fmt.Println(errors.Is(err, nutridex.ErrUnknownAttribute))

	_, err = db.FilterByRules([]string{"protein"})
	fmt.Println(errors.Is(err, nutridex.ErrMalformedRule))
	// Output:
	// true
	// true
}

// ExampleStore_Index prints the keys of an attribute index.
func ExampleStore_Index() {
	db := exampleStore()

	tree, ok := db.Index(model.Protein)
	if !ok {
		log.Fatal("no index")
	}
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	fmt.Println(tree.Len(), lo, hi)
	// Output: 4 0.3 37
}
