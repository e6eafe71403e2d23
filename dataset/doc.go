// Package dataset moves records between blob stores and a nutridex.Store.
//
// Load fetches and decodes several files concurrently and then inserts the
// records serially, in argument order, skipping IDs that are already
// present. Save writes the store's records in sequence order. Both pick the
// file format and compression from the file name:
//
//	report, err := dataset.Load(ctx, blobstore.NewLocalStore("data"), db, []string{"foods.csv"})
//	err = dataset.Save(ctx, bs, db, "backup/foods.json.zst")
package dataset
