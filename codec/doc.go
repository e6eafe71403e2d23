// Package codec reads and writes record files.
//
// Two formats are supported:
//
//   - CSV: one record per line, "id,name,attr,value,attr,value,...".
//     Lines that do not carry every attribute, name an unknown attribute or
//     hold an unparsable number are skipped and counted.
//   - JSON: an array of records.
//
// Files may be compressed; the compression is chosen by the outermost
// extension (".zst", ".lz4", ".sz"):
//
//	c, comp, err := codec.ForName("foods.csv.zst", model.DefaultAttributes)
//	r, err := codec.NewReader(f, comp)
//	recs, stats, err := c.Decode(r)
package codec
