package codec

import (
	"io"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/nutridex/model"
)

// JSON encodes records as an indented JSON array, backed by
// github.com/goccy/go-json.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Encode writes recs as a JSON array.
func (JSON) Encode(w io.Writer, recs []*model.Record) error {
	if recs == nil {
		recs = []*model.Record{}
	}
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

// Decode reads a JSON array of records. Entries without an ID are skipped;
// attribute names are lowercased.
func (JSON) Decode(r io.Reader) ([]*model.Record, DecodeStats, error) {
	var raw []*model.Record
	if err := gojson.NewDecoder(r).Decode(&raw); err != nil {
		return nil, DecodeStats{}, err
	}

	stats := DecodeStats{Read: len(raw)}
	recs := make([]*model.Record, 0, len(raw))
	for _, rec := range raw {
		if rec == nil || strings.TrimSpace(rec.ID) == "" {
			stats.Skipped++
			continue
		}
		recs = append(recs, model.NewRecord(rec.ID, rec.Name).WithNutrients(rec.Nutrients).Build())
	}
	return recs, stats, nil
}
