package codec

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/nutridex/model"
)

// CSV is the line format "id,name,attr,value,...". Attributes lists the
// attribute labels a line must carry; Encode writes them in this order.
type CSV struct {
	Attributes []string
}

// Name returns "csv".
func (CSV) Name() string { return "csv" }

// Encode writes one line per record. Attributes a record lacks are written
// as 0.
func (c CSV) Encode(w io.Writer, recs []*model.Record) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	line := make([]string, 0, 2+2*len(c.Attributes))
	for _, rec := range recs {
		line = append(line[:0], rec.ID, rec.Name)
		for _, attr := range c.Attributes {
			line = append(line, attr, formatValue(rec.ValueOrZero(attr)))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode reads records until EOF, skipping malformed lines.
func (c CSV) Decode(r io.Reader) ([]*model.Record, DecodeStats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		recs  []*model.Record
		stats DecodeStats
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return recs, stats, nil
		}
		stats.Read++

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			stats.Skipped++
			continue
		}
		if err != nil {
			return nil, stats, err
		}

		rec, ok := c.parse(fields)
		if !ok {
			stats.Skipped++
			continue
		}
		recs = append(recs, rec)
	}
}

func (c CSV) parse(fields []string) (*model.Record, bool) {
	if len(fields) < 2+2*len(c.Attributes) {
		return nil, false
	}

	id := strings.TrimSpace(fields[0])
	if id == "" {
		return nil, false
	}

	b := model.NewRecord(id, strings.TrimSpace(fields[1]))
	for i := range len(c.Attributes) {
		label := strings.ToLower(strings.TrimSpace(fields[2+2*i]))
		if !slices.Contains(c.Attributes, label) {
			return nil, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[3+2*i]), 64)
		if err != nil {
			return nil, false
		}
		b.WithNutrient(label, v)
	}
	return b.Build(), true
}

// formatValue renders v without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
