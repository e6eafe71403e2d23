package codec

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/nutridex/model"
)

// ErrUnknownFormat is returned by ForName for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown record format")

// DecodeStats counts the entries seen by a decoder.
type DecodeStats struct {
	// Read is the number of entries examined.
	Read int
	// Skipped is the number of entries rejected as malformed.
	Skipped int
}

// Codec encodes and decodes record files.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(w io.Writer, recs []*model.Record) error
	Decode(r io.Reader) ([]*model.Record, DecodeStats, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string, attrs []string) (Codec, bool) {
	switch name {
	case "csv":
		return CSV{Attributes: attrs}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// ForName picks the codec and compression for a file name, e.g.
// "foods.csv" or "foods.json.zst".
func ForName(name string, attrs []string) (Codec, Compression, error) {
	comp := CompressionForName(name)
	base := name[:len(name)-len(comp.Extension())]

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(base)), ".")
	c, ok := ByName(ext, attrs)
	if !ok {
		return nil, None, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return c, comp, nil
}
