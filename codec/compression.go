package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the stream compression of a record file.
type Compression uint8

const (
	// None stores the file as is.
	None Compression = iota
	// Zstd uses github.com/klauspost/compress/zstd.
	Zstd
	// LZ4 uses the LZ4 frame format.
	LZ4
	// Snappy uses the snappy framing format.
	Snappy
)

// Compressions lists every supported compression.
var Compressions = []Compression{None, Zstd, LZ4, Snappy}

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Extension returns the file suffix for c, empty for None.
func (c Compression) Extension() string {
	switch c {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	case Snappy:
		return ".sz"
	default:
		return ""
	}
}

// CompressionForName returns the compression implied by the outermost
// extension of name.
func CompressionForName(name string) Compression {
	lower := strings.ToLower(name)
	for _, c := range Compressions[1:] {
		if strings.HasSuffix(lower, c.Extension()) {
			return c
		}
	}
	return None
}

// NewReader wraps r to decompress c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", c)
	}
}

// NewWriter wraps w to compress with c. Close flushes the compressed
// stream but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
