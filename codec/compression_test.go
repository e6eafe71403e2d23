package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nutridex/model"
)

func TestCompressionRoundTrip(t *testing.T) {
	payload := strings.Repeat("556540ff5ee3efd8b8a1f2a3,Apple Pie,calories,237,fat,11\r\n", 100)

	for _, comp := range Compressions {
		t.Run(comp.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, comp)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if comp != None {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := NewReader(&buf, comp)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, string(got))
		})
	}
}

func TestCompressedRecords(t *testing.T) {
	c := CSV{Attributes: model.DefaultAttributes}

	for _, comp := range Compressions {
		t.Run(comp.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, comp)
			require.NoError(t, err)
			require.NoError(t, c.Encode(w, testRecords()))
			require.NoError(t, w.Close())

			r, err := NewReader(&buf, comp)
			require.NoError(t, err)
			defer r.Close()

			recs, _, err := c.Decode(r)
			require.NoError(t, err)
			assert.Equal(t, testRecords(), recs)
		})
	}
}

func TestCompressionForName(t *testing.T) {
	assert.Equal(t, None, CompressionForName("a.csv"))
	assert.Equal(t, Zstd, CompressionForName("a.csv.ZST"))
	assert.Equal(t, LZ4, CompressionForName("a.json.lz4"))
	assert.Equal(t, Snappy, CompressionForName("a.csv.sz"))

	assert.Equal(t, "", None.Extension())
	assert.Equal(t, "Compression(9)", Compression(9).String())

	_, err := NewReader(strings.NewReader(""), Compression(9))
	require.Error(t, err)
	_, err = NewWriter(io.Discard, Compression(9))
	require.Error(t, err)
}

func BenchmarkCSVDecode(b *testing.B) {
	c := CSV{Attributes: model.DefaultAttributes}

	var buf bytes.Buffer
	recs := make([]*model.Record, 0, 1000)
	for range 500 {
		recs = append(recs, testRecords()...)
	}
	require.NoError(b, c.Encode(&buf, recs))
	data := buf.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, _, err := c.Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
