package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nutridex/model"
)

const sample = `556540ff5ee3efd8b8a1f2a3,Apple Pie,calories,237,fat,11,carbohydrate,34,fiber,1.6,protein,1.9
556540ff5ee3efd8b8a1f2a4,Bacon,Calories,541,FAT,42,carbohydrate,1.4,fiber,0,protein,37
short,Line,calories,1
bad,Number,calories,x,fat,1,carbohydrate,1,fiber,1,protein,1
bad,Label,sodium,1,fat,1,carbohydrate,1,fiber,1,protein,1
,NoID,calories,1,fat,1,carbohydrate,1,fiber,1,protein,1
`

func testRecords() []*model.Record {
	return []*model.Record{
		model.NewRecord("a", "Apple, raw").WithNutrients(map[string]float64{
			model.Calories: 52, model.Fat: 0.17, model.Carbohydrate: 13.81, model.Fiber: 2.4, model.Protein: 0.26,
		}).Build(),
		model.NewRecord("b", `Cheese "Gouda"`).WithNutrients(map[string]float64{
			model.Calories: 356, model.Fat: 27.44, model.Carbohydrate: 2.22, model.Fiber: 0, model.Protein: 24.94,
		}).Build(),
	}
}

func TestCSVDecode(t *testing.T) {
	c := CSV{Attributes: model.DefaultAttributes}

	recs, stats, err := c.Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, DecodeStats{Read: 6, Skipped: 4}, stats)
	require.Len(t, recs, 2)

	assert.Equal(t, "556540ff5ee3efd8b8a1f2a3", recs[0].ID)
	assert.Equal(t, "Apple Pie", recs[0].Name)
	assert.Equal(t, 1.6, recs[0].Nutrients[model.Fiber])

	assert.Equal(t, 541.0, recs[1].Nutrients[model.Calories])
	assert.Equal(t, 42.0, recs[1].Nutrients[model.Fat])
}

func TestCSVDecodeIgnoresExtraFields(t *testing.T) {
	c := CSV{Attributes: []string{model.Fat}}

	recs, stats, err := c.Decode(strings.NewReader("x,Butter,fat,81,protein,1\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, DecodeStats{Read: 1}, stats)
	require.Len(t, recs, 1)
	assert.Equal(t, map[string]float64{model.Fat: 81}, recs[0].Nutrients)
}

func TestCSVEncode(t *testing.T) {
	c := CSV{Attributes: []string{model.Fat, model.Protein}}

	var buf bytes.Buffer
	err := c.Encode(&buf, []*model.Record{
		model.NewRecord("1", "Egg").WithNutrient(model.Protein, 13).WithNutrient(model.Fat, 10.5).Build(),
		model.NewRecord("2", "Water").Build(),
	})
	require.NoError(t, err)

	assert.Equal(t, "1,Egg,fat,10.5,protein,13\r\n2,Water,fat,0,protein,0\r\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Codec{CSV{Attributes: model.DefaultAttributes}, JSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, testRecords()))

			recs, stats, err := c.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 0, stats.Skipped)
			assert.Equal(t, testRecords(), recs)
		})
	}
}

func TestJSONDecode(t *testing.T) {
	in := `[
		{"id": "1", "name": "Rice", "nutrients": {"Calories": 130}},
		{"id": "", "name": "Nameless"},
		null
	]`

	recs, stats, err := JSON{}.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, DecodeStats{Read: 3, Skipped: 2}, stats)
	require.Len(t, recs, 1)
	assert.Equal(t, 130.0, recs[0].Nutrients[model.Calories])

	_, _, err = JSON{}.Decode(strings.NewReader(`{"id":`))
	require.Error(t, err)
}

func TestJSONEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestForName(t *testing.T) {
	tests := []struct {
		name  string
		codec string
		comp  Compression
	}{
		{"foods.csv", "csv", None},
		{"dir/foods.CSV", "csv", None},
		{"foods.json", "json", None},
		{"foods.csv.zst", "csv", Zstd},
		{"foods.json.lz4", "json", LZ4},
		{"foods.csv.sz", "csv", Snappy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, comp, err := ForName(tt.name, model.DefaultAttributes)
			require.NoError(t, err)
			assert.Equal(t, tt.codec, c.Name())
			assert.Equal(t, tt.comp, comp)
		})
	}

	_, _, err := ForName("foods.txt", model.DefaultAttributes)
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, _, err = ForName("foods.zst", model.DefaultAttributes)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
