package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/geneplatter/pkg/model"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderChartPNG(t *testing.T) {

	tests := []struct {
		name   string
		points []model.SeriesPoint
	}{
		{
			name: "TwoGenes",
			points: []model.SeriesPoint{
				{Year: "2019", Gene: "tetB", IsolateCount: 0},
				{Year: "2020", Gene: "tetB", IsolateCount: 4},
				{Year: "2019", Gene: "blaA", IsolateCount: 3},
				{Year: "2020", Gene: "blaA", IsolateCount: 1},
			},
		},
		{
			name:   "SingleYear",
			points: []model.SeriesPoint{{Year: "2020", Gene: "abc", IsolateCount: 2}},
		},
		{
			name: "AllZero",
			points: []model.SeriesPoint{
				{Year: "2019", Gene: "abc", IsolateCount: 0},
				{Year: "2021", Gene: "abc", IsolateCount: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderChartPNG(&buf, tt.points))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}
}

func TestRenderChartPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderChartPNG(&buf, nil), ErrEmptySeries)
	assert.Zero(t, buf.Len())
}

func TestSeriesByGene(t *testing.T) {
	series, years, maxY := seriesByGene([]model.SeriesPoint{
		{Year: "2019", Gene: "b", IsolateCount: 1},
		{Year: "2020", Gene: "b", IsolateCount: 5},
		{Year: "2019", Gene: "a", IsolateCount: 2},
	})

	require.Len(t, series, 2)
	assert.Equal(t, "b", series[0].GetName())
	assert.Equal(t, "a", series[1].GetName())
	assert.ElementsMatch(t, []float64{2019, 2020}, years)
	assert.Equal(t, 5.0, maxY)
}
