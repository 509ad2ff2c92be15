package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *FrequencyTable {
	return &FrequencyTable{
		Years:  []string{"2019", "2020"},
		Genes:  []string{"blaA", "tetB"},
		Counts: [][]int{{3, 0}, {1, 4}},
	}
}

func TestSeries(t *testing.T) {
	table := sampleTable()

	got := table.Series([]string{"tetB", "blaA"})

	assert.Equal(t, []SeriesPoint{
		{Year: "2019", Gene: "tetB", IsolateCount: 0},
		{Year: "2020", Gene: "tetB", IsolateCount: 4},
		{Year: "2019", Gene: "blaA", IsolateCount: 3},
		{Year: "2020", Gene: "blaA", IsolateCount: 1},
	}, got)
}

func TestSeriesEmptyAndUnknownSelection(t *testing.T) {
	table := sampleTable()

	assert.Empty(t, table.Series(nil))
	assert.Empty(t, table.Series([]string{}))
	assert.Empty(t, table.Series([]string{"missing"}))
	assert.Len(t, table.Series([]string{"blaA", "blaA", "missing"}), 2)
}

func TestSeriesOnEmptyTable(t *testing.T) {
	var table *FrequencyTable
	assert.Empty(t, table.Series([]string{"x"}))
	assert.Empty(t, (&FrequencyTable{}).Series([]string{"x"}))
}

func TestDefaultSelection(t *testing.T) {
	assert.Equal(t, []string{"blaA"}, sampleTable().DefaultSelection())
	assert.Equal(t, []string{}, (&FrequencyTable{}).DefaultSelection())
}

func TestCount(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, 4, table.Count("2020", "tetB"))
	assert.Equal(t, 0, table.Count("2021", "tetB"))
	assert.Equal(t, 0, table.Count("2020", "nope"))
}
