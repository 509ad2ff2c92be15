package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableSingleRecord(t *testing.T) {
	table := BuildTable(lines(`FT   variation       12
FT                   /gene="abc"
FT                   /taxa="2020_x1 2020_x2 2021_y1"`))

	assert.Equal(t, []string{"2020", "2021"}, table.Years)
	assert.Equal(t, []string{"abc"}, table.Genes)
	assert.Equal(t, [][]int{{2}, {1}}, table.Counts)
}

func TestBuildTableEmptyInput(t *testing.T) {
	table := BuildTable([]string{})

	assert.Empty(t, table.Years)
	assert.Empty(t, table.Genes)
	assert.Empty(t, table.Counts)
	assert.True(t, table.IsEmpty())
}

func TestAggregateSkipsUndatedIsolates(t *testing.T) {
	records := []*GeneRecord{
		{Gene: "g", Taxa: []string{"abcd_x1", "2019_a", "19_b", "2019b", "x2019_c", ""}},
	}

	table := Aggregate(records)

	assert.Equal(t, []string{"2019"}, table.Years)
	assert.Equal(t, [][]int{{1}}, table.Counts)
}

func TestAggregateGeneWithoutDatedIsolates(t *testing.T) {
	records := []*GeneRecord{
		{Gene: "undated", Taxa: []string{"abcd_x1"}},
		{Gene: "dated", Taxa: []string{"2001_a"}},
	}

	table := Aggregate(records)

	assert.Equal(t, []string{"dated"}, table.Genes)
}

func TestAggregateZeroFillAndOrder(t *testing.T) {
	records := []*GeneRecord{
		{Gene: "zeta", Taxa: []string{"2021_a", "2003_b"}},
		{Gene: "alpha", Taxa: []string{"2010_c"}},
		{Gene: "zeta", Taxa: []string{"2021_d"}},
	}

	table := Aggregate(records)

	require.Equal(t, []string{"2003", "2010", "2021"}, table.Years)
	require.Equal(t, []string{"zeta", "alpha"}, table.Genes)
	assert.Equal(t, [][]int{
		{1, 0},
		{0, 1},
		{2, 0},
	}, table.Counts)

	for _, row := range table.Counts {
		require.Len(t, row, len(table.Genes))
		for _, c := range row {
			assert.GreaterOrEqual(t, c, 0)
		}
	}
}

func TestBuildTableIdempotent(t *testing.T) {
	input := lines(`FT   variation 1
FT   /gene="b"
FT   /taxa="2002_a 2001_b"
FT   variation 2
FT   /gene="a"
FT   /taxa="2001_c 2003_d"`)

	assert.Equal(t, BuildTable(input), BuildTable(input))
}

func TestIsolateYear(t *testing.T) {
	tests := []struct {
		isolate string
		year    string
		ok      bool
	}{
		{"2020_x1", "2020", true},
		{"1999_", "1999", true},
		{"20201_x", "", false},
		{"abcd_x1", "", false},
		{" 2020_x", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.isolate, func(t *testing.T) {
			year, ok := IsolateYear(tt.isolate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, year)
		})
	}
}
