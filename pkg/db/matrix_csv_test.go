package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/geneplatter/pkg/model"
)

func sampleTable() *model.FrequencyTable {
	return &model.FrequencyTable{
		Years:  []string{"2019", "2020"},
		Genes:  []string{"blaA", "tetB"},
		Counts: [][]int{{3, 0}, {1, 4}},
	}
}

func TestWriteMatrixCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatrixCSV(&buf, sampleTable()))

	assert.Equal(t, ",blaA,tetB\n2019,3,0\n2020,1,4\n", buf.String())
}

func TestReadMatrixCSV(t *testing.T) {
	table, err := ReadMatrixCSV(bytes.NewBufferString(",blaA,tetB\n2019,3,0\n2020,1,4\n"))
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), table)
}

func TestReadMatrixCSVBadCount(t *testing.T) {
	_, err := ReadMatrixCSV(bytes.NewBufferString(",blaA\n2019,x\n"))
	assert.Error(t, err)
}

func TestMatrixCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatrixCSV(&buf, &model.FrequencyTable{}))

	table, err := ReadMatrixCSV(&buf)
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Empty(t, table.Years)
}

func TestSaveMatrixCSVCreatesFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	p, err := SaveMatrixCSV(dir, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, MatrixCSVName), p)

	first, err := os.ReadFile(p)
	require.NoError(t, err)

	// Same table, same bytes.
	_, err = SaveMatrixCSV(dir, sampleTable())
	require.NoError(t, err)
	second, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
