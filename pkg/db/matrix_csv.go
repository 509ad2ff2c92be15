package db

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/yumyai/geneplatter/internal/util"
	"github.com/yumyai/geneplatter/pkg/model"
)

const MatrixCSVName = "gene_year_matrix.csv"

// WriteMatrixCSV writes the table with the year as row label and one column per gene.
// The header's first cell is left empty.
func WriteMatrixCSV(w io.Writer, table *model.FrequencyTable) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(table.Genes)+1)
	header = append(header, "")
	header = append(header, table.Genes...)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write matrix header")
	}

	for i, year := range table.Years {
		record := make([]string, 0, len(table.Genes)+1)
		record = append(record, year)
		for _, c := range table.Counts[i] {
			record = append(record, strconv.Itoa(c))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "write matrix row %s", year)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveMatrixCSV writes gene_year_matrix.csv into dir, creating dir when needed.
func SaveMatrixCSV(dir string, table *model.FrequencyTable) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", errors.Wrapf(err, "create output folder %s", dir)
	}

	matrixPath := filepath.Join(dir, MatrixCSVName)
	f, err := os.Create(matrixPath)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", matrixPath)
	}
	defer f.Close()

	if err := WriteMatrixCSV(f, table); err != nil {
		return "", err
	}

	return matrixPath, f.Close()
}

// ReadMatrixCSV reads a matrix written by WriteMatrixCSV.
func ReadMatrixCSV(r io.Reader) (*model.FrequencyTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read matrix csv")
	}

	table := &model.FrequencyTable{
		Years:  []string{},
		Genes:  []string{},
		Counts: [][]int{},
	}

	if len(records) == 0 {
		return table, nil
	}

	table.Genes = append(table.Genes, records[0][1:]...)

	for _, record := range records[1:] {
		row := make([]int, len(table.Genes))
		for j, cell := range record[1:] {
			c, err := strconv.Atoi(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "year %s, gene %s", record[0], table.Genes[j])
			}
			row[j] = c
		}
		table.Years = append(table.Years, record[0])
		table.Counts = append(table.Counts, row)
	}

	return table, nil
}
