package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/yumyai/geneplatter/pkg/model"
)

// matrixTableData lays the table out as rows for pterm, header first.
func matrixTableData(table *model.FrequencyTable) pterm.TableData {
	data := make(pterm.TableData, 0, len(table.Years)+1)

	header := append([]string{"Year"}, table.Genes...)
	data = append(data, header)

	for i, year := range table.Years {
		row := make([]string, 0, len(table.Genes)+1)
		row = append(row, year)
		for _, c := range table.Counts[i] {
			row = append(row, strconv.Itoa(c))
		}
		data = append(data, row)
	}

	return data
}

// RenderConsoleTable prints the matrix as a terminal table plus a summary line.
func RenderConsoleTable(w io.Writer, table *model.FrequencyTable) error {

	if table.IsEmpty() {
		_, err := fmt.Fprintln(w, pterm.Yellow("No genes with dated isolates found."))
		return err
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(matrixTableData(table)).Srender()
	if err != nil {
		return err
	}

	total := 0
	for _, row := range table.Counts {
		for _, c := range row {
			total += c
		}
	}

	_, err = fmt.Fprintf(w, "%s\n%s %d genes, %d years, %d dated isolates\n",
		out, pterm.LightGreen("✓"), len(table.Genes), len(table.Years), total)
	return err
}
