package model

// IsEmpty reports whether the table has no gene columns.
func (t *FrequencyTable) IsEmpty() bool {
	return t == nil || len(t.Genes) == 0
}

// GeneIndex returns the column position of gene, or -1.
func (t *FrequencyTable) GeneIndex(gene string) int {
	if t == nil {
		return -1
	}
	for i, g := range t.Genes {
		if g == gene {
			return i
		}
	}
	return -1
}

// Count returns the isolate count for a year and gene, 0 when either is absent.
func (t *FrequencyTable) Count(year, gene string) int {
	j := t.GeneIndex(gene)
	if j < 0 {
		return 0
	}
	for i, y := range t.Years {
		if y == year {
			return t.Counts[i][j]
		}
	}
	return 0
}

// DefaultSelection is the first gene column, or nothing for an empty table.
func (t *FrequencyTable) DefaultSelection() []string {
	if t.IsEmpty() {
		return []string{}
	}
	return []string{t.Genes[0]}
}

// FilterSelection keeps the selected names that are table columns, in the
// order given and without duplicates.
func (t *FrequencyTable) FilterSelection(selected []string) []string {
	out := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, gene := range selected {
		if _, dup := seen[gene]; dup {
			continue
		}
		if t.GeneIndex(gene) < 0 {
			continue
		}
		seen[gene] = struct{}{}
		out = append(out, gene)
	}
	return out
}

// Series melts the selected columns into (year, gene, count) rows, one block
// per gene in selection order with years ascending. An empty or unknown
// selection yields an empty series.
func (t *FrequencyTable) Series(selected []string) []SeriesPoint {
	if t.IsEmpty() {
		return []SeriesPoint{}
	}

	genes := t.FilterSelection(selected)
	points := make([]SeriesPoint, 0, len(genes)*len(t.Years))

	for _, gene := range genes {
		j := t.GeneIndex(gene)
		for i, year := range t.Years {
			points = append(points, SeriesPoint{
				Year:         year,
				Gene:         gene,
				IsolateCount: t.Counts[i][j],
			})
		}
	}

	return points
}
