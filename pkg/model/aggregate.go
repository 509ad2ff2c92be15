package model

import (
	"regexp"
	"sort"
)

var isolateYear = regexp.MustCompile(`^(\d{4})_`)

// IsolateYear returns the leading 4-digit year of an isolate identifier.
func IsolateYear(isolate string) (string, bool) {
	m := isolateYear.FindStringSubmatch(isolate)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// geneYearCounts is the sparse gene -> year -> count form. Genes are kept in
// the order their first isolate was counted.
type geneYearCounts struct {
	order  []string
	counts map[string]map[string]int
}

func newGeneYearCounts() *geneYearCounts {
	return &geneYearCounts{counts: make(map[string]map[string]int)}
}

func (g *geneYearCounts) add(gene, year string) {
	years, ok := g.counts[gene]
	if !ok {
		years = make(map[string]int)
		g.counts[gene] = years
		g.order = append(g.order, gene)
	}
	years[year]++
}

// densify zero-fills the sparse counts and sorts rows by year.
func (g *geneYearCounts) densify() *FrequencyTable {
	yearSet := make(map[string]struct{})
	for _, years := range g.counts {
		for y := range years {
			yearSet[y] = struct{}{}
		}
	}

	allYears := make([]string, 0, len(yearSet))
	for y := range yearSet {
		allYears = append(allYears, y)
	}
	sort.Strings(allYears)

	genes := make([]string, len(g.order))
	copy(genes, g.order)

	counts := make([][]int, len(allYears))
	for i, y := range allYears {
		row := make([]int, len(genes))
		for j, gene := range genes {
			row[j] = g.counts[gene][y]
		}
		counts[i] = row
	}

	return &FrequencyTable{
		Years:  allYears,
		Genes:  genes,
		Counts: counts,
	}
}

// Aggregate counts dated isolates per gene per year. Identifiers without a
// leading "YYYY_" are skipped.
func Aggregate(records []*GeneRecord) *FrequencyTable {
	sparse := newGeneYearCounts()

	for _, rec := range records {
		for _, isolate := range rec.Taxa {
			if year, ok := IsolateYear(isolate); ok {
				sparse.add(rec.Gene, year)
			}
		}
	}

	return sparse.densify()
}

// BuildTable runs extraction and aggregation over raw lines.
func BuildTable(lines []string) *FrequencyTable {
	return Aggregate(ExtractRecords(lines))
}
