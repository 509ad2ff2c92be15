package model

import (
	"regexp"
	"strings"
)

const (
	featureTag    = "FT"
	variationKey  = "variation"
	geneAttribute = "/gene="
	taxaAttribute = "/taxa="
	quoteChar     = `"`
)

var digitRun = regexp.MustCompile(`\d+`)

// recordAccumulator holds the record being built while scanning.
type recordAccumulator struct {
	gene      string
	variation string
	taxa      []string
}

// complete reports whether the accumulator can be emitted as a record.
func (acc recordAccumulator) complete() bool {
	return acc.gene != "" && len(acc.taxa) > 0
}

func (acc recordAccumulator) record() *GeneRecord {
	return &GeneRecord{
		Gene:      acc.gene,
		Variation: acc.variation,
		Taxa:      acc.taxa,
	}
}

func isRecordStart(line string) bool {
	return strings.HasPrefix(line, featureTag) && strings.Contains(line, variationKey)
}

// attributeValue returns the text between the first and second '=' with
// surrounding quotes removed. Interior quotes are left alone.
func attributeValue(line string) string {
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return ""
	}
	return strings.Trim(parts[1], quoteChar)
}

// step folds one line into the accumulator. A non-nil record is returned
// when the line starts a new variation and the previous one was complete.
// Repeated gene or taxa lines overwrite earlier ones.
func step(acc recordAccumulator, line string) (recordAccumulator, *GeneRecord) {
	line = strings.TrimSpace(line)

	switch {
	case isRecordStart(line):
		var done *GeneRecord
		if acc.complete() {
			done = acc.record()
		}
		return recordAccumulator{variation: digitRun.FindString(line)}, done

	case strings.Contains(line, geneAttribute):
		acc.gene = attributeValue(line)

	case strings.Contains(line, taxaAttribute):
		acc.taxa = strings.Split(attributeValue(line), " ")
	}

	return acc, nil
}

// ExtractRecords scans the lines of a .tab file and returns every complete
// gene record in input order.
func ExtractRecords(lines []string) []*GeneRecord {
	records := make([]*GeneRecord, 0)

	var acc recordAccumulator
	for _, line := range lines {
		var done *GeneRecord
		acc, done = step(acc, line)
		if done != nil {
			records = append(records, done)
		}
	}

	if acc.complete() {
		records = append(records, acc.record())
	}

	return records
}
