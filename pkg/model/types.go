package model

// GeneRecord is one completed variation entry from a .tab file.
// Gene is never empty and Taxa never has zero length once emitted.
type GeneRecord struct {
	Gene      string   `json:"gene"`
	Variation string   `json:"variation,omitempty"` // first digit run of the FT line, "" when absent
	Taxa      []string `json:"taxa"`
}

// FrequencyTable is the dense year x gene isolate count matrix.
// Counts[i][j] is the count for Years[i] and Genes[j].
type FrequencyTable struct {
	Years  []string `json:"years"`
	Genes  []string `json:"genes"`
	Counts [][]int  `json:"counts"`
}

// SeriesPoint is one long-form row used for multi-line plotting.
type SeriesPoint struct {
	Year         string `json:"year"`
	Gene         string `json:"gene"`
	IsolateCount int    `json:"isolate_count"`
}
