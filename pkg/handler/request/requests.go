package request

import (
	"net/url"
)

const GeneParam = "gene"

// Genes selected in the dropdown, in the order the user picked them.
type SeriesRequest struct {
	Genes []string `json:"genes"`
}

// NewSeriesRequest reads repeated ?gene= values. Empty values are dropped;
// others are kept verbatim since gene names may carry spaces.
func NewSeriesRequest(q url.Values) SeriesRequest {
	genes := make([]string, 0, len(q[GeneParam]))
	for _, g := range q[GeneParam] {
		if g != "" {
			genes = append(genes, g)
		}
	}
	return SeriesRequest{Genes: genes}
}

// HasSelection reports whether any gene was given.
func (sr SeriesRequest) HasSelection() bool {
	return len(sr.Genes) > 0
}
