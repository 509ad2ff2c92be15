package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeriesRequest(t *testing.T) {
	q := url.Values{}
	q.Add("gene", "tetB")
	q.Add("gene", "")
	q.Add("gene", " blaA ")
	q.Add("other", "x")

	req := NewSeriesRequest(q)

	assert.Equal(t, []string{"tetB", " blaA "}, req.Genes)
	assert.True(t, req.HasSelection())
	assert.False(t, NewSeriesRequest(url.Values{}).HasSelection())
}
