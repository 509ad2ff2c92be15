package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/yumyai/geneplatter/pkg/model"
)

// Same size as the in-browser PNG export.
const (
	ChartWidth  = 1000
	ChartHeight = 600
)

var ErrEmptySeries = errors.New("no series to plot")

// seriesByGene groups long-form points into one line per gene, keeping the
// order genes first appear in.
func seriesByGene(points []model.SeriesPoint) ([]chart.Series, []float64, float64) {
	var (
		order   []string
		byGene  = make(map[string]*chart.ContinuousSeries)
		yearSet = make(map[float64]struct{})
		maxY    float64
	)

	for _, p := range points {
		year, err := strconv.ParseFloat(p.Year, 64)
		if err != nil {
			continue
		}
		s, ok := byGene[p.Gene]
		if !ok {
			s = &chart.ContinuousSeries{
				Name:  p.Gene,
				Style: chart.Style{StrokeWidth: 2, DotWidth: 4},
			}
			byGene[p.Gene] = s
			order = append(order, p.Gene)
		}
		s.XValues = append(s.XValues, year)
		s.YValues = append(s.YValues, float64(p.IsolateCount))

		yearSet[year] = struct{}{}
		if float64(p.IsolateCount) > maxY {
			maxY = float64(p.IsolateCount)
		}
	}

	series := make([]chart.Series, 0, len(order))
	for _, gene := range order {
		series = append(series, *byGene[gene])
	}

	years := make([]float64, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}

	return series, years, maxY
}

// RenderChartPNG draws the selected genes' yearly counts as a line chart.
func RenderChartPNG(w io.Writer, points []model.SeriesPoint) error {

	series, years, maxY := seriesByGene(points)
	if len(series) == 0 {
		return ErrEmptySeries
	}

	sort.Float64s(years)
	minX, maxX := years[0], years[len(years)-1]

	ticks := make([]chart.Tick, 0, len(years))
	for _, y := range years {
		ticks = append(ticks, chart.Tick{Value: y, Label: fmt.Sprintf("%.0f", y)})
	}

	// go-chart takes the x range from the ticks, so a single year needs
	// unlabelled ticks on both sides to keep the range non-zero.
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
		ticks = append([]chart.Tick{{Value: minX}}, append(ticks, chart.Tick{Value: maxX})...)
	}
	if maxY == 0 {
		maxY = 1
	}

	ch := chart.Chart{
		Title:      ChartTitle,
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  "Year",
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Isolate Count",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "render chart")
	}
	return nil
}

