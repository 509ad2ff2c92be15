package render

import (
	"html/template"
	"io"

	"github.com/yumyai/geneplatter/pkg/model"
)

const (
	PageTitle  = "Accessory/Core Genes - Yearly Trends"
	ChartTitle = "Yearly Trends of Selected Genes"
)

// TrendPageData is everything the trend page needs. Nothing is read from globals.
type TrendPageData struct {
	Source   string
	Genes    []string
	Selected []string
	Series   []model.SeriesPoint
}

var trendPageTemplate *template.Template

// init initializes the templates used for rendering the trend page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
		<title>{{ .Title }}</title>
	</head>
	<body>
		<h1 style="text-align: center">{{ .Title }}</h1>
		{{if .Source}}<p style="text-align: center; color: #666">Source: {{ .Source }}</p>{{end}}
		{{template "geneDropdown" .}}
		{{if not .Genes}}
			<p id="empty-notice" style="text-align: center">No genes with dated isolates</p>
		{{end}}
		<div id="yearly-gene-graph"></div>
		<p style="text-align: center">
			<a id="chart-png" href="#">PNG</a> | <a href="/api/v1/matrix.csv">Matrix CSV</a>
		</p>
		{{template "chartScript" .}}
	</body>
	</html>`

	geneDropdown := `
	{{define "geneDropdown"}}
	<form id="gene-form" method="GET" action="/" style="width: 70%; margin: auto">
		<label for="gene-dropdown">Select one or more genes...</label>
		<select id="gene-dropdown" name="gene" multiple size="8" style="width: 100%">
		{{range .Genes}}
			<option value="{{.}}" {{if hasKey $.SelectedSet .}}selected{{end}}>{{.}}</option>
		{{end}}
		</select>
	</form>
	{{end}}`

	chartScript := `
	{{define "chartScript"}}
	<script>
	const chartTitle = {{ .ChartTitle }};
	const chartConfig = {
		toImageButtonOptions: {
			format: 'png',
			filename: 'selected_genes_trend',
			height: 600,
			width: 1000,
			scale: 2
		}
	};

	function toTraces(points) {
		const byGene = new Map();
		for (const p of points) {
			if (!byGene.has(p.gene)) {
				byGene.set(p.gene, {x: [], y: [], name: p.gene, mode: 'lines+markers', type: 'scatter'});
			}
			const trace = byGene.get(p.gene);
			trace.x.push(p.year);
			trace.y.push(p.isolate_count);
		}
		return Array.from(byGene.values());
	}

	function draw(points) {
		Plotly.react('yearly-gene-graph', toTraces(points), {
			title: chartTitle,
			xaxis: {title: 'Year', type: 'category'},
			yaxis: {title: 'Isolate Count'},
			legend: {title: {text: 'Gene'}}
		}, chartConfig);
	}

	async function refresh() {
		const params = new URLSearchParams();
		for (const opt of document.getElementById('gene-dropdown').selectedOptions) {
			params.append('gene', opt.value);
		}
		const resp = await fetch('/api/v1/series?' + params.toString());
		if (!resp.ok) {
			return;
		}
		draw(await resp.json());
		history.replaceState(null, '', '/?' + params.toString());
		pngLink(params);
	}

	function pngLink(params) {
		document.getElementById('chart-png').href = '/api/v1/chart.png?' + params.toString();
	}

	document.getElementById('gene-dropdown').addEventListener('change', refresh);
	draw({{ .Series }});
	pngLink(new URLSearchParams(window.location.search));
	</script>
	{{end}}`

	funcMap := template.FuncMap{
		"hasKey": func(m map[string]struct{}, k string) bool {
			_, ok := m[k]
			return ok
		},
	}

	trendPageTemplate = template.New("trend").Funcs(funcMap)
	trendPageTemplate = template.Must(trendPageTemplate.Parse(mainTmpl))
	trendPageTemplate = template.Must(trendPageTemplate.Parse(geneDropdown))
	trendPageTemplate = template.Must(trendPageTemplate.Parse(chartScript))
}

// RenderTrendPage renders the gene selection and the chart seeded with the
// current series.
func RenderTrendPage(w io.Writer, page TrendPageData) error {

	selectedSet := make(map[string]struct{}, len(page.Selected))
	for _, g := range page.Selected {
		selectedSet[g] = struct{}{}
	}

	series := page.Series
	if series == nil {
		series = []model.SeriesPoint{}
	}

	data := struct {
		Title       string
		ChartTitle  string
		Source      string
		Genes       []string
		SelectedSet map[string]struct{}
		Series      []model.SeriesPoint
	}{
		Title:       PageTitle,
		ChartTitle:  ChartTitle,
		Source:      page.Source,
		Genes:       page.Genes,
		SelectedSet: selectedSet,
		Series:      series,
	}

	return trendPageTemplate.Execute(w, data)
}
