package handler

import (
	"bytes"
	"net/http"

	"github.com/yumyai/geneplatter/logger"
	"github.com/yumyai/geneplatter/pkg/db"
	"github.com/yumyai/geneplatter/pkg/handler/request"
	"github.com/yumyai/geneplatter/pkg/model"
	"github.com/yumyai/geneplatter/pkg/render"
	"go.uber.org/zap"
)

type GenesResponse struct {
	Genes []string `json:"genes"`
	Years []string `json:"years"`
}

// MainPage renders the trend page. Without ?gene= the first column is selected.
func (app *AppContext) MainPage(w http.ResponseWriter, r *http.Request) {

	req := request.NewSeriesRequest(r.URL.Query())

	selected := app.Table.DefaultSelection()
	if req.HasSelection() {
		selected = app.Table.FilterSelection(req.Genes)
	}

	logger.Debug("Rendering trend page", zap.Strings("selected", selected))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := render.RenderTrendPage(w, render.TrendPageData{
		Source:   app.Source,
		Genes:    app.Table.Genes,
		Selected: selected,
		Series:   app.Table.Series(selected),
	})

	if err != nil {
		logger.Error("Fail to render trend page", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// GenesAPI lists the selectable gene columns and the year axis.
func (app *AppContext) GenesAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, GenesResponse{
		Genes: nonNil(app.Table.Genes),
		Years: nonNil(app.Table.Years),
	})
}

// SeriesAPI returns long-form (year, gene, count) rows for the selected genes.
// No selection gives an empty array.
func (app *AppContext) SeriesAPI(w http.ResponseWriter, r *http.Request) {

	req := request.NewSeriesRequest(r.URL.Query())

	var points []model.SeriesPoint
	if req.HasSelection() {
		points = app.Table.Series(req.Genes)
	} else {
		points = []model.SeriesPoint{}
	}

	logger.Debug("Series requested", zap.Strings("genes", req.Genes), zap.Int("points", len(points)))

	writeJSON(w, points)
}

// MatrixCSVHandler serves the dense matrix as gene_year_matrix.csv.
func (app *AppContext) MatrixCSVHandler(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+db.MatrixCSVName+"\"")

	if err := db.WriteMatrixCSV(w, app.Table); err != nil {
		logger.Error("Fail to write matrix csv", zap.Error(err))
		http.Error(w, "Failed to write matrix", http.StatusInternalServerError)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ChartPNGHandler renders the selected genes as a PNG line chart.
func (app *AppContext) ChartPNGHandler(w http.ResponseWriter, r *http.Request) {

	req := request.NewSeriesRequest(r.URL.Query())
	points := app.Table.Series(req.Genes)

	if len(points) == 0 {
		http.Error(w, "Select at least one gene from the table", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := render.RenderChartPNG(&buf, points); err != nil {
		logger.Error("Fail to render chart", zap.Error(err), zap.Strings("genes", req.Genes))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", "inline; filename=\"selected_genes_trend.png\"")
	w.Write(buf.Bytes())
}
