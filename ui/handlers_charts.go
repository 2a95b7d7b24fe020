package ui

import (
	"net/http"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"oceandash/adapters/charts"
	"oceandash/internal/analysis"
)

const (
	chartWidth  = 9 * vg.Inch
	chartHeight = 5 * vg.Inch
)

func (a *App) handleTrendChart(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	p, err := charts.Trend(sel.View, sel.Years.Min, sel.Years.Max)
	if err != nil {
		a.failPlain(w, err)
		return
	}
	a.writeChart(w, p)
}

func (a *App) handleRankingChart(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	year := rankYear(r, sel.Table)
	rows := analysis.RankingForYear(sel.Table, year, 15)
	p, err := charts.Ranking(rows, sel.Def, year)
	if err != nil {
		a.failPlain(w, err)
		return
	}
	a.writeChart(w, p)
}

func (a *App) handleProgressChart(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	records := analysis.AnalyzeProgress(sel.View, sel.Entities)
	p, err := charts.Progress(records, sel.Def.AxisLabel)
	if err != nil {
		a.failPlain(w, err)
		return
	}
	a.writeChart(w, p)
}

func (a *App) handleScatterChart(w http.ResponseWriter, r *http.Request) {
	keyA := r.URL.Query().Get("a")
	keyB := r.URL.Query().Get("b")

	tblA, tblB, err := a.loadPair(keyA, keyB)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	result := analysis.Correlate(tblA, tblB)
	title := "Correlation: " + tblA.Indicator.Label + " vs " + tblB.Indicator.Label
	p, err := charts.Scatter(result, tblA.Indicator.AxisLabel, tblB.Indicator.AxisLabel, title)
	if err != nil {
		a.failPlain(w, err)
		return
	}
	a.writeChart(w, p)
}

func (a *App) writeChart(w http.ResponseWriter, p *plot.Plot) {
	w.Header().Set("Content-Type", "image/png")
	if err := charts.WritePNG(w, p, chartWidth, chartHeight); err != nil {
		a.logger.Error("chart render: %v", err)
	}
}
