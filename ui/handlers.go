package ui

import (
	"net/http"
	"net/url"
	"strconv"

	"oceandash/domain/indicator"
	"oceandash/internal/analysis"
	"oceandash/internal/errors"
)

// dashboardView is the data behind the indicator dashboard page.
type dashboardView struct {
	Indicators []indicator.Definition
	Selected   indicator.Definition

	AllEntities      []string
	SelectedEntities map[string]bool
	Years            []int
	YearMin          int
	YearMax          int
	RankYear         int

	Exploration    *analysis.Exploration
	ExplorationErr string

	Progress []analysis.ProgressRecord

	PeriodMean float64
	PeriodStd  float64
	HasPeriod  bool

	Query string // current selection as a query string, reused by chart/export URLs
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.renderError(w, err)
		return
	}

	view := dashboardView{
		Indicators:       a.registry.All(),
		Selected:         sel.Def,
		AllEntities:      sel.Table.Entities(),
		SelectedEntities: make(map[string]bool, len(sel.Entities)),
		Years:            sel.Table.Years(),
		YearMin:          sel.Years.Min,
		YearMax:          sel.Years.Max,
		RankYear:         rankYear(r, sel.Table),
	}
	for _, e := range sel.Entities {
		view.SelectedEntities[e] = true
	}

	exploration, err := analysis.Explore(sel.Table)
	switch {
	case err == nil:
		view.Exploration = exploration
	case errors.HasCode(err, errors.CodeEmptyDataset):
		// The page still renders; the stats panel shows the message.
		view.ExplorationErr = err.Error()
	default:
		a.renderError(w, err)
		return
	}

	view.Progress = analysis.AnalyzeProgress(sel.View, sel.Entities)
	view.PeriodMean, view.PeriodStd, view.HasPeriod = analysis.PeriodMetrics(sel.View)
	view.Query = selectionQuery(sel, view.RankYear)

	a.renderTemplate(w, "index.html", view)
}

// selectionQuery serializes the current filter so chart and export links
// reproduce exactly the view the user is looking at.
func selectionQuery(sel *selection, rankYear int) string {
	q := url.Values{}
	q.Set("indicator", sel.Key)
	for _, e := range sel.Entities {
		q.Add("entity", e)
	}
	q.Set("year_min", strconv.Itoa(sel.Years.Min))
	q.Set("year_max", strconv.Itoa(sel.Years.Max))
	q.Set("rank_year", strconv.Itoa(rankYear))
	return q.Encode()
}
