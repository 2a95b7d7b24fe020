package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"oceandash/domain/indicator"
	"oceandash/domain/table"
	"oceandash/internal/analysis"
)

// correlationView is the data behind the cross-indicator correlation page.
type correlationView struct {
	Indicators []indicator.Definition
	KeyA       string
	KeyB       string
	Same       bool

	DefA indicator.Definition
	DefB indicator.Definition

	Result         *analysis.CorrelationResult
	Interpretation string
	Query          string
}

func (a *App) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	keys := a.registry.Keys()
	keyA := r.URL.Query().Get("a")
	keyB := r.URL.Query().Get("b")
	if keyA == "" {
		keyA = keys[0]
	}
	if keyB == "" {
		keyB = keys[1]
	}

	view := correlationView{
		Indicators: a.registry.All(),
		KeyA:       keyA,
		KeyB:       keyB,
		Same:       keyA == keyB,
	}
	if view.Same {
		a.renderTemplate(w, "correlation.html", view)
		return
	}

	tblA, tblB, err := a.loadPair(keyA, keyB)
	if err != nil {
		a.renderError(w, err)
		return
	}
	view.DefA = tblA.Indicator
	view.DefB = tblB.Indicator

	result := analysis.Correlate(tblA, tblB)
	view.Result = &result
	if result.Defined {
		view.Interpretation = analysis.InterpretCorrelation(result.Coefficient)
	}
	view.Query = "a=" + keyA + "&b=" + keyB

	a.renderTemplate(w, "correlation.html", view)
}

// loadPair loads two independent indicator tables concurrently. The cache
// serializes access to its own map; the loads themselves are independent.
func (a *App) loadPair(keyA, keyB string) (*table.Table, *table.Table, error) {
	var tblA, tblB *table.Table
	var g errgroup.Group
	g.Go(func() error {
		var err error
		tblA, err = a.cache.Load(keyA)
		return err
	})
	g.Go(func() error {
		var err error
		tblB, err = a.cache.Load(keyB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return tblA, tblB, nil
}
