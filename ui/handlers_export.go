package ui

import (
	"net/http"
	"time"

	"oceandash/internal/export"
)

func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	filename := export.Filename(sel.Key, "csv", time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteCSV(w, sel.View); err != nil {
		a.logger.Error("csv export: %v", err)
	}
}

func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	sel, err := a.resolveSelection(r)
	if err != nil {
		a.failPlain(w, err)
		return
	}

	filename := export.Filename(sel.Key, "xlsx", time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := export.WriteXLSX(w, sel.View); err != nil {
		a.logger.Error("xlsx export: %v", err)
	}
}
