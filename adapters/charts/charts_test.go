package charts

import (
	"bytes"
	"testing"

	"gonum.org/v1/plot/vg"

	"oceandash/domain/indicator"
	"oceandash/domain/table"
	"oceandash/internal/analysis"
)

func chartView() *table.Table {
	return &table.Table{
		Indicator: indicator.Definition{Key: "test", Label: "Test", AxisLabel: "Score"},
		Rows: []table.Row{
			{Entity: "Brazil", Year: 2000, Value: 10},
			{Entity: "Brazil", Year: 2005, Value: 12},
			{Entity: "Chile", Year: 2000, Value: 8},
			{Entity: "Chile", Year: 2005, Value: 9},
		},
	}
}

func TestTrend_RendersPNG(t *testing.T) {
	p, err := Trend(chartView(), 2000, 2005)
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, p, 6*vg.Inch, 4*vg.Inch); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty PNG output")
	}
}

func TestRanking_BuildsBars(t *testing.T) {
	view := chartView()
	rows := analysis.RankingForYear(view, 2005, 15)
	if _, err := Ranking(rows, view.Indicator, 2005); err != nil {
		t.Fatalf("Ranking failed: %v", err)
	}
}

func TestProgress_BuildsBars(t *testing.T) {
	view := chartView()
	records := analysis.AnalyzeProgress(view, []string{"Brazil", "Chile"})
	if _, err := Progress(records, view.Indicator.AxisLabel); err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
}

func TestScatter_BuildsPoints(t *testing.T) {
	result := analysis.Correlate(chartView(), chartView())
	if !result.Defined {
		t.Fatal("expected a defined self-correlation")
	}
	if _, err := Scatter(result, "x", "y", "test"); err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
}
