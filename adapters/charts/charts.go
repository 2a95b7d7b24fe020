// Package charts builds the dashboard's chart objects from filtered tables.
// Plots are opaque to callers; the ui layer renders them to PNG.
package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"oceandash/domain/indicator"
	"oceandash/domain/table"
	"oceandash/internal/analysis"
)

// palette cycles per-entity series colors on the trend chart.
var palette = []color.RGBA{
	{R: 0, G: 100, B: 0, A: 255},
	{R: 70, G: 130, B: 180, A: 255},
	{R: 220, G: 20, B: 60, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 65, G: 105, B: 225, A: 255},
	{R: 139, G: 0, B: 139, A: 255},
	{R: 34, G: 139, B: 34, A: 255},
	{R: 184, G: 134, B: 11, A: 255},
}

// Trend plots one line per entity of the filtered view, year on the X axis.
func Trend(view *table.Table, minYear, maxYear int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Trend (%d-%d)", view.Indicator.Label, minYear, maxYear)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = table.YearColumn
	p.Y.Label.Text = view.Indicator.AxisLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	byEntity := make(map[string][]table.Row)
	for _, row := range view.Rows {
		byEntity[row.Entity] = append(byEntity[row.Entity], row)
	}
	entities := make([]string, 0, len(byEntity))
	for entity := range byEntity {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	for i, entity := range entities {
		rows := byEntity[entity]
		sort.SliceStable(rows, func(a, b int) bool { return rows[a].Year < rows[b].Year })

		points := make(plotter.XYs, len(rows))
		for j, row := range rows {
			points[j].X = float64(row.Year)
			points[j].Y = row.Value
		}

		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return nil, fmt.Errorf("failed to plot series %s: %w", entity, err)
		}
		c := palette[i%len(palette)]
		line.Color = c
		line.Width = vg.Points(1.5)
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(line, scatter)
		p.Legend.Add(entity, line, scatter)
	}

	return p, nil
}

// Ranking plots the per-entity metric for one year as a bar chart, already
// sorted descending by analysis.RankingForYear.
func Ranking(rows []table.Row, def indicator.Definition, year int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Ranking (%d)", def.Label, year)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = def.AxisLabel

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row.Value
		labels[i] = row.Entity
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("failed to build ranking bars: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return p, nil
}

// Progress plots the absolute delta per entity from the progress analysis.
func Progress(records []analysis.ProgressRecord, axisLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Absolute Change over Selected Period"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = axisLabel

	values := make(plotter.Values, len(records))
	labels := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec.AbsoluteDelta
		labels[i] = rec.Entity
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("failed to build progress bars: %w", err)
	}
	bars.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return p, nil
}

// Scatter plots the joined observations of a correlation analysis.
func Scatter(result analysis.CorrelationResult, labelX, labelY, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = labelX
	p.Y.Label.Text = labelY
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(result.Pairs))
	for i, pair := range result.Pairs {
		points[i].X = pair.X
		points[i].Y = pair.Y
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build correlation scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	return p, nil
}

// WritePNG renders a plot to PNG at the given size in points.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
