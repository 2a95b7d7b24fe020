// Command report prints exploratory statistics for one indicator to the
// terminal and optionally writes the trend chart and a CSV of the filtered
// rows, without starting the web UI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"oceandash/adapters/charts"
	"oceandash/domain/indicator"
	"oceandash/domain/table"
	"oceandash/internal/analysis"
	"oceandash/internal/export"
	"oceandash/internal/loader"
)

func main() {
	var dataDir string
	var entities []string
	var yearMin, yearMax int
	var chartOut, csvOut string

	rootCmd := &cobra.Command{
		Use:   "report [indicator-key]",
		Short: "Print exploratory statistics for one SDG-14 indicator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], dataDir, entities, yearMin, yearMax, chartOut, csvOut)
		},
	}

	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding the indicator CSV files")
	rootCmd.Flags().StringSliceVar(&entities, "entity", nil, "countries/regions to filter on (default: first five)")
	rootCmd.Flags().IntVar(&yearMin, "year-min", 0, "first year of the selection (default: dataset minimum)")
	rootCmd.Flags().IntVar(&yearMax, "year-max", 0, "last year of the selection (default: dataset maximum)")
	rootCmd.Flags().StringVar(&chartOut, "chart", "", "write the trend chart PNG to this path")
	rootCmd.Flags().StringVar(&csvOut, "csv", "", "write the filtered rows as CSV to this path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(key, dataDir string, entities []string, yearMin, yearMax int, chartOut, csvOut string) error {
	registry := indicator.NewRegistry()
	tbl, err := loader.New(registry, dataDir).Load(key)
	if err != nil {
		return err
	}

	exploration, err := analysis.Explore(tbl)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", tbl.Indicator.Label, key)
	fmt.Printf("  countries: %d   period: %d-%d\n", exploration.EntityCount, exploration.FirstYear, exploration.LastYear)
	fmt.Printf("  mean: %.2f   std: %.2f\n", exploration.Mean, exploration.Std)
	fmt.Printf("  min: %.2f   q1: %.2f   median: %.2f   q3: %.2f   max: %.2f\n",
		exploration.Summary.Min, exploration.Summary.Q1, exploration.Summary.Median,
		exploration.Summary.Q3, exploration.Summary.Max)

	fmt.Println("  highest values:")
	for _, em := range exploration.Top {
		fmt.Printf("    %-40s %.2f\n", em.Entity, em.Mean)
	}
	fmt.Println("  lowest values:")
	for _, em := range exploration.Bottom {
		fmt.Printf("    %-40s %.2f\n", em.Entity, em.Mean)
	}

	if len(entities) == 0 {
		entities = tbl.Entities()
		if len(entities) > 5 {
			entities = entities[:5]
		}
	}
	if yearMin == 0 {
		yearMin = exploration.FirstYear
	}
	if yearMax == 0 {
		yearMax = exploration.LastYear
	}
	view := tbl.Filter(entities, table.YearRange{Min: yearMin, Max: yearMax})

	for _, rec := range analysis.AnalyzeProgress(view, entities) {
		fmt.Printf("  %s: %.2f (%d) -> %.2f (%d), change %+.2f (%+.1f%%)\n",
			rec.Entity, rec.FirstValue, rec.FirstYear, rec.LastValue, rec.LastYear,
			rec.AbsoluteDelta, rec.PercentDelta)
	}

	if chartOut != "" {
		p, err := charts.Trend(view, yearMin, yearMax)
		if err != nil {
			return err
		}
		if err := p.Save(9*vg.Inch, 5*vg.Inch, chartOut); err != nil {
			return fmt.Errorf("failed to save chart: %w", err)
		}
		fmt.Printf("wrote %s\n", chartOut)
	}

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, view); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}

	return nil
}
