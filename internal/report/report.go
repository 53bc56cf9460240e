// Package report serializes analysis results for the presentation layer.
// The core never renders charts; it hands over ranked tables as aligned text
// for operators and as JSON for downstream chart tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/storm-impact-analysis/internal/domain"
	"github.com/couchcryptid/storm-impact-analysis/internal/pipeline"
)

// titles maps each metric to its table heading.
var titles = map[domain.Metric]string{
	domain.MetricHealth:     "Health impact (fatalities + injuries)",
	domain.MetricFatalities: "Fatalities",
	domain.MetricInjuries:   "Injuries",
	domain.MetricEconomic:   "Economic impact (property + crop, USD)",
	domain.MetricProperty:   "Property damage (USD)",
	domain.MetricCrop:       "Crop damage (USD)",
}

// WriteText renders all ranking tables as aligned text.
func WriteText(w io.Writer, res *pipeline.Result) error {
	fmt.Fprintf(w, "Most harmful weather event types, %s\n",
		res.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "rows: %d loaded, %d in window, %d with impact, %d relabeled, %d categories\n",
		res.Summary.RowsLoaded,
		res.Summary.RowsInWindow,
		res.Summary.RowsImpactful,
		res.Summary.RowsRelabeled,
		res.Summary.DistinctLabels,
	)

	for _, table := range res.Tables() {
		if err := writeTable(w, table); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, table pipeline.Table) error {
	fmt.Fprintf(w, "\n%s\n", titles[table.Metric])

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tEVENT TYPE\tTOTAL")
	for i, row := range table.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, row.Label, row.Total.String())
	}
	return tw.Flush()
}

// WriteJSON serializes the full result, tables and summary included, for the
// chart-producing collaborator.
func WriteJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
