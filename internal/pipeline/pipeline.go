// Package pipeline wires the cleaning stages into a single linear batch run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-analysis/internal/dataset"
	"github.com/couchcryptid/storm-impact-analysis/internal/domain"
	"github.com/couchcryptid/storm-impact-analysis/internal/observability"
)

// Loader reads the source dataset into a Frame. The production loader is
// dataset.Load; tests substitute an in-memory one.
type Loader interface {
	Load(path string) (*dataset.Frame, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(path string) (*dataset.Frame, error)

// Load calls f.
func (f LoaderFunc) Load(path string) (*dataset.Frame, error) { return f(path) }

// Pipeline runs the load-clean-aggregate sequence once over a static input.
// Data flows strictly forward: every stage consumes the previous stage's
// slice and returns a new one, so no stage aliases another's state.
type Pipeline struct {
	loader  Loader
	logger  *slog.Logger
	metrics *observability.Metrics

	yearFloor  int
	percentile float64
	topN       int
}

// Options are the analysis tunables carried over from config.
type Options struct {
	YearFloor  int
	Percentile float64
	TopN       int
}

// New creates a Pipeline with the given loader and observability.
func New(loader Loader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		loader:     loader,
		logger:     logger,
		metrics:    metrics,
		yearFloor:  opts.YearFloor,
		percentile: opts.Percentile,
		topN:       opts.TopN,
	}
}

// Table is one ranking: the metric it sums and its rows, highest first.
type Table struct {
	Metric domain.Metric   `json:"metric"`
	Rows   []domain.Ranked `json:"rows"`
}

// Summary counts what each stage kept and dropped. Drops happen only at the
// window and impact filters; every other stage preserves row count.
type Summary struct {
	RowsLoaded     int `json:"rows_loaded"`
	RowsInWindow   int `json:"rows_in_window"`
	RowsImpactful  int `json:"rows_impactful"`
	RowsRelabeled  int `json:"rows_relabeled"`
	DistinctLabels int `json:"distinct_labels"`
}

// Result carries the six ranking tables consumed by the presentation layer:
// the health rankings (total, fatalities, injuries) and the economic rankings
// (total, property, crop).
type Result struct {
	HealthImpact   Table `json:"health_impact"`
	Fatalities     Table `json:"fatalities"`
	Injuries       Table `json:"injuries"`
	EconomicImpact Table `json:"economic_impact"`
	PropertyDamage Table `json:"property_damage"`
	CropDamage     Table `json:"crop_damage"`

	Summary     Summary   `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Tables returns the rankings in presentation order.
func (r *Result) Tables() []Table {
	return []Table{
		r.HealthImpact, r.Fatalities, r.Injuries,
		r.EconomicImpact, r.PropertyDamage, r.CropDamage,
	}
}

// Run executes the full analysis over the file at path. Any stage error
// aborts the run with no partial result; the error names the failed stage and
// wraps one of the domain error kinds.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	frame, err := p.loadStage(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, summary, err := p.cleanStages(frame)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary.RowsLoaded = frame.Len()
	return p.aggregateStage(summary, records), nil
}

func (p *Pipeline) loadStage(path string) (*dataset.Frame, error) {
	start := time.Now()
	frame, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w", err)
	}
	p.metrics.RowsLoaded.Add(float64(frame.Len()))
	p.observeStage("load", start)
	p.logger.Info("dataset loaded", "path", path, "rows", frame.Len(), "columns", len(frame.Columns))
	return frame, nil
}

// cleanStages runs selection, date parsing, damage expansion, and both
// filters, returning the impact-bearing records inside the window with
// reconciled labels.
func (p *Pipeline) cleanStages(frame *dataset.Frame) ([]domain.CleanedRecord, Summary, error) {
	var summary Summary

	start := time.Now()
	raws, err := dataset.SelectImpactFields(frame)
	if err != nil {
		return nil, summary, fmt.Errorf("select stage: %w", err)
	}
	p.observeStage("select", start)

	start = time.Now()
	cleaned, err := domain.CleanRecords(raws)
	if err != nil {
		return nil, summary, fmt.Errorf("normalize stage: %w", err)
	}
	p.observeStage("normalize", start)

	start = time.Now()
	inWindow := domain.FilterSince(cleaned, p.yearFloor)
	summary.RowsInWindow = len(inWindow)
	p.metrics.RowsOutOfWindow.Add(float64(len(cleaned) - len(inWindow)))
	p.logger.Info("window filter applied",
		"year_floor", p.yearFloor,
		"kept", len(inWindow),
		"dropped", len(cleaned)-len(inWindow),
	)

	impactful := domain.FilterImpactful(inWindow)
	summary.RowsImpactful = len(impactful)
	p.metrics.RowsNoImpact.Add(float64(len(inWindow) - len(impactful)))
	p.logger.Info("impact filter applied",
		"kept", len(impactful),
		"dropped", len(inWindow)-len(impactful),
	)
	p.observeStage("filter", start)

	start = time.Now()
	relabeled, rewritten := domain.ReconcileCategories(
		domain.UppercaseCategories(impactful), p.percentile)
	summary.RowsRelabeled = rewritten
	p.metrics.LabelsRewritten.Add(float64(rewritten))
	p.logger.Info("categories reconciled", "percentile", p.percentile, "rows_relabeled", rewritten)
	p.observeStage("reconcile", start)

	return relabeled, summary, nil
}

func (p *Pipeline) aggregateStage(summary Summary, records []domain.CleanedRecord) *Result {
	start := time.Now()

	full := domain.Aggregate(records, domain.MetricHealth)
	summary.DistinctLabels = len(full)
	res := &Result{
		HealthImpact:   p.rank(records, domain.MetricHealth),
		Fatalities:     p.rank(records, domain.MetricFatalities),
		Injuries:       p.rank(records, domain.MetricInjuries),
		EconomicImpact: p.rank(records, domain.MetricEconomic),
		PropertyDamage: p.rank(records, domain.MetricProperty),
		CropDamage:     p.rank(records, domain.MetricCrop),
		Summary:        summary,
		GeneratedAt:    domain.Now(),
	}
	p.observeStage("aggregate", start)
	p.logger.Info("aggregation complete", "distinct_labels", len(full))
	return res
}

func (p *Pipeline) rank(records []domain.CleanedRecord, metric domain.Metric) Table {
	return Table{
		Metric: metric,
		Rows:   domain.TopN(domain.Aggregate(records, metric), p.topN),
	}
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
