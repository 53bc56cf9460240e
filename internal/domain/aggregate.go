package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Metric selects which impact figure an aggregation sums.
type Metric string

// The six rankable metrics. Health and economic are the composite figures;
// the rest break them down for the per-component tables.
const (
	MetricHealth     Metric = "health_impact"
	MetricFatalities Metric = "fatalities"
	MetricInjuries   Metric = "injuries"
	MetricEconomic   Metric = "economic_impact"
	MetricProperty   Metric = "property_damage"
	MetricCrop       Metric = "crop_damage"
)

// valueOf extracts the metric's value from one record.
func (m Metric) valueOf(r CleanedRecord) decimal.Decimal {
	switch m {
	case MetricHealth:
		return r.HealthImpact()
	case MetricFatalities:
		return r.Fatalities
	case MetricInjuries:
		return r.Injuries
	case MetricEconomic:
		return r.EconomicImpact()
	case MetricProperty:
		return r.PropertyDamage.OrZero()
	case MetricCrop:
		return r.CropDamage.OrZero()
	default:
		return decimal.Zero
	}
}

// Ranked is one row of an aggregate ranking: an event-type label and the sum
// of the selected metric across all records carrying that label.
type Ranked struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Aggregate groups records by event-type label and sums the selected metric
// per group, ordered by sum descending with ties broken by ascending label.
// The input is not mutated; the aggregation can be re-run per metric without
// recomputing upstream stages.
func Aggregate(records []CleanedRecord, metric Metric) []Ranked {
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		totals[r.EventType] = totals[r.EventType].Add(metric.valueOf(r))
	}

	ranked := make([]Ranked, 0, len(totals))
	for label, total := range totals {
		ranked = append(ranked, Ranked{Label: label, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Total.Cmp(ranked[j].Total); c != 0 {
			return c > 0
		}
		return ranked[i].Label < ranked[j].Label
	})
	return ranked
}

// TopN truncates a ranking to its n highest rows. A tie at the boundary is
// already resolved by the sort's label tie-break, so truncation stays
// deterministic.
func TopN(ranked []Ranked, n int) []Ranked {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
