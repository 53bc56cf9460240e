package domain

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RewriteRule merges one free-text label variant into its canonical category.
// Pattern is a substring match unless Exact is set, in which case the whole
// label must equal Pattern.
type RewriteRule struct {
	Pattern     string
	Replacement string
	Exact       bool
}

// Apply rewrites a single label under the rule.
func (rule RewriteRule) Apply(label string) string {
	if rule.Exact {
		if label == rule.Pattern {
			return rule.Replacement
		}
		return label
	}
	return strings.ReplaceAll(label, rule.Pattern, rule.Replacement)
}

// RewriteRules reconciles the label variants that are material to the final
// rankings. Order matters: a rewrite by an earlier rule can make a label
// eligible for a later one, and the exact HURRICANE rule must run after the
// HURRICANE/TYPHOON substring rule so already-qualified labels are not
// rewritten twice.
var RewriteRules = []RewriteRule{
	{Pattern: "TSTM WIND", Replacement: "THUNDERSTORM WIND"},
	{Pattern: "RIP CURRENTS", Replacement: "RIP CURRENT"},
	{Pattern: "FOG", Replacement: "FREEZING FOG"},
	{Pattern: "WILD/FOREST FIRE", Replacement: "WILDFIRE"},
	{Pattern: "HURRICANE/TYPHOON", Replacement: "HURRICANE (TYPHOON)"},
	{Pattern: "EXTREME COLD/WIND CHILL", Replacement: "EXTREME COLD"},
	{Pattern: "HURRICANE", Replacement: "HURRICANE (TYPHOON)", Exact: true},
}

// UppercaseCategories case-folds every event-type label to uppercase,
// trimming stray whitespace. Total and idempotent; returns a new slice.
func UppercaseCategories(records []CleanedRecord) []CleanedRecord {
	out := make([]CleanedRecord, len(records))
	for i, r := range records {
		r.EventType = strings.ToUpper(strings.TrimSpace(r.EventType))
		out[i] = r
	}
	return out
}

// Quantile computes the p-quantile of values by linear interpolation between
// order statistics (the same estimator the source analysis used). Values need
// not be sorted. Returns zero for an empty input.
func Quantile(values []decimal.Decimal, p float64) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := decimal.NewFromFloat(h - float64(lo))
	return sorted[lo].Add(sorted[lo+1].Sub(sorted[lo]).Mul(frac))
}

// highImpactLabels returns the labels whose aggregate health or economic sum
// strictly exceeds the given quantile of the respective per-label
// distribution, computed over the records as they stand at this stage.
func highImpactLabels(records []CleanedRecord, percentile float64) map[string]bool {
	scope := make(map[string]bool)
	for _, metric := range []Metric{MetricHealth, MetricEconomic} {
		ranked := Aggregate(records, metric)
		sums := make([]decimal.Decimal, len(ranked))
		for i, row := range ranked {
			sums[i] = row.Total
		}
		threshold := Quantile(sums, percentile)
		for _, row := range ranked {
			if row.Total.GreaterThan(threshold) {
				scope[row.Label] = true
			}
		}
	}
	return scope
}

// ReconcileCategories applies the ordered rewrite rules to records whose
// label sits in the top (1-percentile) share of aggregate health or economic
// impact. Labels outside that scope keep their spelling: variants that cannot
// reach the rankings are not worth reconciling, and widening the scope would
// change the documented behavior, not improve it. Rewriting relabels rows and
// never touches values, so every impact sum is conserved.
//
// Returns the relabeled records and the number of rows whose label changed.
func ReconcileCategories(records []CleanedRecord, percentile float64) ([]CleanedRecord, int) {
	scope := highImpactLabels(records, percentile)

	out := make([]CleanedRecord, len(records))
	rewritten := 0
	for i, r := range records {
		if scope[r.EventType] {
			label := r.EventType
			for _, rule := range RewriteRules {
				label = rule.Apply(label)
			}
			if label != r.EventType {
				r.EventType = label
				rewritten++
			}
		}
		out[i] = r
	}
	return out, rewritten
}
