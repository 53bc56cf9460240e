package domain

// HasImpact reports whether a record carries any measurable harm: at least
// one of fatalities, injuries, property damage, or crop damage strictly
// positive. Unknown damage amounts count as zero here.
func (r CleanedRecord) HasImpact() bool {
	return r.Fatalities.IsPositive() ||
		r.Injuries.IsPositive() ||
		r.PropertyDamage.OrZero().IsPositive() ||
		r.CropDamage.OrZero().IsPositive()
}

// FilterImpactful drops records with no health or economic impact. A row with
// all four impacts at zero contributes nothing to any ranking. Order-preserving.
func FilterImpactful(records []CleanedRecord) []CleanedRecord {
	kept := make([]CleanedRecord, 0, len(records))
	for _, r := range records {
		if r.HasImpact() {
			kept = append(kept, r)
		}
	}
	return kept
}
