package domain

import "github.com/shopspring/decimal"

// RawRecord is the eight-column projection of one Storm Events row. Rows are
// not unique: the same event type recurs across the dataset, and every
// occurrence counts toward the totals.
type RawRecord struct {
	BeginDate     string // "4/18/1950 0:00:00"
	EventType     string // free-text EVTYPE
	Fatalities    float64
	Injuries      float64
	PropDamage    float64 // coefficient, scaled by PropDamageExp
	PropDamageExp string
	CropDamage    float64 // coefficient, scaled by CropDamageExp
	CropDamageExp string
}

// CleanedRecord is a RawRecord after date parsing and damage expansion.
// It is immutable once built except for the event-type label, which the
// category reconciliation step may rewrite for high-impact categories.
type CleanedRecord struct {
	Year           int
	EventType      string
	Fatalities     decimal.Decimal
	Injuries       decimal.Decimal
	PropertyDamage Amount
	CropDamage     Amount
}

// decimalFromCount converts a casualty count into the decimal space shared
// by all impact metrics. Counts in the source are whole numbers.
func decimalFromCount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// HealthImpact is the number of people harmed: fatalities plus injuries.
func (r CleanedRecord) HealthImpact() decimal.Decimal {
	return r.Fatalities.Add(r.Injuries)
}

// EconomicImpact is the total damage in dollars: property plus crop, with
// unknown amounts substituted by zero.
func (r CleanedRecord) EconomicImpact() decimal.Decimal {
	return r.PropertyDamage.OrZero().Add(r.CropDamage.OrZero())
}
