// Package domain models NOAA Storm Events observations and the cleaning and
// aggregation rules used to rank event categories by harm.
//
// # Data Source
//
// Observations come from the NOAA National Climatic Data Center Storm Events
// database, distributed as a compressed comma-delimited file with one row per
// recorded event. The database spans 1950 to the present, but the full set of
// 48 event categories is only recorded from January 1996 onward; earlier years
// cover a handful of categories and would bias any cross-category comparison,
// so the analysis window starts at 1996.
//
// # Storm Events Conventions
//
// Damage encoding:
//
//	Property and crop damage are each split across two columns: a numeric
//	coefficient (PROPDMG, CROPDMG) and a single-character exponent code
//	(PROPDMGEXP, CROPDMGEXP). "K" scales by a thousand, "M" by a million,
//	"B" by a billion. The columns also carry stray markers ("?", "+", "h",
//	digits, empty) whose meaning is undocumented; those rows have an unknown
//	damage amount, which is not the same as zero damage. See [ExpandDamage].
//
// Date format:
//
//	BGN_DATE is "M/D/YYYY H:MM:SS" with a redundant midnight time component,
//	e.g. "4/18/1950 0:00:00". Some exports omit the time. See [ParseBeginDate].
//
// Event types:
//
//	EVTYPE is free text. The documented vocabulary has 48 categories but the
//	data contains hundreds of spelling variants ("TSTM WIND", "Thunderstorm
//	Wind", ...). Reconciliation is deliberately partial: only labels in the
//	top decile of aggregate impact are rewritten, because only those can
//	affect the final ranking. See [ReconcileCategories].
package domain
