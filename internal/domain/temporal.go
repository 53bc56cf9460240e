package domain

import (
	"fmt"
	"strings"
	"time"
)

// beginDateLayouts are the accepted BGN_DATE forms. The canonical export
// carries a redundant midnight time component; some extracts omit it.
var beginDateLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// ParseBeginDate parses a BGN_DATE value. A string matching neither layout is
// an ErrParse: silently coercing a bad date would misplace the record in time
// and bias the year filter.
func ParseBeginDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range beginDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("begin date %q: %w", value, ErrParse)
}

// CleanRecords derives a CleanedRecord from every RawRecord, parsing the
// begin date and expanding both damage fields. The year comes straight from
// the parsed time rather than from re-matching its string form. Row order and
// count are preserved; the first bad date aborts with an error naming the row.
func CleanRecords(raws []RawRecord) ([]CleanedRecord, error) {
	cleaned := make([]CleanedRecord, 0, len(raws))
	for i, raw := range raws {
		begin, err := ParseBeginDate(raw.BeginDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cleaned = append(cleaned, CleanedRecord{
			Year:           begin.Year(),
			EventType:      raw.EventType,
			Fatalities:     decimalFromCount(raw.Fatalities),
			Injuries:       decimalFromCount(raw.Injuries),
			PropertyDamage: ExpandDamage(raw.PropDamage, raw.PropDamageExp),
			CropDamage:     ExpandDamage(raw.CropDamage, raw.CropDamageExp),
		})
	}
	return cleaned, nil
}

// FilterSince drops records observed before yearFloor. Records are dropped
// outright, not flagged: years before 1996 use a narrower recording regime
// and mixing regimes biases category comparisons.
func FilterSince(records []CleanedRecord, yearFloor int) []CleanedRecord {
	kept := make([]CleanedRecord, 0, len(records))
	for _, r := range records {
		if r.Year >= yearFloor {
			kept = append(kept, r)
		}
	}
	return kept
}
