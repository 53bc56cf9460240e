package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-impact-analysis/internal/domain"
)

// RequiredColumns is the fixed contract with the Storm Events schema: the
// eight columns the impact analysis depends on, in projection order.
var RequiredColumns = []string{
	"BGN_DATE",
	"EVTYPE",
	"FATALITIES",
	"INJURIES",
	"PROPDMG",
	"PROPDMGEXP",
	"CROPDMG",
	"CROPDMGEXP",
}

// SelectImpactFields projects a Frame down to the analysis columns, typing
// the numeric ones. It fails fast with domain.ErrSchema before touching any
// row if a required column is absent, and with domain.ErrParse naming the row
// and column on an unparseable numeric cell. Row order and count are
// preserved.
func SelectImpactFields(f *Frame) ([]domain.RawRecord, error) {
	cols := make(map[string]int, len(RequiredColumns))
	for _, name := range RequiredColumns {
		i, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("required column %s: %w", name, domain.ErrSchema)
		}
		cols[name] = i
	}

	records := make([]domain.RawRecord, 0, f.Len())
	for i, row := range f.Rows {
		rec := domain.RawRecord{
			BeginDate:     row[cols["BGN_DATE"]],
			EventType:     row[cols["EVTYPE"]],
			PropDamageExp: strings.TrimSpace(row[cols["PROPDMGEXP"]]),
			CropDamageExp: strings.TrimSpace(row[cols["CROPDMGEXP"]]),
		}

		var err error
		if rec.Fatalities, err = parseNumber(row[cols["FATALITIES"]]); err != nil {
			return nil, numberError(i, "FATALITIES", err)
		}
		if rec.Injuries, err = parseNumber(row[cols["INJURIES"]]); err != nil {
			return nil, numberError(i, "INJURIES", err)
		}
		if rec.PropDamage, err = parseNumber(row[cols["PROPDMG"]]); err != nil {
			return nil, numberError(i, "PROPDMG", err)
		}
		if rec.CropDamage, err = parseNumber(row[cols["CROPDMG"]]); err != nil {
			return nil, numberError(i, "CROPDMG", err)
		}

		records = append(records, rec)
	}
	return records, nil
}

// parseNumber parses a numeric cell. An empty cell counts as zero; anything
// else must be a valid number.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func numberError(row int, column string, err error) error {
	return fmt.Errorf("row %d column %s: %w: %v", row+1, column, domain.ErrParse, err)
}
