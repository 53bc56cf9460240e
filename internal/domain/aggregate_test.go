package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestAggregate_SumsByLabel(t *testing.T) {
	records := []CleanedRecord{
		{EventType: "TORNADO", Fatalities: count(3), Injuries: count(10)},
		{EventType: "HEAT", Fatalities: count(20)},
		{EventType: "TORNADO", Injuries: count(5)},
	}

	ranked := Aggregate(records, MetricHealth)

	require.Len(t, ranked, 2)
	assert.Equal(t, "HEAT", ranked[0].Label)
	assert.Equal(t, "20", ranked[0].Total.String())
	assert.Equal(t, "TORNADO", ranked[1].Label)
	assert.Equal(t, "18", ranked[1].Total.String())
}

func TestAggregate_MetricSelectors(t *testing.T) {
	rec := CleanedRecord{
		EventType:      "FLOOD",
		Fatalities:     count(2),
		Injuries:       count(7),
		PropertyDamage: KnownAmount(count(1000)),
		CropDamage:     AbsentAmount(),
	}

	tests := []struct {
		metric   Metric
		expected string
	}{
		{MetricHealth, "9"},
		{MetricFatalities, "2"},
		{MetricInjuries, "7"},
		{MetricEconomic, "1000"},
		{MetricProperty, "1000"},
		{MetricCrop, "0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			ranked := Aggregate([]CleanedRecord{rec}, tt.metric)
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.expected, ranked[0].Total.String())
		})
	}
}

func TestAggregate_TieBreakIsLexical(t *testing.T) {
	records := []CleanedRecord{
		{EventType: "WILDFIRE", Fatalities: count(5)},
		{EventType: "AVALANCHE", Fatalities: count(5)},
		{EventType: "BLIZZARD", Fatalities: count(5)},
	}

	ranked := Aggregate(records, MetricFatalities)

	require.Len(t, ranked, 3)
	assert.Equal(t, "AVALANCHE", ranked[0].Label)
	assert.Equal(t, "BLIZZARD", ranked[1].Label)
	assert.Equal(t, "WILDFIRE", ranked[2].Label)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := []CleanedRecord{
		{EventType: "HAIL", Injuries: count(1)},
		{EventType: "FLOOD", Injuries: count(2)},
	}

	_ = Aggregate(records, MetricInjuries)
	_ = Aggregate(records, MetricHealth) // re-runnable on the same slice

	assert.Equal(t, "HAIL", records[0].EventType)
	assert.Equal(t, "1", records[0].Injuries.String())
}

func TestTopN(t *testing.T) {
	records := []CleanedRecord{
		{EventType: "TORNADO", Fatalities: count(30)},
		{EventType: "HEAT", Fatalities: count(20)},
		// Tie at the truncation boundary: the lexically earlier label wins.
		{EventType: "LIGHTNING", Fatalities: count(10)},
		{EventType: "FLOOD", Fatalities: count(10)},
	}

	ranked := Aggregate(records, MetricFatalities)

	t.Run("truncates to n", func(t *testing.T) {
		top := TopN(ranked, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "TORNADO", top[0].Label)
		assert.Equal(t, "HEAT", top[1].Label)
		assert.Equal(t, "FLOOD", top[2].Label)
	})

	t.Run("n beyond length returns all", func(t *testing.T) {
		assert.Len(t, TopN(ranked, 10), 4)
	})

	t.Run("negative n returns all", func(t *testing.T) {
		assert.Len(t, TopN(ranked, -1), 4)
	})

	t.Run("zero n returns nothing", func(t *testing.T) {
		assert.Empty(t, TopN(ranked, 0))
	})
}
