package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote_Breakdown(t *testing.T) {
	start := date(2026, time.March, 10)
	end := date(2026, time.March, 13)

	quote := ComputeQuote(10000, start, end)

	assert.Equal(t, int64(3), quote.Days)
	assert.Equal(t, int64(30000), quote.CarPriceMinor)
	assert.Equal(t, int64(3000), quote.PlatformFeeMinor)
	assert.Equal(t, int64(33000), quote.BaseTotalMinor)
	assert.Equal(t, int64(4950), quote.TaxMinor)
	assert.Equal(t, int64(37950), quote.TotalPriceMinor)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	start := date(2026, time.June, 1)
	end := date(2026, time.June, 8)

	first := ComputeQuote(12345, start, end)
	second := ComputeQuote(12345, start, end)

	assert.Equal(t, first, second)
}

func TestComputeQuote_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 11, 15, 0, 0, 0, time.UTC)

	quote := ComputeQuote(10000, start, end)

	assert.Equal(t, int64(2), quote.Days)
	assert.Equal(t, int64(20000), quote.CarPriceMinor)
}

func TestComputeQuote_HalfUpRounding(t *testing.T) {
	start := date(2026, time.March, 10)
	end := date(2026, time.March, 11)

	// 1 day at 5 minor units: fee = 10% of 5 = 0.5, rounds up to 1.
	quote := ComputeQuote(5, start, end)

	assert.Equal(t, int64(1), quote.PlatformFeeMinor)
	assert.Equal(t, int64(6), quote.BaseTotalMinor)
	// Tax = 15% of 6 = 0.9, rounds to 1.
	assert.Equal(t, int64(1), quote.TaxMinor)
	assert.Equal(t, int64(7), quote.TotalPriceMinor)
}

func TestComputeQuote_NoRangeYieldsZeroQuote(t *testing.T) {
	day := date(2026, time.March, 10)

	assert.Equal(t, Quote{}, ComputeQuote(10000, time.Time{}, day))
	assert.Equal(t, Quote{}, ComputeQuote(10000, day, time.Time{}))
	assert.Equal(t, Quote{}, ComputeQuote(10000, day, day))
	assert.Equal(t, Quote{}, ComputeQuote(10000, day.AddDate(0, 0, 2), day))
}

func TestOverlapsRange(t *testing.T) {
	reqStart := date(2026, time.March, 10)
	reqEnd := date(2026, time.March, 15)

	cases := []struct {
		name          string
		existingStart time.Time
		existingEnd   time.Time
		want          bool
	}{
		{"fully inside", date(2026, time.March, 11), date(2026, time.March, 13), true},
		{"covers request", date(2026, time.March, 1), date(2026, time.March, 31), true},
		{"shared start boundary", date(2026, time.March, 15), date(2026, time.March, 20), true},
		{"shared end boundary", date(2026, time.March, 5), date(2026, time.March, 10), true},
		{"ends before", date(2026, time.March, 1), date(2026, time.March, 9), false},
		{"starts after", date(2026, time.March, 16), date(2026, time.March, 20), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OverlapsRange(tc.existingStart, tc.existingEnd, reqStart, reqEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}
