package services

import (
	"time"

	"carlink/pkg/utils"
)

// Quote is the monetary breakdown for renting one car over a date range.
// Amounts are minor units of the car's currency.
type Quote struct {
	Days             int64
	CarPriceMinor    int64
	PlatformFeeMinor int64
	BaseTotalMinor   int64
	TaxMinor         int64
	TotalPriceMinor  int64
}

// ComputeQuote derives the full pricing breakdown for a rental. It is pure:
// the same inputs always give the same quote, and it is the single source of
// pricing everywhere a price is shown or charged.
//
// A missing or inverted range yields the zero quote (days 0, every amount 0).
// That is the "no quote" sentinel, not an error.
func ComputeQuote(dailyRateMinor int64, start, end time.Time) Quote {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Quote{}
	}

	days := int64(end.Sub(start) / (24 * time.Hour))
	if end.Sub(start)%(24*time.Hour) != 0 {
		days++
	}

	carPrice := dailyRateMinor * days
	platformFee := utils.PercentMinor(carPrice, utils.PlatformFeeBps)
	baseTotal := carPrice + platformFee
	tax := utils.PercentMinor(baseTotal, utils.TaxBps)

	return Quote{
		Days:             days,
		CarPriceMinor:    carPrice,
		PlatformFeeMinor: platformFee,
		BaseTotalMinor:   baseTotal,
		TaxMinor:         tax,
		TotalPriceMinor:  baseTotal + tax,
	}
}

// OverlapsRange is the availability predicate: an existing booking blocks a
// requested range when existingStart <= reqEnd AND existingEnd >= reqStart.
func OverlapsRange(existingStart, existingEnd, reqStart, reqEnd time.Time) bool {
	return !existingStart.After(reqEnd) && !existingEnd.Before(reqStart)
}
