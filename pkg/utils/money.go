package utils

// Monetary amounts are stored as int64 minor units (e.g. 37950 = 379.50).
// Percentage shares are expressed in basis points so the math stays integral.

const (
	PlatformFeeBps = 1000 // 10%
	TaxBps         = 1500 // 15%
)

// PercentMinor returns rateBps/10000 of amountMinor, rounded half up.
func PercentMinor(amountMinor int64, rateBps int64) int64 {
	return (amountMinor*rateBps + 5000) / 10000
}
