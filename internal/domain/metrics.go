package domain

// DerivedMetrics are the business parameters derived from a StartupIdea by
// the rule engine. They are computed on demand and never persisted; the same
// idea attributes always produce the same metrics.
type DerivedMetrics struct {
	BrandName            string
	MarketSizeUSD        int64
	FundingAmountUSD     int64
	StartingPriceUSD     int64
	ProfessionalPriceUSD int64
}

// SAMUSD returns the serviceable addressable market, a fixed 40% slice of the
// base figure.
func (m DerivedMetrics) SAMUSD() int64 {
	return m.MarketSizeUSD * 40 / 100
}

// SOMUSD returns the serviceable obtainable market, a fixed 10% slice.
func (m DerivedMetrics) SOMUSD() int64 {
	return m.MarketSizeUSD * 10 / 100
}
