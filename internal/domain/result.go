package domain

// InvestorRecord is one curated investor match returned by the Job Service.
// All records are illustrative, not real contact data.
type InvestorRecord struct {
	Name        string   `json:"name"`
	Firm        string   `json:"firm"`
	Focus       []string `json:"focus"`
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Portfolio   []string `json:"portfolio"`
}

// MarketInsights summarizes the research stage's top-line findings. Field
// names follow the wire contract of the results endpoint.
type MarketInsights struct {
	MarketSize  string `json:"marketSize"`
	Growth      string `json:"growth"`
	Competition string `json:"competition"`
	Timeline    string `json:"timeline"`
	Funding     string `json:"funding"`
}

// GenerationResult is the full payload produced by a completed job. It is
// cached verbatim in the single latest-results slot and replaced, never
// merged, when a newer job completes.
type GenerationResult struct {
	BrandNames     []string         `json:"brand_names"`
	Slogans        []string         `json:"slogans"`
	AdCopies       []string         `json:"ad_copies"`
	Investors      []InvestorRecord `json:"investors"`
	MarketInsights MarketInsights   `json:"market_insights"`
}
