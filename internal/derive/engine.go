// Package derive maps the categorical attributes of a startup idea to its
// business parameters. Every rule is a fixed lookup or branch; there is no
// inference and no randomness, so identical inputs always yield identical
// metrics.
package derive

import (
	"strings"

	"startify/internal/domain"
)

// brandRule pairs a keyword set with the brand name it resolves to. Rules are
// evaluated in order and the first match wins; list order is the tie-break.
type brandRule struct {
	keywords []string
	name     string
}

var brandRules = []brandRule{
	{[]string{"health", "medical"}, "MediFlow"},
	{[]string{"education", "learning"}, "EduSpark"},
	{[]string{"finance", "payment"}, "FinTech"},
	{[]string{"rural", "farm"}, "AgriTech"},
	{[]string{"food", "restaurant"}, "FoodFlow"},
}

const defaultBrandName = "InnovateTech"

const billion = 1_000_000_000

// marketSizes holds the fixed industry base figures in USD. Industries
// outside this table fall back to defaultMarketSize.
var marketSizes = map[string]int64{
	"HealthTech": 374 * billion,
	"EdTech":     89 * billion,
	"FinTech":    179 * billion,
	"AgriTech":   47 * billion,
	"RetailTech": 56 * billion,
	"FoodTech":   43 * billion,
	"PropTech":   31 * billion,
	"LegalTech":  27 * billion,
}

const defaultMarketSize = 25 * billion

// Enterprise targets get the higher funding and pricing tier; everything else
// gets the lower one. There is deliberately no graduated scale.
const (
	fundingEnterprise = 5_000_000
	fundingStandard   = 2_500_000

	starterEnterprise      = 299
	starterStandard        = 49
	professionalEnterprise = 999
	professionalStandard   = 199
)

// Derive computes the full metric set for an idea. It is total: every input,
// including unknown industries and empty descriptions, produces defined
// values.
func Derive(idea domain.StartupIdea) domain.DerivedMetrics {
	m := domain.DerivedMetrics{
		BrandName:     BrandName(idea.Description),
		MarketSizeUSD: MarketSize(idea.Industry),
	}
	if strings.Contains(idea.TargetMarket, "Enterprise") {
		m.FundingAmountUSD = fundingEnterprise
		m.StartingPriceUSD = starterEnterprise
		m.ProfessionalPriceUSD = professionalEnterprise
	} else {
		m.FundingAmountUSD = fundingStandard
		m.StartingPriceUSD = starterStandard
		m.ProfessionalPriceUSD = professionalStandard
	}
	return m
}

// BrandName resolves the description against the ordered keyword rules.
func BrandName(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range brandRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.name
			}
		}
	}
	return defaultBrandName
}

// MarketSize returns the base addressable market for an industry in USD.
func MarketSize(industry string) int64 {
	if size, ok := marketSizes[industry]; ok {
		return size
	}
	return defaultMarketSize
}
