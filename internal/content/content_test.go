package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startify/internal/domain"
)

func healthIdea() domain.StartupIdea {
	return domain.StartupIdea{
		Description:    "AI-powered health monitoring for rural clinics",
		Industry:       "HealthTech",
		TargetMarket:   "B2B SMB",
		FounderPersona: "Solo Technical Founder",
	}
}

func TestNormalizeMapsIndustryKeyword(t *testing.T) {
	p := Normalize(healthIdea())
	assert.Equal(t, "healthcare", p.Industry)
	assert.Equal(t, "b2b smb", p.Audience)
	assert.NotEmpty(t, p.Features)

	unknown := Normalize(domain.StartupIdea{Description: "something", Industry: "Other"})
	assert.Equal(t, "technology", unknown.Industry)
	assert.Equal(t, "general public", unknown.Audience)
}

func TestParseCompositeRoundTrip(t *testing.T) {
	idea := healthIdea()
	p := ParseComposite(idea.Composite())
	assert.Equal(t, idea.Description, p.Idea.Description)
	assert.Equal(t, idea.Industry, p.Idea.Industry)
	assert.Equal(t, idea.TargetMarket, p.Idea.TargetMarket)
	assert.Equal(t, idea.FounderPersona, p.Idea.FounderPersona)
}

func TestExtractFeaturesSkipsShortAndStopWords(t *testing.T) {
	features := extractFeatures("An app that will help every small business with invoicing")
	assert.NotContains(t, features, "that")
	assert.NotContains(t, features, "will")
	assert.NotContains(t, features, "app")
	assert.LessOrEqual(t, len(features), 3)

	assert.Equal(t, []string{"innovative features"}, extractFeatures(""))
}

func TestBrandNamesAreUniqueAndBounded(t *testing.T) {
	names := BrandNames(Normalize(healthIdea()))
	require.NotEmpty(t, names)
	assert.LessOrEqual(t, len(names), 10)
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %s", n)
		seen[n] = true
	}
	assert.Contains(t, names, "Healthcarely")
}

func TestSlogansAndAdCopiesCounts(t *testing.T) {
	p := Normalize(healthIdea())
	assert.Len(t, Slogans(p), 5)
	assert.Len(t, AdCopies(p), 5)
}

func TestInsightsDeterministicPerIndustry(t *testing.T) {
	p := Normalize(healthIdea())
	first := Insights(p)
	second := Insights(p)
	assert.Equal(t, first, second)
	assert.Equal(t, "$374B", first.MarketSize)
	assert.Contains(t, []string{"Low", "Medium", "High"}, first.Competition)
	assert.Equal(t, fundingBands[first.Competition], first.Funding)
	assert.Equal(t, "6-12 months", first.Timeline)

	other := Insights(Normalize(domain.StartupIdea{Description: "x", Industry: "Other"}))
	assert.Equal(t, "$25B", other.MarketSize)
}

func TestMatchInvestorsPrefersIndustryFocus(t *testing.T) {
	investors := MatchInvestors(Normalize(healthIdea()))
	require.Len(t, investors, 5)

	// Healthcare-focused investors outrank generalists.
	assert.Equal(t, "Sarah Chen", investors[0].Name)
	assert.Equal(t, "David Park", investors[1].Name)
	assert.Equal(t, "Alex Kumar", investors[2].Name, "generalist comes after direct matches")
}

func TestMatchInvestorsFinTech(t *testing.T) {
	investors := MatchInvestors(Normalize(domain.StartupIdea{
		Description: "payments for freelancers", Industry: "FinTech",
	}))
	require.Len(t, investors, 5)
	assert.Equal(t, "Michael Rodriguez", investors[0].Name)
	assert.Equal(t, "Tom Anderson", investors[1].Name)
}

func TestGenerateProducesFullResult(t *testing.T) {
	result := Generate(healthIdea())
	assert.NotEmpty(t, result.BrandNames)
	assert.Len(t, result.Slogans, 5)
	assert.Len(t, result.AdCopies, 5)
	assert.Len(t, result.Investors, 5)
	assert.Equal(t, "$374B", result.MarketInsights.MarketSize)

	again := Generate(healthIdea())
	assert.Equal(t, result, again)
}
