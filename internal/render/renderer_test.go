package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startify/internal/derive"
	"startify/internal/domain"
)

func testParams() Params {
	idea := domain.StartupIdea{
		Description:    "AI-powered health monitoring for clinics",
		Industry:       "HealthTech",
		TargetMarket:   "B2B SMB",
		FounderPersona: "Solo Technical Founder",
	}
	return Params{
		Idea:    idea,
		Metrics: derive.Derive(idea),
	}
}

func TestRenderAllKnownTypes(t *testing.T) {
	r := NewRegistry()
	p := testParams()

	for _, dt := range []domain.DocumentType{
		domain.DocBusinessPlan,
		domain.DocPitchDeck,
		domain.DocFinancialModel,
		domain.DocBrandPackage,
		domain.DocMarketingKit,
		domain.DocInvestorData,
		domain.DocMarketReport,
		domain.DocLegalDocs,
	} {
		doc := r.Render(dt, p)
		require.True(t, r.Known(dt), "missing renderer for %s", dt)
		assert.Equal(t, dt, doc.Type)
		assert.Equal(t, "text/html", doc.MIME)
		assert.Contains(t, string(doc.Content), "<!DOCTYPE html>", "%s is not a full page", dt)
		assert.Contains(t, string(doc.Content), "MediFlow", "%s lost the brand name", dt)
	}
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	r := NewRegistry()
	p := testParams()

	doc := r.Render(domain.DocumentType("competitor-teardown"), p)
	assert.False(t, r.Known("competitor-teardown"))
	assert.Equal(t, domain.DocumentType("competitor-teardown"), doc.Type)
	assert.Contains(t, string(doc.Content), "MediFlow")
	assert.NotEmpty(t, doc.Filename)
}

func TestFilenamePattern(t *testing.T) {
	assert.Equal(t, "business-plan_HealthTech.html",
		Filename(domain.DocBusinessPlan, "HealthTech"))
	assert.Equal(t, "pitch-deck_startup.html",
		Filename(domain.DocPitchDeck, ""))
	assert.Equal(t, "market-report_HR-Tech.html",
		Filename(domain.DocMarketReport, "HR Tech"))
	assert.Equal(t, "market-report_AI-ML.html",
		Filename(domain.DocMarketReport, "AI/ML"))
}

func TestMarketReportUsesInsightsWhenPresent(t *testing.T) {
	r := NewRegistry()
	p := testParams()
	p.Result = &domain.GenerationResult{
		MarketInsights: domain.MarketInsights{
			MarketSize:  "$374B",
			Growth:      "18.3% CAGR",
			Competition: "High",
			Timeline:    "6-9 months to MVP",
			Funding:     "$2M - $5M seed round",
		},
	}

	doc := r.Render(domain.DocMarketReport, p)
	html := string(doc.Content)
	assert.Contains(t, html, "18.3% CAGR")
	assert.Contains(t, html, "High")
	assert.Contains(t, html, "6-9 months to MVP")
}

func TestMarketReportDefaultsWithoutResult(t *testing.T) {
	r := NewRegistry()
	doc := r.Render(domain.DocMarketReport, testParams())
	html := string(doc.Content)
	assert.Contains(t, html, "Medium")
	assert.Contains(t, html, "TBD")
}

func TestInvestorDataWithAndWithoutInvestors(t *testing.T) {
	r := NewRegistry()
	p := testParams()

	empty := string(r.Render(domain.DocInvestorData, p).Content)
	assert.Contains(t, empty, "Investor research pending")

	p.Result = &domain.GenerationResult{
		Investors: []domain.InvestorRecord{
			{Name: "Sarah Chen", Firm: "HealthTech Ventures", Focus: []string{"Digital Health"}, Stage: "Series A", Description: "Leads clinical AI deals"},
		},
	}
	filled := string(r.Render(domain.DocInvestorData, p).Content)
	assert.Contains(t, filled, "Sarah Chen")
	assert.Contains(t, filled, "HealthTech Ventures")
	assert.NotContains(t, filled, "Investor research pending")
}

func TestBrandPackageListsGeneratedNames(t *testing.T) {
	r := NewRegistry()
	p := testParams()
	p.Result = &domain.GenerationResult{
		BrandNames: []string{"MediFlow", "VitalSync", "CareGrid"},
		Slogans:    []string{"Care without the chaos"},
	}

	html := string(r.Render(domain.DocBrandPackage, p).Content)
	assert.Contains(t, html, "VitalSync")
	assert.Contains(t, html, "Care without the chaos")
}

func TestFinancialTablesInterpolateFunding(t *testing.T) {
	r := NewRegistry()
	p := testParams()

	html := string(r.Render(domain.DocFinancialModel, p).Content)
	// 2.5M round split 40/35/15/10.
	assert.Contains(t, html, "$1,000,000")
	assert.Contains(t, html, "$875,000")
	assert.Contains(t, html, "$375,000")
	assert.Contains(t, html, "$250,000")
}

func TestUSDFormatting(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{374_000_000_000, "$374B"},
		{2_500_000, "$2.5M"},
		{5_000_000, "$5M"},
		{299, "$299"},
		{49, "$49"},
	}
	for _, c := range cases {
		if got := usd(c.in); got != c.want {
			t.Fatalf("usd(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDocTitle(t *testing.T) {
	assert.Equal(t, "Business Plan", docTitle(domain.DocBusinessPlan))
	assert.Equal(t, "Legal Docs", docTitle(domain.DocLegalDocs))
}

func TestRenderedPagesAreSelfContained(t *testing.T) {
	r := NewRegistry()
	doc := r.Render(domain.DocBusinessPlan, testParams())
	html := string(doc.Content)
	assert.True(t, strings.Contains(html, "<style>") || strings.Contains(html, "<style ")) // no external assets
	assert.NotContains(t, html, "href=\"http")
	assert.NotContains(t, html, "src=\"http")
}
