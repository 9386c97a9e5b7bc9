package content

import "startify/internal/domain"

// Generate assembles the full result for a structured idea.
func Generate(idea domain.StartupIdea) *domain.GenerationResult {
	p := Normalize(idea)
	return &domain.GenerationResult{
		BrandNames:     BrandNames(p),
		Slogans:        Slogans(p),
		AdCopies:       AdCopies(p),
		Investors:      MatchInvestors(p),
		MarketInsights: Insights(p),
	}
}

// GenerateFromComposite assembles the result for the single-line wire form.
func GenerateFromComposite(ideaText string) *domain.GenerationResult {
	return Generate(domain.ParseComposite(ideaText))
}
