// Package content produces the generation result for a submitted idea. Every
// generator is deterministic: rule tables, pattern expansion, and stable
// hashing, so the same idea always yields the same package.
package content

import (
	"strings"

	"startify/internal/domain"
)

// ParsedIdea is the normalized input to the generators.
type ParsedIdea struct {
	Idea     domain.StartupIdea
	Industry string   // lowercase keyword, e.g. "healthcare"
	Audience string   // e.g. "B2B SMB" lowered for templating
	Features []string // salient words pulled from the description
}

// industryKeywords maps the UI industry labels onto the lowercase keywords
// the investor pool and market tables are keyed by.
var industryKeywords = map[string]string{
	"HealthTech":  "healthcare",
	"EdTech":      "education",
	"FinTech":     "fintech",
	"AgriTech":    "agritech",
	"CleanTech":   "cleantech",
	"RetailTech":  "retail",
	"FoodTech":    "food",
	"PropTech":    "proptech",
	"LegalTech":   "legal",
	"HR Tech":     "hr",
	"Gaming":      "gaming",
	"SaaS":        "saas",
	"E-commerce":  "ecommerce",
	"Marketplace": "marketplace",
	"AI/ML":       "technology",
}

var stopWords = map[string]bool{
	"about": true, "after": true, "based": true, "every": true, "from": true,
	"have": true, "into": true, "more": true, "other": true, "that": true,
	"their": true, "there": true, "these": true, "this": true, "using": true,
	"want": true, "which": true, "will": true, "with": true, "would": true,
}

// ParseComposite parses the single-line wire form and normalizes it for the
// generators.
func ParseComposite(ideaText string) ParsedIdea {
	return Normalize(domain.ParseComposite(ideaText))
}

// Normalize derives the generator inputs from a structured idea.
func Normalize(idea domain.StartupIdea) ParsedIdea {
	industry, ok := industryKeywords[idea.Industry]
	if !ok {
		industry = "technology"
	}
	audience := strings.ToLower(strings.TrimSpace(idea.TargetMarket))
	if audience == "" {
		audience = "general public"
	}
	return ParsedIdea{
		Idea:     idea,
		Industry: industry,
		Audience: audience,
		Features: extractFeatures(idea.Description),
	}
}

// extractFeatures pulls up to three salient words out of the description to
// feed the copy templates.
func extractFeatures(description string) []string {
	var features []string
	seen := map[string]bool{}
	for _, word := range strings.Fields(strings.ToLower(description)) {
		word = strings.Trim(word, ".,;:!?()\"'")
		if len(word) <= 4 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		features = append(features, word)
		if len(features) == 3 {
			break
		}
	}
	if len(features) == 0 {
		features = []string{"innovative features"}
	}
	return features
}
