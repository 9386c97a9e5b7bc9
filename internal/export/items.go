package export

import "startify/internal/domain"

// Catalog returns the document offerings in presentation order. The first
// five are free; the last three are premium and gated until an upgrade.
func Catalog() []domain.ExportItem {
	return []domain.ExportItem{
		{
			ID:          domain.DocBusinessPlan,
			Name:        "Business Plan",
			Description: "Complete 25-page business plan with financials",
			Format:      domain.FormatPDF,
		},
		{
			ID:          domain.DocPitchDeck,
			Name:        "Pitch Deck",
			Description: "Investor-ready presentation slides",
			Format:      domain.FormatPPTX,
		},
		{
			ID:          domain.DocFinancialModel,
			Name:        "Financial Model",
			Description: "3-year projections and funding requirements",
			Format:      domain.FormatXLSX,
		},
		{
			ID:          domain.DocBrandPackage,
			Name:        "Brand Package",
			Description: "Brand identity guidelines, names, and slogans",
			Format:      domain.FormatPDF,
		},
		{
			ID:          domain.DocMarketingKit,
			Name:        "Marketing Kit",
			Description: "Ad copy, channel plan, and launch calendar",
			Format:      domain.FormatPDF,
		},
		{
			ID:          domain.DocInvestorData,
			Name:        "Investor Database",
			Description: "Curated investor targets matched to your market",
			Format:      domain.FormatJSON,
			Premium:     true,
		},
		{
			ID:          domain.DocMarketReport,
			Name:        "Market Report",
			Description: "Deep-dive industry and competitor analysis",
			Format:      domain.FormatPDF,
			Premium:     true,
		},
		{
			ID:          domain.DocLegalDocs,
			Name:        "Legal Documents",
			Description: "Formation and operating document templates",
			Format:      domain.FormatPDF,
			Premium:     true,
		},
	}
}
