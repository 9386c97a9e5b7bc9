package render

import "fmt"

// genericDocument is the fallback for document types without a dedicated
// renderer. It still produces a complete page so an unknown tag never yields
// an empty download.
func genericDocument(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")

	body := fmt.Sprintf(`    <h1>%s</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">Prepared for the %s market</p>

    <div class="section">
        <h2>Overview</h2>
        <div class="highlight">
            <p>%s</p>
        </div>
    </div>

    <div class="section">
        <h2>Key Figures</h2>
        <table>
            <tr><th>Metric</th><th>Value</th></tr>
            <tr><td>Market Size</td><td>%s</td></tr>
            <tr><td>Funding Target</td><td>%s</td></tr>
            <tr><td>Starter Price</td><td>$%d/month</td></tr>
            <tr><td>Professional Price</td><td>$%d/month</td></tr>
        </table>
    </div>`,
		brand, industry,
		p.Idea.Description,
		usd(p.Metrics.MarketSizeUSD), usd(p.Metrics.FundingAmountUSD),
		p.Metrics.StartingPriceUSD, p.Metrics.ProfessionalPriceUSD)

	return htmlPage(brand, baseStyle, body)
}
