package render

import "fmt"

func marketReport(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")

	growth := "23.5% CAGR"
	competition := "Medium"
	timeline := "TBD"
	funding := usd(p.Metrics.FundingAmountUSD)
	if p.Result != nil {
		mi := p.Result.MarketInsights
		if mi.Growth != "" {
			growth = mi.Growth
		}
		if mi.Competition != "" {
			competition = mi.Competition
		}
		if mi.Timeline != "" {
			timeline = mi.Timeline
		}
		if mi.Funding != "" {
			funding = mi.Funding
		}
	}

	body := fmt.Sprintf(`    <h1>%s Market Report</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">%s Industry Analysis</p>

    <div class="section">
        <h2>Market Snapshot</h2>
        <div class="highlight">
            <p><strong>Total Market Size:</strong> %s</p>
            <p><strong>Growth Rate:</strong> %s</p>
            <p><strong>Competitive Intensity:</strong> %s</p>
            <p><strong>Time to Market:</strong> %s</p>
            <p><strong>Typical Funding Need:</strong> %s</p>
        </div>
    </div>

    <div class="section">
        <h2>Market Sizing</h2>
%s
    </div>

    <div class="section">
        <h2>Competitive Landscape</h2>
        <table>
            <tr><th>Segment</th><th>Incumbent Approach</th><th>Our Advantage</th></tr>
            <tr><td>Enterprise Suites</td><td>Broad but slow, heavy implementation</td><td>Fast deployment, focused scope</td></tr>
            <tr><td>Point Solutions</td><td>Narrow, poor integration</td><td>Connected workflow end to end</td></tr>
            <tr><td>In-house Builds</td><td>Costly to maintain</td><td>Lower total cost, continuous updates</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Market Drivers</h2>
        <ul>
            <li>Accelerating digital adoption across the %s sector</li>
            <li>Rising customer expectations for automation and self-service</li>
            <li>Regulatory pressure pushing incumbents to modernize</li>
        </ul>
    </div>

    <div class="section">
        <h2>Risks</h2>
        <ul>
            <li>Well-funded incumbents may replicate core features</li>
            <li>Sales cycles lengthen in budget-constrained periods</li>
            <li>Data and compliance requirements vary by region</li>
        </ul>
    </div>`,
		brand, industry,
		usd(p.Metrics.MarketSizeUSD), growth, competition, timeline, funding,
		marketTable(p),
		industry)

	return htmlPage(brand+" - Market Report", baseStyle, body)
}
