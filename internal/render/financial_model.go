package render

import "fmt"

func financialModel(p Params) string {
	brand := p.Metrics.BrandName

	body := fmt.Sprintf(`    <h1>%s Financial Model</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">3-Year Financial Projections &amp; Analysis</p>

    <div class="section">
        <h2>Revenue Projections</h2>
%s
    </div>

    <div class="section">
        <h2>Operating Expenses</h2>
%s
    </div>

    <div class="section">
        <h2>Profitability Analysis</h2>
%s
    </div>

    <div class="section">
        <h2>Cash Flow Projections</h2>
%s
    </div>

    <div class="section">
        <h2>Key Performance Indicators</h2>
%s
    </div>

    <div class="section">
        <h2>Funding Requirements</h2>
        <div class="highlight">
            <p><strong>Series A Funding Needed:</strong> %s</p>
%s
        </div>
    </div>`,
		brand,
		revenueTable,
		expenseTable,
		profitTable,
		cashFlowTable,
		kpiTable,
		usd(p.Metrics.FundingAmountUSD), fundingAllocation(p.Metrics.FundingAmountUSD))

	return htmlPage(brand+" - Financial Model", baseStyle, body)
}
