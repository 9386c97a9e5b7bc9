package render

import "fmt"

// The 3-year projection tables are fixed illustrative constants reused by
// every document that shows financials. They deliberately do not scale with
// the derived metrics; the document set is illustrative, not a financial
// model.

const revenueTable = `    <table>
        <tr><th>Revenue Stream</th><th>Year 1</th><th>Year 2</th><th>Year 3</th></tr>
        <tr><td>Subscription Revenue</td><td>$350,000</td><td>$1,750,000</td><td>$7,000,000</td></tr>
        <tr><td>Professional Services</td><td>$100,000</td><td>$500,000</td><td>$2,000,000</td></tr>
        <tr><td>Partnership Revenue</td><td>$50,000</td><td>$250,000</td><td>$1,000,000</td></tr>
        <tr class="total-row"><td>Total Revenue</td><td>$500,000</td><td>$2,500,000</td><td>$10,000,000</td></tr>
    </table>`

const expenseTable = `    <table>
        <tr><th>Expense Category</th><th>Year 1</th><th>Year 2</th><th>Year 3</th></tr>
        <tr><td>Cost of Goods Sold</td><td>$100,000</td><td>$500,000</td><td>$2,000,000</td></tr>
        <tr><td>Sales &amp; Marketing</td><td>$200,000</td><td>$800,000</td><td>$2,500,000</td></tr>
        <tr><td>Research &amp; Development</td><td>$150,000</td><td>$400,000</td><td>$1,500,000</td></tr>
        <tr><td>General &amp; Administrative</td><td>$100,000</td><td>$300,000</td><td>$1,000,000</td></tr>
        <tr class="total-row"><td>Total Operating Expenses</td><td>$550,000</td><td>$2,000,000</td><td>$7,000,000</td></tr>
    </table>`

const profitTable = `    <table>
        <tr><th>Metric</th><th>Year 1</th><th>Year 2</th><th>Year 3</th></tr>
        <tr><td>Revenue</td><td>$500,000</td><td>$2,500,000</td><td>$10,000,000</td></tr>
        <tr><td>Gross Profit</td><td>$400,000</td><td>$2,000,000</td><td>$8,000,000</td></tr>
        <tr><td>Gross Margin</td><td>80%</td><td>80%</td><td>80%</td></tr>
        <tr><td>Net Income</td><td>($50,000)</td><td>$500,000</td><td>$3,000,000</td></tr>
        <tr><td>Net Profit Margin</td><td>-10%</td><td>20%</td><td>30%</td></tr>
    </table>`

const cashFlowTable = `    <table>
        <tr><th>Cash Flow Item</th><th>Year 1</th><th>Year 2</th><th>Year 3</th></tr>
        <tr><td>Operating Cash Flow</td><td>$25,000</td><td>$750,000</td><td>$3,500,000</td></tr>
        <tr><td>Investing Cash Flow</td><td>($100,000)</td><td>($200,000)</td><td>($500,000)</td></tr>
        <tr><td>Financing Cash Flow</td><td>$2,500,000</td><td>$0</td><td>$0</td></tr>
        <tr class="total-row"><td>Net Cash Flow</td><td>$2,425,000</td><td>$550,000</td><td>$3,000,000</td></tr>
    </table>`

const kpiTable = `    <table>
        <tr><th>KPI</th><th>Year 1</th><th>Year 2</th><th>Year 3</th></tr>
        <tr><td>Monthly Recurring Revenue</td><td>$29,167</td><td>$145,833</td><td>$583,333</td></tr>
        <tr><td>Customer Acquisition Cost</td><td>$2,000</td><td>$1,600</td><td>$1,250</td></tr>
        <tr><td>Customer Lifetime Value</td><td>$12,000</td><td>$15,000</td><td>$20,000</td></tr>
        <tr><td>Churn Rate (Monthly)</td><td>5%</td><td>3%</td><td>2%</td></tr>
        <tr><td>Gross Revenue Retention</td><td>95%</td><td>97%</td><td>98%</td></tr>
    </table>`

// marketTable is the one table that does vary: TAM with the fixed SAM/SOM
// fractions of the derived base figure. Growth rates stay constant.
func marketTable(p Params) string {
	return fmt.Sprintf(`    <table>
        <tr><th>Market Segment</th><th>Size</th><th>Growth Rate</th></tr>
        <tr><td>Total Addressable Market (TAM)</td><td>%s</td><td>23.5%%</td></tr>
        <tr><td>Serviceable Addressable Market (SAM)</td><td>%s</td><td>28.2%%</td></tr>
        <tr><td>Serviceable Obtainable Market (SOM)</td><td>%s</td><td>35.8%%</td></tr>
    </table>`,
		usd(p.Metrics.MarketSizeUSD), usd(p.Metrics.SAMUSD()), usd(p.Metrics.SOMUSD()))
}

// fundingAllocation splits the derived round across the fixed 40/35/15/10
// plan.
func fundingAllocation(fundingUSD int64) string {
	return fmt.Sprintf(`    <table>
        <tr><th>Use of Funds</th><th>Amount</th><th>Percentage</th></tr>
        <tr><td>Product Development</td><td>%s</td><td>40%%</td></tr>
        <tr><td>Sales &amp; Marketing</td><td>%s</td><td>35%%</td></tr>
        <tr><td>Team Expansion</td><td>%s</td><td>15%%</td></tr>
        <tr><td>Operations</td><td>%s</td><td>10%%</td></tr>
    </table>`,
		usdExact(fundingUSD*40/100),
		usdExact(fundingUSD*35/100),
		usdExact(fundingUSD*15/100),
		usdExact(fundingUSD*10/100))
}

// pricingTable interpolates the two derived tiers; the enterprise row is
// always custom.
func pricingTable(p Params) string {
	return fmt.Sprintf(`    <table>
        <tr><th>Plan</th><th>Price</th><th>Features</th><th>Target Customer</th></tr>
        <tr><td>Starter</td><td>$%d/month</td><td>Basic AI features, 1000 API calls</td><td>Small businesses</td></tr>
        <tr><td>Professional</td><td>$%d/month</td><td>Advanced features, unlimited calls</td><td>Growing companies</td></tr>
        <tr><td>Enterprise</td><td>Custom pricing</td><td>Full platform, custom integrations</td><td>Large organizations</td></tr>
    </table>`,
		p.Metrics.StartingPriceUSD, p.Metrics.ProfessionalPriceUSD)
}
