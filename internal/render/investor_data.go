package render

import (
	"fmt"
	"strings"
)

func investorData(p Params) string {
	brand := p.Metrics.BrandName

	var rows strings.Builder
	if p.Result != nil {
		for _, inv := range p.Result.Investors {
			fmt.Fprintf(&rows, `        <tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`, inv.Name, inv.Firm, strings.Join(inv.Focus, ", "), inv.Stage, inv.Description)
		}
	}
	if rows.Len() == 0 {
		rows.WriteString(`        <tr><td colspan="5" style="text-align: center; color: #7f8c8d;">Investor research pending</td></tr>
`)
	}

	body := fmt.Sprintf(`    <h1>%s Investor Database</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">Curated Investor Targets &amp; Outreach Notes</p>

    <div class="section">
        <h2>Raise Summary</h2>
        <div class="highlight">
            <p><strong>Target Round:</strong> %s Series A</p>
            <p><strong>Primary Use of Funds:</strong> Product development and go-to-market expansion</p>
        </div>
    </div>

    <div class="section">
        <h2>Matched Investors</h2>
        <table>
            <tr><th>Name</th><th>Firm</th><th>Focus</th><th>Stage</th><th>Notes</th></tr>
%s        </table>
    </div>

    <div class="section">
        <h2>Outreach Sequence</h2>
        <ul>
            <li>Warm introduction through portfolio founders where available</li>
            <li>One-page summary first, full deck only on request</li>
            <li>Follow up once after five business days, then park the thread</li>
        </ul>
    </div>`,
		brand, usd(p.Metrics.FundingAmountUSD), rows.String())

	return htmlPage(brand+" - Investor Database", baseStyle, body)
}
