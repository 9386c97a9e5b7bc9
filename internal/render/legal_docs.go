package render

import (
	"fmt"
	"time"
)

func legalDocs(p Params) string {
	brand := p.Metrics.BrandName
	year := time.Now().Year()

	body := fmt.Sprintf(`    <h1>%s Legal Document Templates</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">Formation &amp; Operating Templates</p>

    <div class="highlight">
        <p><strong>Notice:</strong> These templates are starting points, not legal advice. Have qualified counsel review every document before execution.</p>
    </div>

    <div class="section">
        <h2>Included Templates</h2>
        <table>
            <tr><th>Document</th><th>Purpose</th><th>When Needed</th></tr>
            <tr><td>Certificate of Incorporation</td><td>Forms the legal entity</td><td>Before first contract or hire</td></tr>
            <tr><td>Founder Agreement</td><td>Equity split, vesting, IP assignment</td><td>At formation</td></tr>
            <tr><td>Employee Offer Letter</td><td>Standard employment terms</td><td>First hire</td></tr>
            <tr><td>Mutual NDA</td><td>Protects confidential discussions</td><td>Partner and vendor talks</td></tr>
            <tr><td>Terms of Service</td><td>Customer usage terms</td><td>Product launch</td></tr>
            <tr><td>Privacy Policy</td><td>Data handling disclosure</td><td>Product launch</td></tr>
            <tr><td>SAFE Agreement</td><td>Early fundraising instrument</td><td>Pre-seed and seed rounds</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Founder Agreement Highlights</h2>
        <ul>
            <li>Four-year vesting with a one-year cliff for all founders</li>
            <li>All work product assigned to the company at formation</li>
            <li>Board approval required for founder share transfers</li>
        </ul>
    </div>

    <div class="section">
        <h2>Compliance Checklist</h2>
        <ul>
            <li>Register the entity and obtain a tax identification number</li>
            <li>Open a dedicated company bank account before any revenue</li>
            <li>File 83(b) elections within 30 days of stock grants</li>
            <li>Keep a cap table current from the first issuance</li>
        </ul>
    </div>

    <p style="text-align: center; color: #7f8c8d; margin-top: 50px;">&copy; %d %s. Template set for internal use.</p>`,
		brand, year, brand)

	return htmlPage(brand+" - Legal Documents", baseStyle, body)
}
