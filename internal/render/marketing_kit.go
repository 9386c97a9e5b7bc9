package render

import (
	"fmt"
	"strings"
)

func marketingKit(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")
	target := p.Idea.TargetMarket
	if target == "" {
		target = "modern teams"
	}

	adCopies := `            <li>"Discover the smarter way to work. Try it free today."</li>
            <li>"Built for teams that refuse to settle. See it in action."</li>
            <li>"Your competitors are already moving. Are you?"</li>
`
	if p.Result != nil && len(p.Result.AdCopies) > 0 {
		var items strings.Builder
		for _, c := range p.Result.AdCopies {
			fmt.Fprintf(&items, "            <li>\"%s\"</li>\n", c)
		}
		adCopies = items.String()
	}

	body := fmt.Sprintf(`    <h1>%s Marketing Kit</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">Campaign Assets &amp; Go-to-Market Playbook</p>

    <div class="section">
        <h2>Positioning Statement</h2>
        <div class="highlight">
            <p>%s is the %s platform for %s, delivering measurable results without the complexity of legacy tools.</p>
        </div>
    </div>

    <div class="section">
        <h2>Ad Copy Library</h2>
        <ul>
%s        </ul>
    </div>

    <div class="section">
        <h2>Channel Strategy</h2>
        <table>
            <tr><th>Channel</th><th>Objective</th><th>Budget Share</th></tr>
            <tr><td>Content &amp; SEO</td><td>Inbound demand, authority</td><td>30%%</td></tr>
            <tr><td>Paid Search</td><td>High-intent capture</td><td>25%%</td></tr>
            <tr><td>Social Media</td><td>Awareness, community</td><td>20%%</td></tr>
            <tr><td>Email Nurture</td><td>Conversion, retention</td><td>15%%</td></tr>
            <tr><td>Events &amp; Partnerships</td><td>Enterprise pipeline</td><td>10%%</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Launch Calendar</h2>
        <table>
            <tr><th>Phase</th><th>Window</th><th>Focus</th></tr>
            <tr><td>Pre-launch</td><td>Weeks 1-4</td><td>Waitlist, teaser content, early access partners</td></tr>
            <tr><td>Launch</td><td>Weeks 5-6</td><td>Press outreach, paid burst, founder story</td></tr>
            <tr><td>Post-launch</td><td>Weeks 7-12</td><td>Case studies, referral program, retargeting</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Key Messages</h2>
        <ul>
            <li>Lead with the outcome, not the feature list</li>
            <li>Quantify savings wherever a customer number exists</li>
            <li>Every asset carries one call to action, never two</li>
        </ul>
    </div>`,
		brand, brand, industry, target, adCopies)

	return htmlPage(brand+" - Marketing Kit", baseStyle, body)
}
