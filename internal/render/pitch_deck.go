package render

import (
	"fmt"
	"time"
)

const pitchDeckStyle = baseStyle + `
        .slide { page-break-after: always; padding: 40px; min-height: 600px; }
        .slide:last-child { page-break-after: avoid; }
        .subtitle { font-size: 1.8rem; color: #7f8c8d; text-align: center; margin: 20px 0; }
        .metric { background: #f8f9fa; padding: 25px; border-radius: 15px; margin: 20px; text-align: center; display: inline-block; width: 220px; }
        .metric h3 { color: #2c3e50; font-size: 2.5rem; margin-bottom: 15px; }
        .center { text-align: center; }`

func pitchDeck(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")

	body := fmt.Sprintf(`    <div class="slide center">
        <h1>%s</h1>
        <p class="subtitle">Transforming %s with AI Innovation</p>
        <p style="font-size: 1.4rem; margin-top: 60px;">Investor Presentation</p>
        <p style="font-size: 1.2rem; color: #95a5a6;">%s</p>
    </div>

    <div class="slide">
        <h2>The Problem</h2>
        <ul>
            <li>Current solutions are outdated and inefficient</li>
            <li>Businesses waste 40+ hours weekly on manual processes</li>
            <li>Lack of intelligent automation costs companies millions</li>
            <li>Existing platforms do not integrate well with modern workflows</li>
        </ul>
        <div class="highlight center">
            <p><strong>Market Pain Point:</strong> $2.3T lost annually due to inefficient business processes</p>
        </div>
    </div>

    <div class="slide">
        <h2>Our Solution</h2>
        <ul>
            <li>AI-powered platform that automates complex workflows</li>
            <li>Real-time analytics and predictive insights</li>
            <li>Seamless integration with existing systems</li>
            <li>95%% accuracy with continuous learning</li>
        </ul>
        <div class="center">
            <div class="metric"><h3>300%%</h3><p>Faster Processing</p></div>
            <div class="metric"><h3>95%%</h3><p>AI Accuracy</p></div>
            <div class="metric"><h3>60%%</h3><p>Cost Reduction</p></div>
        </div>
    </div>

    <div class="slide">
        <h2>Market Opportunity</h2>
        <div class="center">
            <div class="metric"><h3>%s</h3><p>Total Market Size</p></div>
            <div class="metric"><h3>23.5%%</h3><p>Annual Growth Rate</p></div>
            <div class="metric"><h3>500M+</h3><p>Potential Users</p></div>
        </div>
%s
    </div>

    <div class="slide">
        <h2>Financial Projections</h2>
        <div class="center">
            <div class="metric"><h3>$500K</h3><p>Year 1 Revenue</p></div>
            <div class="metric"><h3>$2.5M</h3><p>Year 2 Revenue</p></div>
            <div class="metric"><h3>$10M</h3><p>Year 3 Revenue</p></div>
        </div>
        <div class="highlight center">
            <p><strong>Path to Profitability:</strong> Break-even by Month 18</p>
        </div>
    </div>

    <div class="slide">
        <h2>Funding Requirements</h2>
        <div class="center">
            <div class="metric" style="width: 300px;"><h3>%s</h3><p>Series A Funding</p></div>
        </div>
        <ul>
            <li>40%% - Product development and AI enhancement</li>
            <li>35%% - Marketing and customer acquisition</li>
            <li>15%% - Team expansion and talent</li>
            <li>10%% - Operations and infrastructure</li>
        </ul>
    </div>

    <div class="slide center">
        <h1>Thank You</h1>
        <p class="subtitle">Ready to transform %s together?</p>
        <p style="font-size: 1.4rem; color: #7f8c8d; margin-top: 80px;">Questions &amp; Discussion</p>
    </div>`,
		brand, industry, time.Now().Format("January 2, 2006"),
		usd(p.Metrics.MarketSizeUSD), marketTable(p),
		usd(p.Metrics.FundingAmountUSD),
		industry)

	return htmlPage(brand+" - Investor Pitch Deck", pitchDeckStyle, body)
}
