package render

import (
	"fmt"
	"time"
)

func businessPlan(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")

	body := fmt.Sprintf(`    <h1>%s Business Plan</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d; margin-bottom: 40px;">
        %s Business Strategy &amp; Analysis
    </p>

    <div class="highlight">
        <h2>Executive Summary</h2>
        <p><strong>%s</strong> is an innovative %s company targeting the %s market. Our platform
        provides intelligent automation, real-time analytics, and seamless user experiences that
        drive measurable business results.</p>

        <h3>Business Concept</h3>
        <p>%s</p>

        <h3>Key Success Factors</h3>
        <ul>
            <li><strong>Market Opportunity:</strong> %s addressable market with 23.5%% annual growth</li>
            <li><strong>Innovative Technology:</strong> Advanced AI algorithms with 95%% accuracy rate</li>
            <li><strong>Experienced Leadership:</strong> Proven track record in %s</li>
            <li><strong>Scalable Business Model:</strong> SaaS platform with recurring revenue streams</li>
        </ul>
    </div>

    <div class="section">
        <h2>Company Description</h2>
        <h3>Mission Statement</h3>
        <p>To empower businesses in the %s industry with intelligent, AI-driven solutions that
        increase efficiency, reduce costs, and drive innovation.</p>
        <h3>Vision</h3>
        <p>To become the leading AI platform in the %s space, transforming how businesses operate
        and compete in the digital age.</p>
        <h3>Core Values</h3>
        <ul>
            <li><strong>Innovation:</strong> Continuously pushing the boundaries of what is possible with AI</li>
            <li><strong>Reliability:</strong> Delivering consistent, high-quality solutions our customers can depend on</li>
            <li><strong>Transparency:</strong> Building trust through clear communication and ethical practices</li>
            <li><strong>Customer Success:</strong> Ensuring our clients achieve measurable business results</li>
        </ul>
    </div>

    <div class="section">
        <h2>Market Analysis</h2>
        <p>The %s industry is experiencing rapid digital transformation, with increasing demand for
        AI-powered solutions. The market is valued at %s and growing at 23.5%% annually. Our primary
        target market is %s organizations that require advanced automation and analytics
        capabilities.</p>
%s
    </div>

    <div class="section">
        <h2>Business Model</h2>
        <p>Our subscription-based SaaS model provides predictable recurring revenue:</p>
%s
    </div>

    <div class="section">
        <h2>Financial Projections</h2>
%s
        <h3>Funding Requirements</h3>
        <div class="highlight">
            <p><strong>Series A Funding:</strong> %s</p>
%s
        </div>
    </div>

    <div class="section">
        <h2>Management Team</h2>
        <div class="highlight">
            <h3>Founder &amp; CEO</h3>
            <p>%s with extensive experience in %s and technology leadership.</p>
        </div>
        <h3>Advisory Board</h3>
        <ul>
            <li>Former executives from leading %s companies</li>
            <li>AI and machine learning experts from top research institutions</li>
            <li>Successful entrepreneurs who have built and exited similar companies</li>
            <li>Industry veterans with deep customer and partnership networks</li>
        </ul>
    </div>

    <div class="section">
        <h2>Risk Analysis &amp; Mitigation</h2>
        <h3>Identified Risks</h3>
        <ul>
            <li><strong>Market Risk:</strong> Economic downturns affecting customer spending</li>
            <li><strong>Technology Risk:</strong> Rapid changes in the AI technology landscape</li>
            <li><strong>Competition Risk:</strong> Large incumbents entering the market</li>
            <li><strong>Talent Risk:</strong> Difficulty attracting top AI talent</li>
        </ul>
        <h3>Mitigation Strategies</h3>
        <ul>
            <li>Diversified customer base across multiple segments</li>
            <li>Continuous R&amp;D investment and technology partnerships</li>
            <li>Strong IP portfolio and first-mover advantages</li>
            <li>Competitive compensation and equity packages</li>
        </ul>
    </div>

    <div class="section">
        <h2>Implementation Timeline</h2>
        <ul>
            <li><strong>Q1:</strong> Complete funding, team expansion, product enhancement</li>
            <li><strong>Q2:</strong> Market expansion, partnership development</li>
            <li><strong>Q3:</strong> International expansion, enterprise sales focus</li>
            <li><strong>Q4:</strong> Series B preparation, advanced features</li>
        </ul>
    </div>

    <div style="margin-top: 50px; text-align: center; color: #7f8c8d;">
        <p>&copy; %d %s. All rights reserved.</p>
    </div>`,
		brand, industry,
		brand, industry, p.Idea.TargetMarket,
		p.Idea.Description,
		usd(p.Metrics.MarketSizeUSD), industry,
		industry, industry,
		industry, usd(p.Metrics.MarketSizeUSD), p.Idea.TargetMarket, marketTable(p),
		pricingTable(p),
		profitTable,
		usd(p.Metrics.FundingAmountUSD), fundingAllocation(p.Metrics.FundingAmountUSD),
		p.Idea.FounderPersona, industry,
		industry,
		time.Now().Year(), brand)

	return htmlPage(brand+" - Business Plan", baseStyle, body)
}
