package render

import (
	"fmt"
	"strings"
)

func brandPackage(p Params) string {
	brand := p.Metrics.BrandName
	industry := industryOr(p.Idea, "technology")

	alternates := ""
	if p.Result != nil && len(p.Result.BrandNames) > 0 {
		var items strings.Builder
		for _, name := range p.Result.BrandNames {
			fmt.Fprintf(&items, "            <li>%s</li>\n", name)
		}
		alternates = fmt.Sprintf(`    <div class="section">
        <h2>Alternative Name Candidates</h2>
        <ul>
%s        </ul>
    </div>
`, items.String())
	}

	slogans := `            <li>"Innovation Simplified"</li>
            <li>"Transforming Tomorrow, Today"</li>
            <li>"Where Vision Meets Reality"</li>
`
	if p.Result != nil && len(p.Result.Slogans) > 0 {
		var items strings.Builder
		for _, s := range p.Result.Slogans {
			fmt.Fprintf(&items, "            <li>\"%s\"</li>\n", s)
		}
		slogans = items.String()
	}

	body := fmt.Sprintf(`    <h1>%s Brand Package</h1>
    <p style="text-align: center; font-size: 1.2rem; color: #7f8c8d;">Complete Brand Identity Guidelines</p>

    <div class="section">
        <h2>Brand Name</h2>
        <div class="highlight">
            <p style="font-size: 2rem; text-align: center; font-weight: bold;">%s</p>
            <p style="text-align: center;">A name chosen to signal credibility and focus in the %s market.</p>
        </div>
    </div>

%s    <div class="section">
        <h2>Brand Slogans</h2>
        <ul>
%s        </ul>
    </div>

    <div class="section">
        <h2>Brand Voice</h2>
        <ul>
            <li><strong>Confident:</strong> We speak as experts without being arrogant</li>
            <li><strong>Clear:</strong> Plain language over jargon, always</li>
            <li><strong>Helpful:</strong> Every message should move the customer forward</li>
        </ul>
    </div>

    <div class="section">
        <h2>Color Palette</h2>
        <table>
            <tr><th>Role</th><th>Color</th><th>Hex</th></tr>
            <tr><td>Primary</td><td>Deep Blue</td><td>#2c3e50</td></tr>
            <tr><td>Accent</td><td>Bright Blue</td><td>#3498db</td></tr>
            <tr><td>Success</td><td>Teal Green</td><td>#16a085</td></tr>
            <tr><td>Background</td><td>Off White</td><td>#f8fafc</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Typography</h2>
        <table>
            <tr><th>Use</th><th>Typeface</th><th>Weight</th></tr>
            <tr><td>Headings</td><td>Segoe UI</td><td>600</td></tr>
            <tr><td>Body</td><td>Segoe UI</td><td>400</td></tr>
            <tr><td>Data &amp; Tables</td><td>Segoe UI</td><td>400</td></tr>
        </table>
    </div>

    <div class="section">
        <h2>Usage Guidelines</h2>
        <ul>
            <li>Always pair the brand name with the primary color on first use</li>
            <li>Minimum clear space around the wordmark equals the cap height</li>
            <li>Never stretch, rotate, or recolor the wordmark</li>
        </ul>
    </div>`,
		brand, brand, industry, alternates, slogans)

	return htmlPage(brand+" - Brand Package", baseStyle, body)
}
