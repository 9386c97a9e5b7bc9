// Package render expands derived metrics into the long-form documents of the
// startup package. Each document type has its own renderer function held in a
// registry; dispatch is by tag, so new document types are added by
// registration rather than by growing a central switch.
//
// Output is self-contained HTML used as the PDF stand-in. The 3-year
// financial tables are fixed illustrative constants shared across documents;
// only the narrative text and the top-line market and funding numbers vary
// with the input.
package render

import (
	"fmt"
	"strings"

	"startify/internal/domain"
)

// Params carries everything a renderer may interpolate. Result is optional:
// renderers must degrade to defaults when it is nil or partially filled.
type Params struct {
	Idea    domain.StartupIdea
	Metrics domain.DerivedMetrics
	Result  *domain.GenerationResult
}

// Func renders one document body.
type Func func(Params) string

// Registry maps document type tags to renderer functions.
type Registry struct {
	renderers map[domain.DocumentType]Func
	fallback  Func
}

// NewRegistry returns a registry with every built-in document type wired.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: make(map[domain.DocumentType]Func),
		fallback:  genericDocument,
	}
	r.Register(domain.DocBusinessPlan, businessPlan)
	r.Register(domain.DocPitchDeck, pitchDeck)
	r.Register(domain.DocFinancialModel, financialModel)
	r.Register(domain.DocBrandPackage, brandPackage)
	r.Register(domain.DocMarketingKit, marketingKit)
	r.Register(domain.DocInvestorData, investorData)
	r.Register(domain.DocMarketReport, marketReport)
	r.Register(domain.DocLegalDocs, legalDocs)
	return r
}

// Register binds a renderer to a document type, replacing any previous one.
func (r *Registry) Register(t domain.DocumentType, fn Func) {
	r.renderers[t] = fn
}

// Known reports whether a dedicated renderer exists for the type.
func (r *Registry) Known(t domain.DocumentType) bool {
	_, ok := r.renderers[t]
	return ok
}

// Render produces the document for the given type. Unrecognized types fall
// back to the generic document; rendering itself never fails on missing
// optional data.
func (r *Registry) Render(t domain.DocumentType, p Params) domain.Document {
	fn, ok := r.renderers[t]
	if !ok {
		fn = r.fallback
	}
	return domain.Document{
		Type:     t,
		Filename: Filename(t, p.Idea.Industry),
		MIME:     "text/html",
		Content:  []byte(fn(p)),
	}
}

// Filename derives the delivery name: "{documentType}_{industry}.html".
func Filename(t domain.DocumentType, industry string) string {
	if industry == "" {
		industry = "startup"
	}
	industry = strings.ReplaceAll(industry, "/", "-")
	industry = strings.ReplaceAll(industry, " ", "-")
	return fmt.Sprintf("%s_%s.html", t, industry)
}
