package domain

import "strings"

// StartupIdea is the user's input: a free-text description plus three
// categorical attributes. It is immutable once a generation job has been
// submitted for it.
type StartupIdea struct {
	Description    string `json:"description"`
	Industry       string `json:"industry"`
	TargetMarket   string `json:"target_market"`
	FounderPersona string `json:"founder_persona"`
}

// Industries lists the supported industry values in display order.
var Industries = []string{
	"HealthTech", "EdTech", "FinTech", "AgriTech", "CleanTech",
	"RetailTech", "FoodTech", "PropTech", "LegalTech", "HR Tech",
	"Gaming", "SaaS", "E-commerce", "Marketplace", "AI/ML", "Other",
}

// TargetMarkets lists the supported target market values.
var TargetMarkets = []string{
	"B2B Enterprise", "B2B SMB", "B2C Mass Market", "B2C Niche",
	"B2B2C", "Marketplace", "Government/Public Sector", "Non-profit",
}

// FounderPersonas lists the supported founder persona values.
var FounderPersonas = []string{
	"Solo Technical Founder", "Business-focused Founder", "Serial Entrepreneur",
	"First-time Entrepreneur", "Social Impact Focused", "VC-backed Growth",
	"Bootstrap/Self-funded", "Academic/Research Background",
}

// Validate reports whether the idea is submittable. Only the description is
// mandatory; the categorical attributes fall back to defaults downstream.
func (i StartupIdea) Validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return ErrEmptyIdea
	}
	return nil
}

// Composite flattens the idea into the single-line form the Job Service
// accepts: "<description> | Industry: X | Target: Y | Founder: Z".
func (i StartupIdea) Composite() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(i.Description))
	b.WriteString(" | Industry: ")
	b.WriteString(i.Industry)
	b.WriteString(" | Target: ")
	b.WriteString(i.TargetMarket)
	b.WriteString(" | Founder: ")
	b.WriteString(i.FounderPersona)
	return b.String()
}

// ParseComposite reverses Composite. Unknown segments are ignored; the first
// segment is always the description.
func ParseComposite(s string) StartupIdea {
	parts := strings.Split(s, "|")
	idea := StartupIdea{Description: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "Industry:"):
			idea.Industry = strings.TrimSpace(strings.TrimPrefix(part, "Industry:"))
		case strings.HasPrefix(part, "Target:"):
			idea.TargetMarket = strings.TrimSpace(strings.TrimPrefix(part, "Target:"))
		case strings.HasPrefix(part, "Founder:"):
			idea.FounderPersona = strings.TrimSpace(strings.TrimPrefix(part, "Founder:"))
		}
	}
	return idea
}
