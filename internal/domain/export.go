package domain

// DocumentType identifies one renderable document in the startup package.
type DocumentType string

const (
	DocBusinessPlan   DocumentType = "business-plan"
	DocPitchDeck      DocumentType = "pitch-deck"
	DocFinancialModel DocumentType = "financial-model"
	DocBrandPackage   DocumentType = "brand-package"
	DocMarketingKit   DocumentType = "marketing-kit"
	DocInvestorData   DocumentType = "investor-data"
	DocMarketReport   DocumentType = "market-report"
	DocLegalDocs      DocumentType = "legal-docs"
)

// FileFormat is the advertised delivery format of an export item. Rendering
// always produces HTML as the PDF/spreadsheet stand-in; the format only
// affects how the item is presented.
type FileFormat string

const (
	FormatPDF  FileFormat = "pdf"
	FormatHTML FileFormat = "html"
	FormatJSON FileFormat = "json"
	FormatPPTX FileFormat = "pptx"
	FormatXLSX FileFormat = "xlsx"
)

// ExportItem is one downloadable document offering. Generating toggles for
// the duration of a single render+deliver cycle and is otherwise false.
type ExportItem struct {
	ID          DocumentType
	Name        string
	Description string
	Format      FileFormat
	Premium     bool
	Generating  bool
}

// Document is a rendered artifact ready for delivery.
type Document struct {
	Type     DocumentType
	Filename string
	MIME     string
	Content  []byte
}
