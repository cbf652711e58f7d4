package entities

import "strings"

// SectionID enumerates the fixed set of document template sections.
//
// The set is closed: composition, reordering and persistence all key on these
// identifiers, never on free-text labels.
type SectionID string

const (
	SectionHeader        SectionID = "header"
	SectionJobSummary    SectionID = "jobSummary"
	SectionProjectInfo   SectionID = "projectInfo"
	SectionItemsTable    SectionID = "itemsTable"
	SectionPaymentMethod SectionID = "paymentMethod"
	SectionContactInfo   SectionID = "contactInfo"
)

// SectionLayout is the optional one/two-column flag of a section.
type SectionLayout string

const (
	LayoutOneColumn  SectionLayout = "one-column"
	LayoutTwoColumns SectionLayout = "two-columns"
)

// ThemeID is an enumerated palette identifier. Rendering-only.
type ThemeID string

const (
	ThemeClassic ThemeID = "classic"
	ThemeModern  ThemeID = "modern"
	ThemeSlate   ThemeID = "slate"
)

// TemplateSectionConfig is one reorderable, toggleable section of the
// rendered estimate document.
//
// Order values are reassigned densely (0..n-1) after every reorder, so a
// stable sort over Order is never ambiguous. The items table is the single
// required section and can never be disabled.
type TemplateSectionConfig struct {
	ID       SectionID     `json:"id"`
	Label    string        `json:"label"`
	Enabled  bool          `json:"enabled"`
	Order    int           `json:"order"`
	Layout   SectionLayout `json:"layout,omitempty"`
	Required bool          `json:"required,omitempty"`
}

// SectionLabels maps section ids to display labels for the active language.
type SectionLabels map[SectionID]string

// DefaultSectionLabels is the built-in English label set.
var DefaultSectionLabels = SectionLabels{
	SectionHeader:        "Header",
	SectionJobSummary:    "Job Summary",
	SectionProjectInfo:   "Project Info",
	SectionItemsTable:    "Items Table",
	SectionPaymentMethod: "Payment Method",
	SectionContactInfo:   "Contact Info",
}

// DefaultSections returns the initial section list: header, projectInfo,
// jobSummary, itemsTable, paymentMethod, contactInfo, all enabled, in that
// order, items table required.
func DefaultSections(labels SectionLabels) []TemplateSectionConfig {
	if labels == nil {
		labels = DefaultSectionLabels
	}
	ids := []SectionID{
		SectionHeader,
		SectionProjectInfo,
		SectionJobSummary,
		SectionItemsTable,
		SectionPaymentMethod,
		SectionContactInfo,
	}
	sections := make([]TemplateSectionConfig, 0, len(ids))
	for i, id := range ids {
		s := TemplateSectionConfig{
			ID:      id,
			Label:   labels[id],
			Enabled: true,
			Order:   i,
		}
		switch id {
		case SectionHeader, SectionProjectInfo:
			s.Layout = LayoutTwoColumns
		case SectionItemsTable:
			s.Required = true
		}
		sections = append(sections, s)
	}
	return sections
}

// HeaderContent holds the document header fields.
type HeaderContent struct {
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	LogoDataURI string `json:"logo_data_uri,omitempty"`
}

// HasContent reports whether the header renders: a company name or a logo.
func (h HeaderContent) HasContent() bool {
	return notBlank(h.CompanyName) || notBlank(h.LogoDataURI)
}

// JobSummaryContent holds the short job description block.
type JobSummaryContent struct {
	JobTitle    string `json:"job_title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// HasContent ignores the externally supplied project name; callers that have
// one pass it to the composer separately.
func (j JobSummaryContent) HasContent() bool {
	return notBlank(j.JobTitle) || notBlank(j.Description)
}

// ProjectInfoContent holds site address and schedule fields.
type ProjectInfoContent struct {
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Date     string `json:"date,omitempty"`
	Duration string `json:"duration,omitempty"`
}

func (p ProjectInfoContent) HasContent() bool {
	return notBlank(p.Address) || notBlank(p.City) || notBlank(p.State) ||
		notBlank(p.Country) || notBlank(p.Date) || notBlank(p.Duration)
}

// PaymentMethodContent holds how the contractor wants to be paid.
type PaymentMethodContent struct {
	Method       string `json:"method,omitempty"`
	Details      string `json:"details,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func (p PaymentMethodContent) HasContent() bool {
	return notBlank(p.Method) || notBlank(p.Details) || notBlank(p.Instructions)
}

// ContactInfoContent holds how the client reaches the contractor.
type ContactInfoContent struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (c ContactInfoContent) HasContent() bool {
	return notBlank(c.Name) || notBlank(c.Phone) || notBlank(c.Email) || notBlank(c.Address)
}

// SignatureContent holds the optional signature block.
type SignatureContent struct {
	Name             string `json:"name,omitempty"`
	Date             string `json:"date,omitempty"`
	SignatureDataURI string `json:"signature_data_uri,omitempty"`
}

func (s SignatureContent) HasContent() bool {
	return notBlank(s.Name) || notBlank(s.SignatureDataURI)
}

// TemplateData is the aggregate root for a single estimate's presentation:
// section configuration, section content, theme and tax settings. It lives
// for the duration of an editing session and is serialized wholesale into a
// guest snapshot or a persisted template.
type TemplateData struct {
	Sections            []TemplateSectionConfig `json:"sections"`
	Header              HeaderContent           `json:"header"`
	JobSummary          JobSummaryContent       `json:"job_summary"`
	ProjectInfo         ProjectInfoContent      `json:"project_info"`
	PaymentMethod       PaymentMethodContent    `json:"payment_method"`
	ContactInfo         ContactInfoContent      `json:"contact_info"`
	Signature           SignatureContent        `json:"signature"`
	Theme               ThemeID                 `json:"theme"`
	TaxEnabled          bool                    `json:"tax_enabled"`
	TaxRatePercent      float64                 `json:"tax_rate_percent"`
	ProfitMarginPercent float64                 `json:"profit_margin_percent"`
}

// NewTemplateData builds the default aggregate for a fresh estimate.
func NewTemplateData(labels SectionLabels) TemplateData {
	return TemplateData{
		Sections: DefaultSections(labels),
		Theme:    ThemeClassic,
	}
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
