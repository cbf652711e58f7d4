package entities

import "time"

// ExportFormat is the requested document output format.
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatDOCX ExportFormat = "docx"
)

// GuestSessionSnapshot is the serialized editing state written at the
// guest→auth boundary and consumed exactly once after authentication.
//
// Discipline: single writer at a time. Written only when an unauthenticated
// user attempts an account-gated action, read-and-cleared only on restore.
type GuestSessionSnapshot struct {
	ProjectName   string       `json:"project_name"`
	LineItems     []LineItem   `json:"line_items"`
	TemplateData  TemplateData `json:"template_data"`
	SelectedTrade string       `json:"selected_trade"`
	Total         float64      `json:"total"`
	Format        ExportFormat `json:"format"`
	CreatedAt     time.Time    `json:"created_at"`
}
