package entities

import "time"

// EstimateItem is a persisted line item in the wire/storage shape: the
// free-text unit label of the editing session has been resolved to a catalog
// unit id, and per-item subtotal/tax are precomputed from the session's tax
// configuration.
type EstimateItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitID      string  `json:"unit_id"`
	UnitCost    float64 `json:"unit_cost"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
}

// Estimate is the persisted estimate record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The estimate id equals the project id: one estimate per project, so
// project-scoped reads resolve by PK directly.
//
// Once persisted, Subtotal/TaxTotal/Total are authoritative over any client
// recomputation (see the pricing package precedence rules).
type Estimate struct {
	ID                  string         `json:"id"`
	ProjectID           string         `json:"project_id"`
	ProfitMarginPercent float64        `json:"profit_margin_percent"`
	LaborCost           float64        `json:"labor_cost"`
	Items               []EstimateItem `json:"items"`
	Subtotal            float64        `json:"subtotal"`
	TaxTotal            float64        `json:"tax_total"`
	Total               float64        `json:"total"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
