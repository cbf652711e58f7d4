package response

import (
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase"
)

type EstimateItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitID      string  `json:"unit_id"`
	UnitCost    float64 `json:"unit_cost"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
}

type EstimateResponse struct {
	ID                  string                 `json:"id"`
	ProjectID           string                 `json:"project_id"`
	ProfitMarginPercent float64                `json:"profit_margin_percent"`
	LaborCost           float64                `json:"labor_cost"`
	Items               []EstimateItemResponse `json:"items"`
	Subtotal            float64                `json:"subtotal"`
	TaxTotal            float64                `json:"tax_total"`
	Total               float64                `json:"total"`
	DisplayTax          bool                   `json:"display_tax"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// FromEstimate maps a persisted estimate onto the wire, with the pricing
// snapshot recomputed under provided-totals precedence so read-back figures
// never drift from the stored ones.
func FromEstimate(e entities.Estimate) EstimateResponse {
	snap := usecase.PricingFor(e)

	items := make([]EstimateItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, EstimateItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitID:      it.UnitID,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal,
			Tax:         it.Tax,
		})
	}
	return EstimateResponse{
		ID:                  e.ID,
		ProjectID:           e.ProjectID,
		ProfitMarginPercent: e.ProfitMarginPercent,
		LaborCost:           e.LaborCost,
		Items:               items,
		Subtotal:            snap.Subtotal,
		TaxTotal:            snap.TaxTotal,
		Total:               snap.Total,
		DisplayTax:          snap.DisplayTax,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
