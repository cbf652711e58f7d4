package request

import (
	"strings"
	"time"

	"buildquote/internal/domain/entities"
)

// SnapshotRequest stores a guest-session snapshot at the guest→auth
// boundary.
type SnapshotRequest struct {
	Key           string                `json:"key" binding:"required"`
	ProjectName   string                `json:"project_name"`
	SelectedTrade string                `json:"selected_trade"`
	Items         []LineItemWire        `json:"items"`
	Template      entities.TemplateData `json:"template"`
	Total         float64               `json:"total"`
	Format        entities.ExportFormat `json:"format"`
}

func (r SnapshotRequest) ResolveKey() string {
	return strings.TrimSpace(r.Key)
}

// ToSnapshot validates the line items and builds the snapshot aggregate.
func (r SnapshotRequest) ToSnapshot() (entities.GuestSessionSnapshot, error) {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, w := range r.Items {
		if err := w.Validate(); err != nil {
			return entities.GuestSessionSnapshot{}, err
		}
		items = append(items, entities.LineItem{
			ID:          w.ID,
			Description: w.Description,
			Quantity:    w.Quantity,
			Unit:        w.Unit,
			UnitPrice:   w.UnitPrice,
		})
	}
	return entities.GuestSessionSnapshot{
		ProjectName:   strings.TrimSpace(r.ProjectName),
		LineItems:     items,
		TemplateData:  r.Template,
		SelectedTrade: strings.TrimSpace(r.SelectedTrade),
		Total:         r.Total,
		Format:        r.Format,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// RestoreRequest consumes a stored snapshot after authentication. Restore is
// the explicit opt-in marker; without it any stored snapshot is discarded.
type RestoreRequest struct {
	Key     string `json:"key" binding:"required"`
	Restore bool   `json:"restore"`
}

func (r RestoreRequest) ResolveKey() string {
	return strings.TrimSpace(r.Key)
}
