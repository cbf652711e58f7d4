package response

import (
	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase"
)

type DeferredExportResponse struct {
	Format entities.ExportFormat `json:"format"`
	Total  float64               `json:"total"`
}

type SessionStateResponse struct {
	ProjectName   string                `json:"project_name"`
	SelectedTrade string                `json:"selected_trade"`
	Items         []entities.LineItem   `json:"items"`
	Template      entities.TemplateData `json:"template"`
	Step          string                `json:"step"`
}

// RestoreResponse reports the outcome of the auth-boundary crossing: the
// session the client should continue editing, whether it was restored from a
// snapshot, any deferred action to re-arm, and a non-fatal notice when a
// corrupt snapshot was discarded.
type RestoreResponse struct {
	Restored bool                    `json:"restored"`
	Session  SessionStateResponse    `json:"session"`
	Deferred *DeferredExportResponse `json:"deferred,omitempty"`
	Notice   string                  `json:"notice,omitempty"`
}

func FromRestoreResult(res usecase.RestoreResult) RestoreResponse {
	out := RestoreResponse{
		Restored: res.Restored,
		Notice:   res.Notice,
		Session: SessionStateResponse{
			ProjectName:   res.Session.ProjectName,
			SelectedTrade: res.Session.SelectedTrade,
			Items:         res.Session.Items,
			Template:      res.Session.Template,
			Step:          string(res.Session.Step),
		},
	}
	if res.Deferred != nil {
		out.Deferred = &DeferredExportResponse{
			Format: res.Deferred.Format,
			Total:  res.Deferred.Total,
		}
	}
	return out
}
