package request

import "buildquote/internal/domain/entities"

// ExportRequest renders the current session as a document.
type ExportRequest struct {
	Format  entities.ExportFormat `json:"format" binding:"required"`
	Session SessionState          `json:"session"`
}
