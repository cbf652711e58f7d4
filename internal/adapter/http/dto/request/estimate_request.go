package request

import "strings"

// EstimateRequest creates a persisted estimate from an editing session.
type EstimateRequest struct {
	ProjectID string       `json:"project_id" binding:"required"`
	LaborCost float64      `json:"labor_cost"`
	Session   SessionState `json:"session"`
}

func (r EstimateRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}
