package interfaces

import (
	"context"

	"buildquote/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create an estimate when a session is persisted (one per project)
//   - read it back by estimate id or project id
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
}
