package interfaces

import (
	"context"

	"buildquote/internal/domain/entities"
)

// IUnitCatalog abstracts the external measurement-unit catalog.
//
// The catalog loads asynchronously on the provider side; List may return an
// empty slice before the upstream has data, which callers must treat as
// "not yet available", not as a final answer.
type IUnitCatalog interface {
	List(ctx context.Context) ([]entities.Unit, error)
}
