package interfaces

import (
	"context"

	"buildquote/internal/domain/compose"
	"buildquote/internal/domain/entities"
)

// IExportRenderer abstracts the external document renderer. It consumes the
// fully composed, priced document and returns the binary output.
type IExportRenderer interface {
	Render(ctx context.Context, doc compose.Document, format entities.ExportFormat) ([]byte, error)
}
