package usecase

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"buildquote/internal/domain/compose"
	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/pricing"
	"buildquote/internal/domain/session"
	"buildquote/internal/usecase/interfaces"
)

var (
	ErrExportInFlight  = errors.New("an export is already in progress")
	ErrFormatDisabled  = errors.New("docx export is disabled")
	ErrInvalidFormat   = errors.New("invalid export format")
	ErrNothingToExport = errors.New("estimate has no line items to export")
)

// IExportUseCase produces the rendered document for a session.
//
// Only one export runs at a time: re-triggering while one is in flight is
// rejected with ErrExportInFlight (a pending flag, not a queue).
type IExportUseCase interface {
	Export(ctx context.Context, sess *session.EditingSession, format entities.ExportFormat) ([]byte, error)
}

type ExportUseCase struct {
	renderer interfaces.IExportRenderer
	units    IUnitsUseCase

	inFlight atomic.Bool
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(renderer interfaces.IExportRenderer, units IUnitsUseCase) *ExportUseCase {
	return &ExportUseCase{renderer: renderer, units: units}
}

// Export validates the session, composes the document over the current
// state (fresh totals and current section order, never a stale snapshot) and
// hands it to the renderer.
func (u *ExportUseCase) Export(ctx context.Context, sess *session.EditingSession, format entities.ExportFormat) ([]byte, error) {
	switch format {
	case entities.FormatPDF:
	case entities.FormatDOCX:
		return nil, ErrFormatDisabled
	default:
		return nil, ErrInvalidFormat
	}
	if sess == nil || !sess.HasItems() {
		return nil, ErrNothingToExport
	}

	if !u.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer u.inFlight.Store(false)

	// The export must not go out with an unmappable unit; an empty or
	// unreachable catalog blocks it.
	units, err := u.units.List(ctx)
	if err != nil {
		return nil, ErrUnitCatalogUnavailable
	}
	for _, item := range sess.Items {
		if _, err := u.units.Resolve(units, item.Unit); err != nil {
			return nil, err
		}
	}

	cfg := pricing.TaxConfig{
		Enabled:     sess.Template.TaxEnabled,
		RatePercent: sess.Template.TaxRatePercent,
	}
	doc := compose.Compose(compose.Input{
		Template:    sess.Template,
		Items:       sess.Items,
		ProjectName: sess.ProjectName,
		Pricing:     pricing.PreviewTotals(sess.Items, cfg),
	})

	blob, err := u.renderer.Render(ctx, doc, format)
	if err != nil {
		log.Printf("[export][usecase] render failed format=%s err=%v", format, err)
		return nil, err
	}
	log.Printf("[export][usecase] rendered format=%s bytes=%d", format, len(blob))
	return blob, nil
}
