package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/pricing"
	"buildquote/internal/domain/session"
	"buildquote/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrNoLineItems           = errors.New("estimate has no line items")
)

// IEstimateUseCase persists and reads back estimates.
//
// CreateFromSession does the session→wire mapping: free-text unit labels are
// resolved to catalog unit ids, per-item subtotal/tax are computed from the
// session's tax configuration, and the totals stored become authoritative for
// every later read.
type IEstimateUseCase interface {
	CreateFromSession(ctx context.Context, projectID string, laborCost float64, sess *session.EditingSession) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo  interfaces.IEstimateRepository
	units IUnitsUseCase
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, units IUnitsUseCase) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, units: units}
}

func (u *EstimateUseCase) CreateFromSession(ctx context.Context, projectID string, laborCost float64, sess *session.EditingSession) (entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}
	if sess == nil || !sess.HasItems() {
		return entities.Estimate{}, ErrNoLineItems
	}

	// Enforce: 1 estimate per project.
	if existing, err := u.repo.GetByProjectID(ctx, projectID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	units, err := u.units.List(ctx)
	if err != nil {
		return entities.Estimate{}, ErrUnitCatalogUnavailable
	}

	cfg := pricing.TaxConfig{
		Enabled:     sess.Template.TaxEnabled,
		RatePercent: sess.Template.TaxRatePercent,
	}

	items := make([]entities.EstimateItem, 0, len(sess.Items))
	for _, li := range sess.Items {
		unit, err := u.units.Resolve(units, li.Unit)
		if err != nil {
			return entities.Estimate{}, err
		}
		sub := li.LineTotal()
		items = append(items, entities.EstimateItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitID:      unit.ID,
			UnitCost:    li.UnitPrice,
			Subtotal:    sub,
			Tax:         pricing.PreviewTax(sub, cfg),
		})
	}

	snap := pricing.PreviewTotals(sess.Items, cfg)

	now := time.Now().UTC()
	e := entities.Estimate{
		// Estimate id equals project id: the PK condition on Create doubles
		// as the uniqueness guarantee.
		ID:                  projectID,
		ProjectID:           projectID,
		ProfitMarginPercent: sess.Template.ProfitMarginPercent,
		LaborCost:           laborCost,
		Items:               items,
		Subtotal:            snap.Subtotal,
		TaxTotal:            snap.TaxTotal,
		Total:               snap.Total,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if created.ID == "" {
		// Lost the race on the PK condition.
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}

	e, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// PricingFor rebuilds the pricing snapshot of a persisted estimate, applying
// provided-totals precedence: the stored figures override recomputation, but
// a zero stored subtotal/total is "not yet known" and falls back to the sum
// over items. The stored tax total is trusted even at zero.
func PricingFor(e entities.Estimate) pricing.Snapshot {
	items := make([]entities.LineItem, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, entities.LineItem{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitCost,
		})
	}
	tax := e.TaxTotal
	return pricing.ComputeTotals(items, pricing.TaxConfig{Enabled: e.TaxTotal > 0}, &pricing.ProvidedTotals{
		Subtotal: e.Subtotal,
		TaxTotal: &tax,
		Total:    e.Total,
	})
}
