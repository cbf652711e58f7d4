package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase/interfaces"
)

var (
	ErrUnitCatalogUnavailable = errors.New("unit catalog unavailable")
	ErrUnitCatalogEmpty       = errors.New("unit catalog is empty")
)

const (
	catalogPollInterval = 200 * time.Millisecond
	catalogWaitTimeout  = 5 * time.Second
)

// IUnitsUseCase exposes the unit catalog and free-text unit resolution.
//
// Mapping rule: a line item's free-text unit label matches a catalog unit by
// case-insensitive comparison against symbol, abbreviation or name. When
// nothing matches, the square-meter unit is the designated default, else the
// first catalog entry.
type IUnitsUseCase interface {
	List(ctx context.Context) ([]entities.Unit, error)
	Resolve(units []entities.Unit, label string) (entities.Unit, error)
	WaitForCatalog(ctx context.Context) ([]entities.Unit, error)
}

type UnitsUseCase struct {
	catalog interfaces.IUnitCatalog

	pollInterval time.Duration
	waitTimeout  time.Duration
}

var _ IUnitsUseCase = (*UnitsUseCase)(nil)

func NewUnitsUseCase(catalog interfaces.IUnitCatalog) *UnitsUseCase {
	return &UnitsUseCase{
		catalog:      catalog,
		pollInterval: catalogPollInterval,
		waitTimeout:  catalogWaitTimeout,
	}
}

func (u *UnitsUseCase) List(ctx context.Context) ([]entities.Unit, error) {
	units, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return units, nil
}

// Resolve maps a free-text label to a catalog unit. An empty catalog is an
// error: a zero/invalid unit id must never be substituted silently.
func (u *UnitsUseCase) Resolve(units []entities.Unit, label string) (entities.Unit, error) {
	if len(units) == 0 {
		return entities.Unit{}, ErrUnitCatalogEmpty
	}

	needle := strings.ToLower(strings.TrimSpace(label))
	if needle != "" {
		for _, unit := range units {
			if strings.EqualFold(unit.Symbol, needle) ||
				strings.EqualFold(unit.Abbreviation, needle) ||
				strings.EqualFold(unit.Name, needle) {
				return unit, nil
			}
		}
	}

	// Fallback: prefer a square-meter equivalent, else the first entry.
	for _, unit := range units {
		if unit.Symbol == "m²" || strings.EqualFold(unit.Name, "square meter") ||
			strings.EqualFold(unit.Name, "square metre") {
			return unit, nil
		}
	}
	return units[0], nil
}

// WaitForCatalog polls the catalog until it has entries or the bounded
// timeout elapses. The catalog loads asynchronously upstream; restoration
// and export both need it before producing unit mappings.
func (u *UnitsUseCase) WaitForCatalog(ctx context.Context) ([]entities.Unit, error) {
	deadline := time.Now().Add(u.waitTimeout)

	for {
		units, err := u.catalog.List(ctx)
		if err != nil {
			log.Printf("[units][usecase] catalog fetch failed err=%v", err)
		} else if len(units) > 0 {
			return units, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrUnitCatalogUnavailable
		}
		select {
		case <-ctx.Done():
			return nil, ErrUnitCatalogUnavailable
		case <-time.After(u.pollInterval):
		}
	}
}
