package pricing

import "buildquote/internal/domain/entities"

// TaxConfig is the session's tax configuration.
type TaxConfig struct {
	Enabled     bool
	RatePercent float64
}

// ProvidedTotals carries figures from an already-persisted estimate. The
// trust rules are asymmetric on purpose (kept for behavioral compatibility
// with the persisted-estimate contract, not because the asymmetry is pretty):
//   - Subtotal and Total are trusted only when strictly greater than zero;
//     a zero means "not yet known".
//   - TaxTotal is trusted whenever present, including an explicit zero,
//     hence the pointer.
type ProvidedTotals struct {
	Subtotal float64
	TaxTotal *float64
	Total    float64
}

// Snapshot is the derived pricing output. It is recomputed from scratch on
// every call; nothing here is cached or persisted independently.
type Snapshot struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"tax_total"`
	Total      float64 `json:"total"`
	DisplayTax bool    `json:"display_tax"`
}

// ComputeTotals derives subtotal, tax and total from the full line-item list
// and the tax configuration, applying provided-totals precedence.
//
// Tax is never derived from the rate here: when tax is enabled and no
// provided value exists the engine returns 0 and defers to the backend.
// PreviewTax covers the pre-persistence preview path.
//
// Pure function of its inputs; callers re-invoke it after every line-item or
// tax-config mutation.
func ComputeTotals(items []entities.LineItem, cfg TaxConfig, provided *ProvidedTotals) Snapshot {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	if provided != nil && provided.Subtotal > 0 {
		subtotal = provided.Subtotal
	}

	// Provided tax wins even at zero; without it tax stays 0 whether the
	// config is disabled or the computation is deferred to the backend.
	taxTotal := 0.0
	taxProvided := provided != nil && provided.TaxTotal != nil
	if taxProvided {
		taxTotal = *provided.TaxTotal
	}

	total := subtotal + taxTotal
	if provided != nil && provided.Total > 0 {
		total = provided.Total
	}

	return Snapshot{
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		Total:      total,
		DisplayTax: cfg.Enabled && (taxTotal > 0 || taxProvided),
	}
}

// PreviewTax estimates tax for a not-yet-persisted session: subtotal * rate.
// Returns 0 when tax is disabled, regardless of the configured rate.
func PreviewTax(subtotal float64, cfg TaxConfig) float64 {
	if !cfg.Enabled {
		return 0
	}
	return subtotal * cfg.RatePercent / 100
}

// PreviewTotals is the pre-persistence variant of ComputeTotals: no
// authoritative figures exist yet, so tax is estimated from the configured
// rate instead of deferred.
func PreviewTotals(items []entities.LineItem, cfg TaxConfig) Snapshot {
	snap := ComputeTotals(items, cfg, nil)
	snap.TaxTotal = PreviewTax(snap.Subtotal, cfg)
	snap.Total = snap.Subtotal + snap.TaxTotal
	snap.DisplayTax = cfg.Enabled && snap.TaxTotal > 0
	return snap
}
