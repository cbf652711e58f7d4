package entities

import "github.com/google/uuid"

// LineItem is a single priced row of an estimate under edition.
//
// Items are owned by the editing session: created with a fresh identifier,
// mutated in place by field, removed by identifier. The line total is always
// derived, never stored.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// NewLineItem allocates an item with a fresh identifier. No two items share
// an identifier within a session.
func NewLineItem(description string, quantity float64, unit string, unitPrice float64) LineItem {
	return LineItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
	}
}

// LineTotal derives quantity * unit price.
func (i LineItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}
