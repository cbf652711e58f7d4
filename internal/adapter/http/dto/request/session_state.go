package request

import (
	"errors"
	"strings"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/session"
)

var (
	ErrInvalidQuantity  = errors.New("line item quantity must be non-negative")
	ErrInvalidUnitPrice = errors.New("line item unit price must be non-negative")
	ErrBlankDescription = errors.New("line item description is required")
)

// LineItemWire is the tagged wire shape of one editing-session line item,
// validated at the boundary before it reaches the core.
type LineItemWire struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

func (w LineItemWire) Validate() error {
	if strings.TrimSpace(w.Description) == "" {
		return ErrBlankDescription
	}
	if w.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if w.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

// SessionState is the explicit editing-session payload carried by estimate,
// export and snapshot requests. No server-side session singleton exists;
// callers always send the state they are operating on.
type SessionState struct {
	ProjectName   string                `json:"project_name"`
	SelectedTrade string                `json:"selected_trade"`
	Items         []LineItemWire        `json:"items"`
	Template      entities.TemplateData `json:"template"`
}

// ToSession validates every line item and materializes the editing session.
// Items arriving without an id get a fresh one.
func (s SessionState) ToSession() (*session.EditingSession, error) {
	sess := session.New(nil)
	sess.ProjectName = strings.TrimSpace(s.ProjectName)
	sess.SelectedTrade = strings.TrimSpace(s.SelectedTrade)
	if len(s.Template.Sections) > 0 {
		sess.Template = s.Template
	}

	for _, w := range s.Items {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if w.ID == "" {
			sess.AddItem(w.Description, w.Quantity, w.Unit, w.UnitPrice)
			continue
		}
		sess.Items = append(sess.Items, entities.LineItem{
			ID:          w.ID,
			Description: w.Description,
			Quantity:    w.Quantity,
			Unit:        w.Unit,
			UnitPrice:   w.UnitPrice,
		})
	}
	return sess, nil
}
