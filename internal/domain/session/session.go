package session

import (
	"errors"
	"sort"
	"strings"

	"buildquote/internal/domain/entities"
)

var (
	ErrItemNotFound    = errors.New("line item not found")
	ErrSectionNotFound = errors.New("section not found")
)

// ReorderDirection is the direction of a single-neighbor section swap.
type ReorderDirection int

const (
	MoveUp ReorderDirection = iota
	MoveDown
)

// WizardStep is the editing wizard position.
type WizardStep string

const (
	StepProject WizardStep = "project"
	StepItems   WizardStep = "items"
	StepPreview WizardStep = "preview"
)

// EditingSession owns the mutable state of a single estimate under edition:
// the ordered line items and the template aggregate. All mutation happens
// synchronously through its methods; there is no background writer.
//
// The session is passed explicitly to every operation that needs it; no
// package-level singleton.
type EditingSession struct {
	ProjectName   string                `json:"project_name"`
	SelectedTrade string                `json:"selected_trade"`
	Items         []entities.LineItem   `json:"items"`
	Template      entities.TemplateData `json:"template"`
	Step          WizardStep            `json:"step"`
}

// New starts an empty session with the default template.
func New(labels entities.SectionLabels) *EditingSession {
	return &EditingSession{
		Template: entities.NewTemplateData(labels),
		Step:     StepProject,
	}
}

// AddItem appends a line item with a fresh identifier and returns it.
func (s *EditingSession) AddItem(description string, quantity float64, unit string, unitPrice float64) entities.LineItem {
	item := entities.NewLineItem(description, quantity, unit, unitPrice)
	s.Items = append(s.Items, item)
	return item
}

// UpdateItem mutates one item in place by identifier.
func (s *EditingSession) UpdateItem(id string, mutate func(*entities.LineItem)) error {
	for i := range s.Items {
		if s.Items[i].ID == id {
			mutate(&s.Items[i])
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem deletes one item by identifier, preserving the order of the
// remaining items.
func (s *EditingSession) RemoveItem(id string) error {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// ReorderItem swaps one item with its immediate neighbor, clamped at the
// ends. One call moves one position, matching the section reorder contract.
func (s *EditingSession) ReorderItem(id string, dir ReorderDirection) error {
	pos := -1
	for i := range s.Items {
		if s.Items[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrItemNotFound
	}

	swap := -1
	if dir == MoveUp && pos > 0 {
		swap = pos - 1
	}
	if dir == MoveDown && pos < len(s.Items)-1 {
		swap = pos + 1
	}
	if swap >= 0 {
		s.Items[pos], s.Items[swap] = s.Items[swap], s.Items[pos]
	}
	return nil
}

// HasItems reports whether at least one line item exists.
func (s *EditingSession) HasItems() bool {
	return len(s.Items) > 0
}

// ToggleSection flips a section's enabled flag. Required sections (the items
// table) cannot be disabled; toggling them is a no-op.
func (s *EditingSession) ToggleSection(id entities.SectionID) error {
	sec := s.findSection(id)
	if sec == nil {
		return ErrSectionNotFound
	}
	if sec.Required {
		return nil
	}
	sec.Enabled = !sec.Enabled
	return nil
}

// SetSectionLayout sets the one/two-column flag. Only meaningful for
// sections that declare a layout; setting it elsewhere is a no-op.
func (s *EditingSession) SetSectionLayout(id entities.SectionID, layout entities.SectionLayout) error {
	sec := s.findSection(id)
	if sec == nil {
		return ErrSectionNotFound
	}
	if sec.Layout == "" {
		return nil
	}
	sec.Layout = layout
	return nil
}

// ReorderSection swaps the named section with its immediate neighbor in the
// enabled-and-sorted order, clamped at the ends. One call moves one
// position; there are no multi-position jumps. Afterwards every section's
// Order is renumbered densely from 0 in the new sequence, which is the sole
// source of truth for render order.
func (s *EditingSession) ReorderSection(id entities.SectionID, dir ReorderDirection) error {
	sorted := s.SortedSections()

	// Position among enabled sections only; disabled ones keep their slot.
	enabledIdx := make([]int, 0, len(sorted))
	pos := -1
	for i, sec := range sorted {
		if !sec.Enabled {
			continue
		}
		if sec.ID == id {
			pos = len(enabledIdx)
		}
		enabledIdx = append(enabledIdx, i)
	}
	if s.findSection(id) == nil {
		return ErrSectionNotFound
	}

	if pos >= 0 {
		swap := -1
		if dir == MoveUp && pos > 0 {
			swap = pos - 1
		}
		if dir == MoveDown && pos < len(enabledIdx)-1 {
			swap = pos + 1
		}
		if swap >= 0 {
			a, b := enabledIdx[pos], enabledIdx[swap]
			sorted[a], sorted[b] = sorted[b], sorted[a]
		}
	}

	for i := range sorted {
		sorted[i].Order = i
	}
	s.Template.Sections = sorted
	return nil
}

// SortedSections returns a copy of the section list stably sorted by Order.
func (s *EditingSession) SortedSections() []entities.TemplateSectionConfig {
	out := make([]entities.TemplateSectionConfig, len(s.Template.Sections))
	copy(out, s.Template.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Relabel regenerates section labels for a new display language. Only the
// label text changes; order, enablement and layout chosen by the user
// survive the language switch.
func (s *EditingSession) Relabel(labels entities.SectionLabels) {
	if labels == nil {
		return
	}
	for i := range s.Template.Sections {
		if l, ok := labels[s.Template.Sections[i].ID]; ok && strings.TrimSpace(l) != "" {
			s.Template.Sections[i].Label = l
		}
	}
}

func (s *EditingSession) findSection(id entities.SectionID) *entities.TemplateSectionConfig {
	for i := range s.Template.Sections {
		if s.Template.Sections[i].ID == id {
			return &s.Template.Sections[i]
		}
	}
	return nil
}
