package compose

import (
	"sort"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/pricing"
)

// maxInlineItems bounds how many line items the items-table block shows
// inline; anything beyond is reported via OverflowCount ("+N more").
// Presentation only: totals are always computed over the complete list.
const maxInlineItems = 6

// BlockKind tags one visible block of the composed document.
type BlockKind string

const (
	BlockHeader         BlockKind = "header"
	BlockJobSummary     BlockKind = "jobSummary"
	BlockProjectInfo    BlockKind = "projectInfo"
	BlockItemsTable     BlockKind = "itemsTable"
	BlockPaymentMethod  BlockKind = "paymentMethod"
	BlockContactInfo    BlockKind = "contactInfo"
	BlockPaymentContact BlockKind = "paymentContact"
)

// JobSummaryView is the job-summary content plus the externally supplied
// project name.
type JobSummaryView struct {
	ProjectName string                     `json:"project_name,omitempty"`
	Content     entities.JobSummaryContent `json:"content"`
}

// Block is one visible section block of the composed document. Exactly the
// fields relevant to its Kind are set.
type Block struct {
	Kind     BlockKind              `json:"kind"`
	Sections []entities.SectionID   `json:"sections"`
	Label    string                 `json:"label,omitempty"`
	Layout   entities.SectionLayout `json:"layout,omitempty"`

	Header      *entities.HeaderContent        `json:"header,omitempty"`
	JobSummary  *JobSummaryView                `json:"job_summary,omitempty"`
	ProjectInfo *entities.ProjectInfoContent   `json:"project_info,omitempty"`
	Payment     *entities.PaymentMethodContent `json:"payment,omitempty"`
	Contact     *entities.ContactInfoContent   `json:"contact,omitempty"`

	// Items-table fields.
	Items         []entities.LineItem `json:"items,omitempty"`
	OverflowCount int                 `json:"overflow_count,omitempty"`
	Pricing       pricing.Snapshot    `json:"pricing"`
	DisplayTax    bool                `json:"display_tax"`
}

// Document is the composed, themed render tree handed to preview or export.
type Document struct {
	Theme     ThemeOrDefault             `json:"theme"`
	Blocks    []Block                    `json:"blocks"`
	Signature *entities.SignatureContent `json:"signature,omitempty"`
}

// ThemeOrDefault is the palette id, defaulted when the template carries none.
type ThemeOrDefault = entities.ThemeID

// Input is everything Compose consumes. Pure data in, pure data out.
type Input struct {
	Template    entities.TemplateData
	Items       []entities.LineItem
	ProjectName string
	Pricing     pricing.Snapshot
}

// Compose filters the template sections to the enabled ones, sorts them by
// Order and emits one block per section that passes its emptiness predicate.
//
// Rules beyond plain filtering:
//   - itemsTable always renders; it carries the pricing figures and the
//     truncated item preview.
//   - jobSummary folds into the items block when it immediately precedes it
//     in the visible order (its heading would otherwise sit directly above
//     the items heading); elsewhere it renders standalone.
//   - paymentMethod and contactInfo render as a single two-column block when
//     both are enabled and populated; emitted section ids are tracked so the
//     partner section is skipped on its own turn.
//
// Compose is pure and idempotent: identical inputs yield identical output.
func Compose(in Input) Document {
	enabled := make([]entities.TemplateSectionConfig, 0, len(in.Template.Sections))
	for _, s := range in.Template.Sections {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].Order < enabled[j].Order })

	// Emptiness filtering happens before emission so adjacency rules (the
	// jobSummary fold) are judged over sections that will actually render.
	sections := make([]entities.TemplateSectionConfig, 0, len(enabled))
	for _, s := range enabled {
		if sectionVisible(in, s) {
			sections = append(sections, s)
		}
	}

	doc := Document{Theme: in.Template.Theme}
	if doc.Theme == "" {
		doc.Theme = entities.ThemeClassic
	}
	if in.Template.Signature.HasContent() {
		sig := in.Template.Signature
		doc.Signature = &sig
	}

	emitted := map[entities.SectionID]bool{}

	for idx, sec := range sections {
		if emitted[sec.ID] {
			continue
		}

		switch sec.ID {
		case entities.SectionHeader:
			h := in.Template.Header
			doc.Blocks = append(doc.Blocks, Block{
				Kind:     BlockHeader,
				Sections: []entities.SectionID{sec.ID},
				Label:    sec.Label,
				Layout:   sec.Layout,
				Header:   &h,
			})

		case entities.SectionJobSummary:
			if nextVisibleIsItemsTable(sections, idx) {
				// Folded into the items block when its turn comes.
				continue
			}
			doc.Blocks = append(doc.Blocks, Block{
				Kind:       BlockJobSummary,
				Sections:   []entities.SectionID{sec.ID},
				Label:      sec.Label,
				JobSummary: &JobSummaryView{ProjectName: in.ProjectName, Content: in.Template.JobSummary},
			})

		case entities.SectionProjectInfo:
			p := in.Template.ProjectInfo
			doc.Blocks = append(doc.Blocks, Block{
				Kind:        BlockProjectInfo,
				Sections:    []entities.SectionID{sec.ID},
				Label:       sec.Label,
				Layout:      sec.Layout,
				ProjectInfo: &p,
			})

		case entities.SectionItemsTable:
			doc.Blocks = append(doc.Blocks, itemsBlock(in, sec, prevVisibleIsJobSummary(sections, idx)))

		case entities.SectionPaymentMethod, entities.SectionContactInfo:
			b, ok := paymentOrContactBlock(in, sections, sec, emitted)
			if ok {
				doc.Blocks = append(doc.Blocks, b)
			}
		}
		emitted[sec.ID] = true
	}

	return doc
}

// sectionVisible applies the per-section emptiness predicate. The items
// table is the required, content-bearing section and always renders.
func sectionVisible(in Input, sec entities.TemplateSectionConfig) bool {
	switch sec.ID {
	case entities.SectionItemsTable:
		return true
	case entities.SectionHeader:
		return in.Template.Header.HasContent()
	case entities.SectionJobSummary:
		return jobSummaryVisible(in)
	case entities.SectionProjectInfo:
		return in.Template.ProjectInfo.HasContent()
	case entities.SectionPaymentMethod:
		return in.Template.PaymentMethod.HasContent()
	case entities.SectionContactInfo:
		return in.Template.ContactInfo.HasContent()
	}
	return false
}

func jobSummaryVisible(in Input) bool {
	return in.Template.JobSummary.HasContent() || in.ProjectName != ""
}

// nextVisibleIsItemsTable reports whether the items table renders directly
// after position idx, which folds the job summary into the items block.
func nextVisibleIsItemsTable(sections []entities.TemplateSectionConfig, idx int) bool {
	return idx+1 < len(sections) && sections[idx+1].ID == entities.SectionItemsTable
}

func prevVisibleIsJobSummary(sections []entities.TemplateSectionConfig, idx int) bool {
	return idx > 0 && sections[idx-1].ID == entities.SectionJobSummary
}

func itemsBlock(in Input, sec entities.TemplateSectionConfig, foldSummary bool) Block {
	visible := in.Items
	overflow := 0
	if len(visible) > maxInlineItems {
		overflow = len(visible) - maxInlineItems
		visible = visible[:maxInlineItems]
	}
	items := make([]entities.LineItem, len(visible))
	copy(items, visible)

	b := Block{
		Kind:          BlockItemsTable,
		Sections:      []entities.SectionID{sec.ID},
		Label:         sec.Label,
		Items:         items,
		OverflowCount: overflow,
		Pricing:       in.Pricing,
		DisplayTax:    in.Pricing.DisplayTax,
	}
	if foldSummary && jobSummaryVisible(in) {
		b.JobSummary = &JobSummaryView{ProjectName: in.ProjectName, Content: in.Template.JobSummary}
		b.Sections = append([]entities.SectionID{entities.SectionJobSummary}, b.Sections...)
	}
	return b
}

// paymentOrContactBlock emits the payment/contact block for sec, merging the
// partner section into a single two-column block when both are enabled and
// populated. The emitted set is updated for merged partners so they are
// skipped on their own turn.
func paymentOrContactBlock(in Input, sections []entities.TemplateSectionConfig, sec entities.TemplateSectionConfig, emitted map[entities.SectionID]bool) (Block, bool) {
	// Presence in the visible list already means enabled and populated.
	paymentFull := sectionPresent(sections, entities.SectionPaymentMethod)
	contactFull := sectionPresent(sections, entities.SectionContactInfo)

	if paymentFull && contactFull {
		p, c := in.Template.PaymentMethod, in.Template.ContactInfo
		emitted[entities.SectionPaymentMethod] = true
		emitted[entities.SectionContactInfo] = true
		return Block{
			Kind:     BlockPaymentContact,
			Sections: []entities.SectionID{entities.SectionPaymentMethod, entities.SectionContactInfo},
			Layout:   entities.LayoutTwoColumns,
			Payment:  &p,
			Contact:  &c,
		}, true
	}

	if sec.ID == entities.SectionPaymentMethod {
		p := in.Template.PaymentMethod
		return Block{
			Kind:     BlockPaymentMethod,
			Sections: []entities.SectionID{sec.ID},
			Label:    sec.Label,
			Payment:  &p,
		}, true
	}
	c := in.Template.ContactInfo
	return Block{
		Kind:     BlockContactInfo,
		Sections: []entities.SectionID{sec.ID},
		Label:    sec.Label,
		Contact:  &c,
	}, true
}

func sectionPresent(sections []entities.TemplateSectionConfig, id entities.SectionID) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
