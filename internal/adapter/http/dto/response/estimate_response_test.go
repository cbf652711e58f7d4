package response

import (
	"testing"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/session"
	"buildquote/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	t.Run("stored totals survive the round trip", func(t *testing.T) {
		e := entities.Estimate{
			ID:        "proj-1",
			ProjectID: "proj-1",
			Items: []entities.EstimateItem{
				{Description: "Drywall", Quantity: 2, UnitID: "u-sqm", UnitCost: 45, Subtotal: 90, Tax: 9},
			},
			Subtotal: 100,
			TaxTotal: 10,
			Total:    110,
		}
		res := FromEstimate(e)
		if res.Subtotal != 100 || res.TaxTotal != 10 || res.Total != 110 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if !res.DisplayTax {
			t.Fatalf("expected tax shown")
		}
		if len(res.Items) != 1 || res.Items[0].UnitID != "u-sqm" || res.Items[0].Tax != 9 {
			t.Fatalf("unexpected items: %+v", res.Items)
		}
	})

	t.Run("zero stored subtotal recomputed from items", func(t *testing.T) {
		e := entities.Estimate{
			ID:    "proj-1",
			Items: []entities.EstimateItem{{Quantity: 2, UnitCost: 45}},
		}
		res := FromEstimate(e)
		if res.Subtotal != 90 || res.Total != 90 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if res.DisplayTax {
			t.Fatalf("expected tax hidden")
		}
	})
}

func TestFromRestoreResult(t *testing.T) {
	t.Run("maps session and deferral", func(t *testing.T) {
		sess := session.New(nil)
		sess.ProjectName = "Smith house"
		sess.Step = session.StepPreview

		res := FromRestoreResult(usecase.RestoreResult{
			Session:  sess,
			Restored: true,
			Deferred: &usecase.DeferredExport{Format: entities.FormatPDF, Total: 90},
		})
		if !res.Restored || res.Session.ProjectName != "Smith house" || res.Session.Step != "preview" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.Deferred == nil || res.Deferred.Format != entities.FormatPDF || res.Deferred.Total != 90 {
			t.Fatalf("unexpected deferral: %+v", res.Deferred)
		}
	})

	t.Run("no deferral stays nil", func(t *testing.T) {
		res := FromRestoreResult(usecase.RestoreResult{Session: session.New(nil)})
		if res.Deferred != nil || res.Restored {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}
