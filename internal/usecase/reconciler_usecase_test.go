package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/session"
	mock_interfaces "buildquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func snapshotFixture() entities.GuestSessionSnapshot {
	tpl := entities.NewTemplateData(nil)
	tpl.TaxEnabled = true
	tpl.TaxRatePercent = 10
	return entities.GuestSessionSnapshot{
		ProjectName:   "Smith house",
		SelectedTrade: "drywall",
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Drywall", Quantity: 2, Unit: "m²", UnitPrice: 45},
		},
		TemplateData: tpl,
		Total:        99,
	}
}

func TestSessionReconciler_Snapshot(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		r := NewSessionReconciler(nil, nil, nil)
		err := r.Snapshot(context.Background(), "  ", snapshotFixture())
		if !errors.Is(err, ErrInvalidSessionKey) {
			t.Fatalf("expected ErrInvalidSessionKey, got %v", err)
		}
	})

	t.Run("empty snapshot rejected", func(t *testing.T) {
		r := NewSessionReconciler(nil, nil, nil)
		err := r.Snapshot(context.Background(), "sess-1", entities.GuestSessionSnapshot{})
		if !errors.Is(err, ErrEmptySnapshot) {
			t.Fatalf("expected ErrEmptySnapshot, got %v", err)
		}
	})

	t.Run("project name alone is enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Set(gomock.Any(), "sess-1", gomock.Any()).Return(nil)

		err := r.Snapshot(context.Background(), "sess-1", entities.GuestSessionSnapshot{ProjectName: "Solo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stores serialized state and stamps created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Set(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload []byte) error {
				var snap entities.GuestSessionSnapshot
				if err := json.Unmarshal(payload, &snap); err != nil {
					t.Fatalf("payload not parseable: %v", err)
				}
				if snap.ProjectName != "Smith house" || len(snap.LineItems) != 1 {
					t.Fatalf("unexpected payload: %+v", snap)
				}
				if snap.CreatedAt.IsZero() {
					t.Fatalf("expected created at stamp")
				}
				return nil
			},
		)

		if err := r.Snapshot(context.Background(), " sess-1 ", snapshotFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("existing created at preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		stamped := snapshotFixture()
		stamped.CreatedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		store.EXPECT().Set(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload []byte) error {
				var snap entities.GuestSessionSnapshot
				if err := json.Unmarshal(payload, &snap); err != nil {
					t.Fatalf("payload not parseable: %v", err)
				}
				if !snap.CreatedAt.Equal(stamped.CreatedAt) {
					t.Fatalf("created at overwritten: %v", snap.CreatedAt)
				}
				return nil
			},
		)

		if err := r.Snapshot(context.Background(), "sess-1", stamped); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Set(gomock.Any(), "sess-1", gomock.Any()).Return(errors.New("db"))

		err := r.Snapshot(context.Background(), "sess-1", snapshotFixture())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSessionReconciler_Restore(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		r := NewSessionReconciler(nil, nil, nil)
		_, err := r.Restore(context.Background(), "", true)
		if !errors.Is(err, ErrInvalidSessionKey) {
			t.Fatalf("expected ErrInvalidSessionKey, got %v", err)
		}
	})

	t.Run("no marker discards and starts fresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Remove(gomock.Any(), "sess-1").Return(nil)

		res, err := r.Restore(context.Background(), "sess-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Restored || res.Notice != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Session == nil || res.Session.HasItems() || res.Session.Step != session.StepProject {
			t.Fatalf("expected fresh session, got %+v", res.Session)
		}
	})

	t.Run("no stored snapshot starts fresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, nil)

		res, err := r.Restore(context.Background(), "sess-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Restored || res.Session == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("corrupt snapshot discarded with notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return([]byte("{not json"), nil)
		store.EXPECT().Remove(gomock.Any(), "sess-1").Return(nil)

		res, err := r.Restore(context.Background(), "sess-1", true)
		if err != nil {
			t.Fatalf("expected non-fatal handling, got %v", err)
		}
		if res.Restored {
			t.Fatalf("expected fresh session")
		}
		if res.Notice != NoticeSnapshotDiscarded {
			t.Fatalf("unexpected notice: %q", res.Notice)
		}
		if res.Session == nil || res.Session.HasItems() {
			t.Fatalf("expected empty session, got %+v", res.Session)
		}
	})

	t.Run("round trip restores the editing state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		snap := snapshotFixture()
		payload, _ := json.Marshal(snap)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(payload, nil)

		res, err := r.Restore(context.Background(), "sess-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Restored || res.Deferred != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
		s := res.Session
		if s.ProjectName != "Smith house" || s.SelectedTrade != "drywall" {
			t.Fatalf("unexpected session: %+v", s)
		}
		if len(s.Items) != 1 || s.Items[0].ID != "li-1" {
			t.Fatalf("unexpected items: %+v", s.Items)
		}
		if !s.Template.TaxEnabled || s.Template.TaxRatePercent != 10 {
			t.Fatalf("template not restored: %+v", s.Template)
		}
	})

	t.Run("wizard step follows data richness", func(t *testing.T) {
		cases := []struct {
			name string
			snap entities.GuestSessionSnapshot
			want session.WizardStep
		}{
			{name: "items jump to preview", snap: snapshotFixture(), want: session.StepPreview},
			{name: "name only lands on items", snap: entities.GuestSessionSnapshot{ProjectName: "Solo"}, want: session.StepItems},
			{name: "nothing starts at project", snap: entities.GuestSessionSnapshot{SelectedTrade: "drywall"}, want: session.StepProject},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				store := mock_interfaces.NewMockISnapshotStore(ctrl)
				r := NewSessionReconciler(store, nil, nil)

				payload, _ := json.Marshal(tc.snap)
				store.EXPECT().Get(gomock.Any(), "sess-1").Return(payload, nil)

				res, err := r.Restore(context.Background(), "sess-1", true)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Session.Step != tc.want {
					t.Fatalf("expected step %s, got %s", tc.want, res.Session.Step)
				}
			})
		}
	})

	t.Run("deferred export re-armed after catalog wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, unitsOver(ctrl, catalogFixture, nil), nil)

		snap := snapshotFixture()
		snap.Format = entities.FormatPDF
		payload, _ := json.Marshal(snap)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(payload, nil)

		res, err := r.Restore(context.Background(), "sess-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Deferred == nil || res.Deferred.Format != entities.FormatPDF || res.Deferred.Total != 99 {
			t.Fatalf("unexpected deferral: %+v", res.Deferred)
		}
	})

	t.Run("catalog wait failure keeps the restored session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		units := unitsOver(ctrl, nil, nil)
		units.pollInterval = time.Millisecond
		units.waitTimeout = 5 * time.Millisecond
		r := NewSessionReconciler(store, units, nil)

		snap := snapshotFixture()
		snap.Format = entities.FormatPDF
		payload, _ := json.Marshal(snap)
		store.EXPECT().Get(gomock.Any(), "sess-1").Return(payload, nil)

		res, err := r.Restore(context.Background(), "sess-1", true)
		if !errors.Is(err, ErrUnitCatalogUnavailable) {
			t.Fatalf("expected ErrUnitCatalogUnavailable, got %v", err)
		}
		if res.Session == nil || !res.Restored || res.Deferred != nil {
			t.Fatalf("expected restored session without deferral, got %+v", res)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, errors.New("db"))

		_, err := r.Restore(context.Background(), "sess-1", true)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSessionReconciler_Complete(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		r := NewSessionReconciler(nil, nil, nil)
		if err := r.Complete(context.Background(), ""); !errors.Is(err, ErrInvalidSessionKey) {
			t.Fatalf("expected ErrInvalidSessionKey, got %v", err)
		}
	})

	t.Run("clears the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISnapshotStore(ctrl)
		r := NewSessionReconciler(store, nil, nil)

		store.EXPECT().Remove(gomock.Any(), "sess-1").Return(nil)

		if err := r.Complete(context.Background(), " sess-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
