package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildquote/internal/adapter/http/handlers/mocks"
	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/session"
	"buildquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionHandler_SnapshotSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/snapshot", h.SnapshotSession)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/snapshot", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/snapshot", bytes.NewBufferString(`{"project_name":"Smith house"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/snapshot", bytes.NewBufferString(`{"key":"sess-1","items":[{"description":"  "}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty snapshot maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		rec.EXPECT().Snapshot(gomock.Any(), "sess-1", gomock.Any()).Return(usecase.ErrEmptySnapshot)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/snapshot", bytes.NewBufferString(`{"key":"sess-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		rec.EXPECT().Snapshot(gomock.Any(), "sess-1", gomock.AssignableToTypeOf(entities.GuestSessionSnapshot{})).DoAndReturn(
			func(_ context.Context, _ string, snap entities.GuestSessionSnapshot) error {
				if snap.ProjectName != "Smith house" || len(snap.LineItems) != 1 || snap.Format != entities.FormatPDF {
					t.Fatalf("unexpected snapshot: %+v", snap)
				}
				return nil
			},
		)

		body := `{
			"key": "sess-1",
			"project_name": "Smith house",
			"items": [{"id": "li-1", "description": "Drywall", "quantity": 2, "unit": "m²", "unit_price": 45}],
			"total": 90,
			"format": "pdf"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/snapshot", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestSessionHandler_RestoreSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/restore", h.RestoreSession)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/restore", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("catalog wait failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		rec.EXPECT().Restore(gomock.Any(), "sess-1", true).
			Return(usecase.RestoreResult{Session: session.New(nil)}, usecase.ErrUnitCatalogUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/restore", bytes.NewBufferString(`{"key":"sess-1","restore":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("restored session with deferred export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		sess := session.New(nil)
		sess.ProjectName = "Smith house"
		sess.AddItem("Drywall", 2, "m²", 45)
		sess.Step = session.StepPreview

		rec.EXPECT().Restore(gomock.Any(), "sess-1", true).Return(usecase.RestoreResult{
			Session:  sess,
			Restored: true,
			Deferred: &usecase.DeferredExport{Format: entities.FormatPDF, Total: 90},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/restore", bytes.NewBufferString(`{"key":"sess-1","restore":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Restored bool `json:"restored"`
			Session  struct {
				ProjectName string `json:"project_name"`
				Step        string `json:"step"`
			} `json:"session"`
			Deferred *struct {
				Format string  `json:"format"`
				Total  float64 `json:"total"`
			} `json:"deferred"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if !body.Restored || body.Session.ProjectName != "Smith house" || body.Session.Step != "preview" {
			t.Fatalf("unexpected response: %+v", body)
		}
		if body.Deferred == nil || body.Deferred.Format != "pdf" || body.Deferred.Total != 90 {
			t.Fatalf("unexpected deferral: %+v", body.Deferred)
		}
	})

	t.Run("discarded snapshot carries the notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		rec.EXPECT().Restore(gomock.Any(), "sess-1", true).Return(usecase.RestoreResult{
			Session: session.New(nil),
			Notice:  usecase.NoticeSnapshotDiscarded,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/restore", bytes.NewBufferString(`{"key":"sess-1","restore":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Restored bool   `json:"restored"`
			Notice   string `json:"notice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Restored || body.Notice != usecase.NoticeSnapshotDiscarded {
			t.Fatalf("unexpected response: %+v", body)
		}
	})
}

func TestSessionHandler_CompleteSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *SessionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions/complete", h.CompleteSession)
		return r
	}

	t.Run("missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/complete", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockISessionReconciler(ctrl)
		r := newRouter(NewSessionHandler(rec))

		rec.EXPECT().Complete(gomock.Any(), "sess-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/complete", bytes.NewBufferString(`{"key":"sess-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
