package handlers

import (
	"errors"
	"net/http"

	request "buildquote/internal/adapter/http/dto/request"
	response "buildquote/internal/adapter/http/dto/response"
	"buildquote/internal/usecase"
	"buildquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles the guest→auth boundary: storing a snapshot before
// the auth redirect and consuming it afterwards.
type SessionHandler struct {
	reconciler usecase.ISessionReconciler
}

func NewSessionHandler(rec usecase.ISessionReconciler) *SessionHandler {
	return &SessionHandler{reconciler: rec}
}

// SnapshotSession serializes guest editing state before authentication.
func (h *SessionHandler) SnapshotSession(c *gin.Context) {
	var payload request.SnapshotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	snap, err := payload.ToSnapshot()
	if err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	if err := h.reconciler.Snapshot(c.Request.Context(), payload.ResolveKey(), snap); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreSession consumes the stored snapshot after authentication. The
// restore marker in the payload is the explicit opt-in; without it a stale
// snapshot is discarded and a fresh session is returned.
func (h *SessionHandler) RestoreSession(c *gin.Context) {
	var payload request.RestoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	result, err := h.reconciler.Restore(c.Request.Context(), payload.ResolveKey(), payload.Restore)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRestoreResult(result))
}

// CompleteSession clears the snapshot once the deferred action succeeded.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	var payload request.RestoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	if err := h.reconciler.Complete(c.Request.Context(), payload.ResolveKey()); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionKey), errors.Is(err, usecase.ErrEmptySnapshot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnitCatalogUnavailable):
		return pkg.NewDomainErrorSimple("UNIT_CATALOG_UNAVAILABLE", "Unit catalog is unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
