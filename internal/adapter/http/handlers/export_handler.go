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
	errInvalidExportPayload = pkg.NewDomainErrorSimple("INVALID_EXPORT_INPUT", "Invalid export payload", http.StatusBadRequest)
)

// ExportHandler renders the current session as a document and streams the
// blob back. Units are exposed here too since export is the operation gated
// on the catalog.
type ExportHandler struct {
	exports usecase.IExportUseCase
	units   usecase.IUnitsUseCase
}

func NewExportHandler(exports usecase.IExportUseCase, units usecase.IUnitsUseCase) *ExportHandler {
	return &ExportHandler{exports: exports, units: units}
}

// ExportEstimate composes and renders the session in the requested format.
func (h *ExportHandler) ExportEstimate(c *gin.Context) {
	var payload request.ExportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExportPayload.HTTPStatus, errInvalidExportPayload.ToHTTPError())
		return
	}

	sess, err := payload.Session.ToSession()
	if err != nil {
		c.JSON(errInvalidExportPayload.HTTPStatus, errInvalidExportPayload.ToHTTPError())
		return
	}

	blob, err := h.exports.Export(c.Request.Context(), sess, payload.Format)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// PDF is the only format the export path produces today; DOCX requests
	// are rejected upstream with ErrFormatDisabled.
	c.Data(http.StatusOK, "application/pdf", blob)
}

// ListUnits returns the unit catalog.
func (h *ExportHandler) ListUnits(c *gin.Context) {
	units, err := h.units.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNIT_CATALOG_UNAVAILABLE", "Unit catalog is unavailable", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnits(units))
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNothingToExport), errors.Is(err, usecase.ErrInvalidFormat):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormatDisabled):
		return pkg.NewDomainErrorSimple("FORMAT_DISABLED", "DOCX export is currently disabled", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrExportInFlight):
		return pkg.NewDomainErrorSimple("EXPORT_IN_FLIGHT", "An export is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnitCatalogUnavailable), errors.Is(err, usecase.ErrUnitCatalogEmpty):
		return pkg.NewDomainErrorSimple("UNIT_CATALOG_UNAVAILABLE", "Unit catalog is unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
