package routes

import (
	"buildquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathSessions  = "/sessions"
	PathExports   = "/exports"
	PathUnits     = "/units"
)

func addEstimatingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, sessionHandler *handlers.SessionHandler, exportHandler *handlers.ExportHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("/snapshot", sessionHandler.SnapshotSession)
		sessions.POST("/restore", sessionHandler.RestoreSession)
		sessions.POST("/complete", sessionHandler.CompleteSession)
	}

	rg.POST(PathExports, exportHandler.ExportEstimate)
	rg.GET(PathUnits, exportHandler.ListUnits)
}
