package routes

import (
	"log"
	"os"
	"strconv"

	_ "buildquote/docs" // This will be auto-generated
	"buildquote/internal/adapter/http/handlers"
	repository2 "buildquote/internal/adapter/persistence/repository"
	"buildquote/internal/domain/entities"
	"buildquote/internal/infrastructure/catalog"
	"buildquote/internal/infrastructure/database"
	"buildquote/internal/infrastructure/render"
	"buildquote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	snapshotRepo := repository2.NewSnapshotDynamoRepository(ddb)

	unitCatalog, err := catalog.NewHTTPUnitCatalog(os.Getenv("UNIT_CATALOG_URL"))
	if err != nil {
		log.Fatalf("Unit catalog not configured: %v", err)
	}
	unitsUseCase := usecase.NewUnitsUseCase(unitCatalog)

	renderGateway, err := render.NewHTTPRenderGateway(os.Getenv("RENDER_SERVICE_URL"))
	if err != nil {
		log.Fatalf("Render service not configured: %v", err)
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, unitsUseCase)
	exportUseCase := usecase.NewExportUseCase(renderGateway, unitsUseCase)
	reconciler := usecase.NewSessionReconciler(snapshotRepo, unitsUseCase, entities.DefaultSectionLabels)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	sessionHandler := handlers.NewSessionHandler(reconciler)
	exportHandler := handlers.NewExportHandler(exportUseCase, unitsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatingRoutes(v1, estimateHandler, sessionHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
