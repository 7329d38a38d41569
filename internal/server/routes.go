package server

import (
	"netrca/internal/server/middleware"
	"netrca/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Ingestion routes
	apiRoutes.POST("/documents", routes.IndexDocumentsHandler)
	apiRoutes.POST("/entities", routes.CreateEntityHandler)
	apiRoutes.POST("/relationships", routes.CreateRelationshipHandler)

	// Document file storage routes
	apiRoutes.POST("/files", routes.UploadFilesHandler)
	apiRoutes.GET("/files", routes.ListFilesHandler)

	// Graph query routes
	apiRoutes.GET("/nodes/:id", routes.GetNodeHandler)
	apiRoutes.GET("/edges/:id", routes.GetEdgeHandler)
	apiRoutes.GET("/path", routes.GetPathHandler)
	apiRoutes.GET("/stats", routes.GetStatsHandler)
}
