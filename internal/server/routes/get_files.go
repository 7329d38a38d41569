package routes

import (
	"net/http"

	"netrca/internal/server/middleware"
	"netrca/internal/storage"
	"netrca/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ListFilesHandler lists uploaded document files in object storage, filtered
// by an optional key prefix.
func ListFilesHandler(c echo.Context) error {
	type listFilesResponse struct {
		Message string   `json:"message"`
		Files   []string `json:"files"`
	}

	prefix := c.QueryParam("prefix")
	if prefix == "" {
		prefix = "documents/"
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	keys, err := storage.ListFilesWithPrefix(ctx, app.S3, prefix)
	if err != nil {
		logger.Error("Failed to list files", "err", err)
		return c.JSON(http.StatusInternalServerError, listFilesResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, listFilesResponse{
		Message: "Files listed",
		Files:   keys,
	})
}
