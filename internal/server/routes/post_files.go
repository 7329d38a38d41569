package routes

import (
	"net/http"

	"netrca/internal/server/middleware"
	"netrca/internal/storage"
	"netrca/pkg/logger"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UploadFilesHandler stores raw document files in object storage
// (multipart/form-data). The returned file keys can then be indexed through
// the documents endpoint.
func UploadFilesHandler(c echo.Context) error {
	type uploadFilesResponse struct {
		Message  string            `json:"message"`
		FileKeys map[string]string `json:"file_keys,omitempty"`
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadFilesResponse{
			Message: "Invalid request body",
		})
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		return c.JSON(http.StatusBadRequest, uploadFilesResponse{
			Message: "No files in request",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	keys := make(map[string]string, len(uploads))
	for _, file := range uploads {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, uploadFilesResponse{
				Message: "Invalid request body",
			})
		}
		defer src.Close()

		fID, err := gonanoid.New()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, uploadFilesResponse{
				Message: "Internal server error",
			})
		}
		key, err := storage.PutFile(ctx, app.S3, "documents", file.Filename, fID, src)
		if err != nil {
			logger.Error("Failed to upload file", "err", err)
			return c.JSON(http.StatusInternalServerError, uploadFilesResponse{
				Message: "Internal server error",
			})
		}
		keys[file.Filename] = key
	}

	return c.JSON(http.StatusOK, uploadFilesResponse{
		Message:  "Files uploaded",
		FileKeys: keys,
	})
}
