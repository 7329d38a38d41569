package routes

import (
	"encoding/json"
	"net/http"

	"netrca/internal/queue"
	"netrca/internal/server/middleware"
	"netrca/internal/util"
	"netrca/pkg/ingest"
	"netrca/pkg/loader"
	"netrca/pkg/logger"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IndexDocumentsHandler ingests documents into the knowledge graph. Documents
// carrying inline text are processed synchronously; documents referencing an
// object-storage key are published to the index queue and processed by the
// consumer.
func IndexDocumentsHandler(c echo.Context) error {
	type documentBody struct {
		ID        string `json:"id"`
		Source    string `json:"source" validate:"required"`
		Text      string `json:"text"`
		FileKey   string `json:"file_key"`
		MaxTokens int    `json:"max_tokens"`
	}

	type indexDocumentsBody struct {
		Documents []documentBody `json:"documents" validate:"required,min=1,dive"`
	}

	type indexDocumentsResponse struct {
		Message string         `json:"message"`
		Report  *ingest.Report `json:"report,omitempty"`
		Queued  int            `json:"queued"`
	}

	data := new(indexDocumentsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, indexDocumentsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, indexDocumentsResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	var inline []loader.Document
	var queued []queue.QueueDocumentMsg

	for _, doc := range data.Documents {
		if doc.Text == "" && doc.FileKey == "" {
			return c.JSON(http.StatusBadRequest, indexDocumentsResponse{
				Message: "Each document needs either text or a file_key",
			})
		}

		id := doc.ID
		if id == "" {
			generated, err := gonanoid.New()
			if err != nil {
				logger.Error("Failed to generate document id", "err", err)
				return c.JSON(http.StatusInternalServerError, indexDocumentsResponse{
					Message: "Internal server error",
				})
			}
			id = generated
		}

		maxTokens := doc.MaxTokens
		if maxTokens <= 0 {
			maxTokens = 500
		}

		if doc.Text != "" {
			inline = append(inline, loader.NewDocument(loader.NewDocumentParams{
				ID:        id,
				Source:    doc.Source,
				MaxTokens: maxTokens,
				Loader:    &loader.BytesLoader{Data: []byte(doc.Text)},
			}))
			continue
		}

		queued = append(queued, queue.QueueDocumentMsg{
			DocumentID: id,
			Source:     doc.Source,
			FileKey:    doc.FileKey,
			MaxTokens:  maxTokens,
		})
	}

	if len(queued) > 0 {
		msg := queue.QueueIndexMsg{
			Message:   "Index documents",
			Documents: queued,
		}
		msgBytes, err := json.Marshal(msg)
		if err != nil {
			logger.Error("Failed to marshal index message", "err", err)
			return c.JSON(http.StatusInternalServerError, indexDocumentsResponse{
				Message: "Internal server error",
			})
		}
		err = util.RetryErr(3, func() error {
			return queue.PublishFIFO(app.Queue, queue.IndexQueue, msgBytes)
		})
		if err != nil {
			logger.Error("Failed to publish index message", "err", err)
			return c.JSON(http.StatusInternalServerError, indexDocumentsResponse{
				Message: "Internal server error",
			})
		}
	}

	var report *ingest.Report
	if len(inline) > 0 {
		var err error
		report, err = app.Pipeline.Process(ctx, inline)
		if err != nil {
			logger.Error("Failed to process documents", "err", err)
			return c.JSON(http.StatusInternalServerError, indexDocumentsResponse{
				Message: "Internal server error",
			})
		}
	}

	return c.JSON(http.StatusOK, indexDocumentsResponse{
		Message: "Documents accepted",
		Report:  report,
		Queued:  len(queued),
	})
}
