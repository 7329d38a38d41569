package middleware

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"netrca/pkg/graph"
	"netrca/pkg/ingest"
)

// App carries the process-wide dependencies handlers work with: the in-memory
// graph store, the entity registry bound to it, the ingestion pipeline, the
// queue channel for async indexing, and the S3 client.
type App struct {
	Store        *graph.Store
	Registry     *graph.Registry
	Pipeline     *ingest.Pipeline
	Queue        *amqp091.Channel
	S3           *s3.Client
	MasterAPIKey string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
