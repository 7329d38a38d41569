package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netrca/internal/queue"
	mid "netrca/internal/server/middleware"
	"netrca/internal/storage"
	"netrca/internal/util"
	"netrca/pkg/graph"
	"netrca/pkg/ingest"
	"netrca/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := graph.NewStore()
	registry := graph.NewRegistry(store)

	pipeline, err := ingest.NewPipeline(ingest.NewPipelineParams{
		Store:             store,
		Registry:          registry,
		TokenEncoder:      util.GetEnvString("TOKEN_ENCODER", "cl100k_base"),
		ParallelDocuments: int(util.GetEnvNumeric("PARALLEL_DOCUMENTS", 2)),
		DedupeSeed:        int64(util.GetEnvNumeric("DEDUPE_SEED", 1)),
	})
	if err != nil {
		logger.Fatal("Failed to create ingestion pipeline", "err", err)
	}

	que := queue.Init()
	defer que.Close()
	ch, err := que.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}

	err = queue.SetupQueues(ch, []string{queue.IndexQueue})
	if err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	s3 := storage.NewS3Client(ctx)

	// The graph lives in this process, so the index consumer runs alongside
	// the API instead of in a separate worker.
	go func() {
		if err := queue.RunConsumer(ctx, que, s3, pipeline); err != nil {
			logger.Error("Consumer stopped", "err", err)
		}
	}()

	app := &mid.App{
		Store:        store,
		Registry:     registry,
		Pipeline:     pipeline,
		Queue:        ch,
		S3:           s3,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
