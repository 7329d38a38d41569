package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"netrca/internal/util"
	"netrca/pkg/ingest"
	"netrca/pkg/loader"
	"netrca/pkg/loader/s3"
	"netrca/pkg/logger"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// QueueDocumentMsg is one document reference on the index queue. FileKey
// addresses the raw text in object storage; Source is the original source
// name used for authority scoring.
type QueueDocumentMsg struct {
	DocumentID string `json:"document_id"`
	Source     string `json:"source"`
	FileKey    string `json:"file_key"`
	MaxTokens  int    `json:"max_tokens"`
}

// QueueIndexMsg is the payload published to the index queue: a batch of
// documents to run through the ingestion pipeline together.
type QueueIndexMsg struct {
	Message   string             `json:"message"`
	Documents []QueueDocumentMsg `json:"documents"`
}

// ProcessIndexMessage loads the referenced documents from object storage and
// runs them through the ingestion pipeline into the graph.
func ProcessIndexMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	pipeline *ingest.Pipeline,
	msg string,
) error {
	data := new(QueueIndexMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}

	if len(data.Documents) == 0 {
		logger.Warn("[Queue] Index message carries no documents")
		return nil
	}

	s3Bucket := util.GetEnvString("AWS_BUCKET", "netrca")
	s3L := s3.NewS3DocumentLoaderWithClient(s3Bucket, s3Client)

	docs := make([]loader.Document, 0, len(data.Documents))
	for _, d := range data.Documents {
		maxTokens := d.MaxTokens
		if maxTokens <= 0 {
			maxTokens = 500
		}
		docs = append(docs, loader.NewDocument(loader.NewDocumentParams{
			ID:        d.DocumentID,
			Source:    d.Source,
			Key:       d.FileKey,
			MaxTokens: maxTokens,
			Loader:    s3L,
		}))
	}

	report, err := pipeline.Process(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to index documents:\n%w", err)
	}

	logger.Info("[Queue] Indexed documents",
		"documents", report.Documents,
		"units", report.Units,
		"duplicate_units", report.DuplicateUnits,
		"nodes", report.Nodes,
		"edges", report.Edges,
	)
	return nil
}
