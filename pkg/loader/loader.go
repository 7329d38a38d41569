package loader

import "context"

// Document represents one technical document to be indexed into the knowledge
// graph. Source carries the original source name (filename, RFC id, URL) used
// for authority scoring; Key addresses the content through the configured
// ContentLoader.
//
// The actual bytes are retrieved lazily via the associated ContentLoader.
type Document struct {
	ID        string
	Source    string
	Key       string
	MaxTokens int
	Loader    ContentLoader
}

// ContentLoader retrieves the raw bytes of a document. Implementations exist
// for in-memory content and S3-backed object storage.
type ContentLoader interface {
	Load(ctx context.Context, doc Document) ([]byte, error)
}

// NewDocumentParams defines the input parameters for creating a Document.
type NewDocumentParams struct {
	ID        string
	Source    string
	Key       string
	MaxTokens int
	Loader    ContentLoader
}

// NewDocument creates a Document from the given parameters.
func NewDocument(params NewDocumentParams) Document {
	return Document{
		ID:        params.ID,
		Source:    params.Source,
		Key:       params.Key,
		MaxTokens: params.MaxTokens,
		Loader:    params.Loader,
	}
}

// Text loads the document content through its ContentLoader and returns it as
// a string.
func (d Document) Text(ctx context.Context) (string, error) {
	data, err := d.Loader.Load(ctx, d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BytesLoader is a ContentLoader serving fixed in-memory content. It is used
// for inline API ingestion and in tests.
type BytesLoader struct {
	Data []byte
}

// Load implements the ContentLoader interface.
func (b *BytesLoader) Load(ctx context.Context, doc Document) ([]byte, error) {
	return b.Data, nil
}
