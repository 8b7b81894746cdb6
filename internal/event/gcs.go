package event

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSFetcher fetches objects from Google Cloud Storage. The client is
// constructed by the caller and injected; nothing here is process-global.
type GCSFetcher struct {
	Client *storage.Client
}

// Fetch opens a reader on the object and reports its size from the object
// attributes. The caller closes the reader.
func (g *GCSFetcher) Fetch(ctx context.Context, bucket, name string) (io.ReadCloser, int64, error) {
	obj := g.Client.Bucket(bucket).Object(name)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("object attrs %s/%s: %w", bucket, name, err)
	}

	r, err := obj.NewReader(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("open object %s/%s: %w", bucket, name, err)
	}
	return r, attrs.Size, nil
}
