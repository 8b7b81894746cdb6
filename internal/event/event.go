// Package event handles storage object-created notifications: it fetches the
// uploaded object, runs the analysis pipeline, and persists one document per
// object into a document store.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tunelab/tunescope/internal/analysis"
	"github.com/tunelab/tunescope/internal/audio"
)

// Event is a storage object-created notification.
type Event struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}

// ObjectFetcher retrieves a stored object's content and size.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, name string) (io.ReadCloser, int64, error)
}

// DocumentStore persists one document under an identifier, overwriting any
// previous document with the same identifier.
type DocumentStore interface {
	Put(ctx context.Context, id string, doc map[string]any) error
}

// Handler processes object-created events. Both collaborators are explicit
// dependencies supplied by the caller; the handler holds no global state.
type Handler struct {
	Objects ObjectFetcher
	Docs    DocumentStore
	Options audio.LoadOptions
}

// HandleObjectCreated analyzes a newly uploaded object and stores its
// analysis document. Objects without a recognized audio extension are
// ignored: no fetch, no analysis, no store write. On failure a best-effort
// error document is stored under the same key and the error is returned so
// the invoking platform can decide on retry.
func (h *Handler) HandleObjectCreated(ctx context.Context, ev Event) error {
	if !audio.Recognized(ev.Name) {
		return nil
	}

	result, size, err := h.analyzeObject(ctx, ev)
	if err != nil {
		h.storeErrorDocument(ctx, ev, err)
		return fmt.Errorf("process %s: %w", ev.Name, err)
	}

	doc, err := resultDocument(result)
	if err != nil {
		h.storeErrorDocument(ctx, ev, err)
		return fmt.Errorf("process %s: %w", ev.Name, err)
	}
	doc["file_name"] = ev.Name
	doc["bucket_name"] = ev.Bucket
	doc["processed_at"] = time.Now().UTC().Format(time.RFC3339)
	doc["file_size_bytes"] = size

	if err := h.Docs.Put(ctx, DocumentID(ev.Name), doc); err != nil {
		return fmt.Errorf("store analysis for %s: %w", ev.Name, err)
	}
	return nil
}

// analyzeObject downloads the object to a temporary file and runs the
// pipeline over it. The temporary file is removed on every exit path.
func (h *Handler) analyzeObject(ctx context.Context, ev Event) (*analysis.Result, int64, error) {
	rc, size, err := h.Objects.Fetch(ctx, ev.Bucket, ev.Name)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch object: %w", err)
	}
	defer rc.Close()

	tmp, err := os.CreateTemp("", "tunescope-*"+filepath.Ext(ev.Name))
	if err != nil {
		return nil, 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, rc)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, 0, fmt.Errorf("download object: %w", err)
	}

	sig, err := audio.Load(tmp.Name(), h.Options)
	if err != nil {
		return nil, 0, err
	}

	result, err := analysis.Analyze(sig, nil)
	if err != nil {
		return nil, 0, err
	}
	return result, size, nil
}

// storeErrorDocument records the failure so it survives even if the platform
// drops the returned error. Best effort: a store failure here is not
// allowed to mask the original one.
func (h *Handler) storeErrorDocument(ctx context.Context, ev Event, cause error) {
	_ = h.Docs.Put(ctx, DocumentID(ev.Name), map[string]any{
		"file_name":    ev.Name,
		"error":        cause.Error(),
		"processed_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// resultDocument flattens an analysis result into a document map.
func resultDocument(result *analysis.Result) (map[string]any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

var docIDReplacer = strings.NewReplacer("/", "_", ".", "_")

// DocumentID derives the document key from an object name: path separators
// and dots become underscores.
func DocumentID(name string) string {
	return docIDReplacer.Replace(name)
}
