package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
)

const (
	uploadsPrefix = "uploads"
	resultsPrefix = "results"
)

// Service owns the artifact layout on durable storage: uploaded source
// documents under uploads/<workflow_id>/<filename> and one result JSON blob
// per workflow at results/<workflow_id>.json. Callers reference artifacts by
// workflow identifier and original filename only, never by raw path.
type Service struct {
	Driver StorageDriver
}

func NewService(driver StorageDriver) *Service {
	return &Service{Driver: driver}
}

// SaveUpload stores an uploaded source document for a workflow, preserving
// the original filename and overwriting any prior file of the same name.
// Returns the stored location.
func (s *Service) SaveUpload(ctx context.Context, workflowID, originalFilename string, content io.Reader) (string, error) {
	if workflowID == "" || originalFilename == "" {
		return "", &WriteError{WorkflowID: workflowID, Op: "save upload", Err: fmt.Errorf("workflow id and filename are required")}
	}

	// Strip any directory components so caller-supplied names cannot
	// escape the workflow's directory.
	filename := filepath.Base(originalFilename)
	key := path.Join(uploadsPrefix, workflowID, filename)

	if err := s.Driver.Save(ctx, key, content); err != nil {
		return "", &WriteError{WorkflowID: workflowID, Op: "save upload", Err: err}
	}

	location := s.Driver.Location(key)
	slog.InfoContext(ctx, "upload stored", "workflow_id", workflowID, "filename", filename, "location", location)
	return location, nil
}

// SaveResults serializes results as an indented JSON document and writes it
// to the workflow's result blob, replacing any prior version. Returns the
// stored location.
func (s *Service) SaveResults(ctx context.Context, workflowID string, results map[string]interface{}) (string, error) {
	if workflowID == "" {
		return "", &WriteError{WorkflowID: workflowID, Op: "save results", Err: fmt.Errorf("workflow id is required")}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", &WriteError{WorkflowID: workflowID, Op: "save results", Err: err}
	}

	key := resultsKey(workflowID)
	if err := s.Driver.Save(ctx, key, bytes.NewReader(data)); err != nil {
		return "", &WriteError{WorkflowID: workflowID, Op: "save results", Err: err}
	}

	location := s.Driver.Location(key)
	slog.InfoContext(ctx, "results stored", "workflow_id", workflowID, "location", location)
	return location, nil
}

// GetResults reads back and deserializes the workflow's result blob.
// Returns ErrResultsNotFound when no blob exists, and a ReadError when the
// blob is present but unreadable or malformed.
func (s *Service) GetResults(ctx context.Context, workflowID string) (map[string]interface{}, error) {
	reader, err := s.Driver.Open(ctx, resultsKey(workflowID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("workflow %q: %w", workflowID, ErrResultsNotFound)
		}
		return nil, &ReadError{WorkflowID: workflowID, Op: "get results", Err: err}
	}
	defer reader.Close()

	var results map[string]interface{}
	if err := json.NewDecoder(reader).Decode(&results); err != nil {
		return nil, &ReadError{WorkflowID: workflowID, Op: "get results", Err: err}
	}
	return results, nil
}

func resultsKey(workflowID string) string {
	return path.Join(resultsPrefix, workflowID+".json")
}
