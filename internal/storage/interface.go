package storage

import (
	"context"
	"io"
)

// ObjectInfo describes a stored object. PublicID is the backend's opaque
// identifier used for later deletion; callers must not parse it.
type ObjectInfo struct {
	URL         string `json:"url"`
	PublicID    string `json:"public_id"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// DeleteOutcome classifies the result of a single delete.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted  DeleteOutcome = "deleted"
	DeleteOutcomeNotFound DeleteOutcome = "not_found"
	DeleteOutcomeFailed   DeleteOutcome = "failed"
)

type DeleteResult struct {
	PublicID string        `json:"public_id"`
	Outcome  DeleteOutcome `json:"outcome"`
}

// File is an incoming upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ObjectStorage is the gateway in front of the file backend. A missing object
// on delete is reported as DeleteOutcomeNotFound, not an error: deleting what
// is already gone is a success for every caller we have.
type ObjectStorage interface {
	Upload(ctx context.Context, file File, folder string) (*ObjectInfo, error)
	UploadMany(ctx context.Context, files []File, folder string) ([]ObjectInfo, error)
	Delete(ctx context.Context, publicID string) (DeleteResult, error)
	DeleteMany(ctx context.Context, publicIDs []string) ([]DeleteResult, error)
}
