package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps objects on the local filesystem for development and
// testing without cloud credentials. Files are served back by the HTTP layer
// under /files/.
type LocalStorage struct {
	baseURL string
	dir     string
}

func NewLocalStorage(baseURL, dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseURL: strings.TrimRight(baseURL, "/"), dir: dir}, nil
}

// Dir returns the directory served by the HTTP file handler.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Upload(ctx context.Context, file File, folder string) (*ObjectInfo, error) {
	key := filepath.ToSlash(filepath.Join(folder, uuid.New().String()+"_"+filepath.Base(file.Name)))
	fullPath := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder for %s: %w", key, err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer out.Close()

	size, err := io.Copy(out, file.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to write file %s: %w", key, err)
	}

	return &ObjectInfo{
		URL:         fmt.Sprintf("%s/files/%s", s.baseURL, key),
		PublicID:    key,
		Filename:    file.Name,
		Size:        size,
		ContentType: file.ContentType,
	}, nil
}

func (s *LocalStorage) UploadMany(ctx context.Context, files []File, folder string) ([]ObjectInfo, error) {
	infos := make([]ObjectInfo, 0, len(files))
	for _, f := range files {
		info, err := s.Upload(ctx, f, folder)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

func (s *LocalStorage) Delete(ctx context.Context, publicID string) (DeleteResult, error) {
	fullPath, err := s.resolve(publicID)
	if err != nil {
		return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeFailed}, err
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeNotFound}, nil
		}
		return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeFailed}, fmt.Errorf("failed to delete %s: %w", publicID, err)
	}
	return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeDeleted}, nil
}

func (s *LocalStorage) DeleteMany(ctx context.Context, publicIDs []string) ([]DeleteResult, error) {
	results := make([]DeleteResult, 0, len(publicIDs))
	for _, id := range publicIDs {
		res, err := s.Delete(ctx, id)
		if err != nil {
			res = DeleteResult{PublicID: id, Outcome: DeleteOutcomeFailed}
		}
		results = append(results, res)
	}
	return results, nil
}

// resolve maps a public id onto the upload directory, rejecting keys that
// escape it.
func (s *LocalStorage) resolve(publicID string) (string, error) {
	fullPath := filepath.Join(s.dir, filepath.FromSlash(publicID))
	rel, err := filepath.Rel(s.dir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid object key: %s", publicID)
	}
	return fullPath, nil
}
