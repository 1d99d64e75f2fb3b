package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GCSStorage stores objects in a Google Cloud Storage bucket through the
// Firebase SDK. Object keys are uuid-prefixed to avoid collisions between
// uploads that share a filename.
type GCSStorage struct {
	bucket *gcs.BucketHandle
	name   string
}

func NewGCSStorage(ctx context.Context, bucketName, credentialsFile string) (*GCSStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketName, err)
	}

	return &GCSStorage{bucket: bucket, name: bucketName}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, file File, folder string) (*ObjectInfo, error) {
	key := path.Join(folder, uuid.New().String()+"_"+file.Name)

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = file.ContentType
	size, err := io.Copy(w, file.Reader)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	// Objects are served publicly; the bucket is dedicated to published media.
	if err := s.bucket.Object(key).ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL on object %s: %w", key, err)
	}

	return &ObjectInfo{
		URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.name, key),
		PublicID:    key,
		Filename:    file.Name,
		Size:        size,
		ContentType: file.ContentType,
	}, nil
}

func (s *GCSStorage) UploadMany(ctx context.Context, files []File, folder string) ([]ObjectInfo, error) {
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

func (s *GCSStorage) Delete(ctx context.Context, publicID string) (DeleteResult, error) {
	err := s.bucket.Object(publicID).Delete(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeNotFound}, nil
		}
		return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeFailed}, fmt.Errorf("failed to delete object %s: %w", publicID, err)
	}
	return DeleteResult{PublicID: publicID, Outcome: DeleteOutcomeDeleted}, nil
}

func (s *GCSStorage) DeleteMany(ctx context.Context, publicIDs []string) ([]DeleteResult, error) {
	results := make([]DeleteResult, 0, len(publicIDs))
	for _, id := range publicIDs {
		res, err := s.Delete(ctx, id)
		if err != nil {
			// Per-item failures are recorded, not fatal for the batch.
			res = DeleteResult{PublicID: id, Outcome: DeleteOutcomeFailed}
		}
		results = append(results, res)
	}
	return results, nil
}
