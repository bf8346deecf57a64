package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ObjectStore is the narrow contract the controllers depend on. The backing
// bucket is an external collaborator; nothing else about it is modeled.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

type BucketStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewBucketStore(bucket *gcs.BucketHandle, bucketName string) *BucketStore {
	return &BucketStore{bucket: bucket, bucketName: bucketName}
}

func (s *BucketStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (s *BucketStore) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path)
}

// ReportPhotoPath namespaces report uploads by uploader, report and category
// so one report's photos can never collide with another's.
func ReportPhotoPath(uploaderID uint, reportID uint, category string, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%d/%d/%s/%d-%s.%s",
		uploaderID, reportID, category, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func AvatarPath(userID uint, filename string) string {
	return fmt.Sprintf("%d/%s", userID, filepath.Base(filename))
}
