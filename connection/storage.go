package connection

import (
	"context"
	"festops/storage"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

func StorageConnection() (*storage.BucketStore, error) {
	bucketName := os.Getenv("FIREBASE_BUCKET")
	if bucketName == "" {
		return nil, fmt.Errorf("FIREBASE_BUCKET is not set")
	}

	ctx := context.Background()
	opts := []option.ClientOption{}
	if credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, err
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, err
	}

	return storage.NewBucketStore(bucket, bucketName), nil
}
