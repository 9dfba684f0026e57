package archive

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quill-ui/quill/internal/errors"
)

// s3Client is the subset of the S3 API the store uses.
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes snapshots to an S3 bucket.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := archive.NewS3Store(s3.NewFromConfig(cfg), "quill-snapshots", "prod/", 0)
type S3Store struct {
	client  s3Client
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Store creates an S3 snapshot store. prefix is prepended to
// object keys; maxSize bounds the serialized snapshot in bytes (0 = no
// limit).
func NewS3Store(client s3Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: maxSize,
	}
}

// Write uploads the snapshot and returns its object key.
func (s *S3Store) Write(ctx context.Context, snap *Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", errors.New("Q060").Wrap(err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", errors.New("Q061").
			WithDetail("Snapshot is " + sizeString(int64(len(data))) + ", limit is " + sizeString(s.maxSize))
	}

	key := s.prefix + snapshotName(snap)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"quill-project": snap.Project,
		},
	})
	if err != nil {
		return "", errors.New("Q060").Wrap(err)
	}
	return key, nil
}
