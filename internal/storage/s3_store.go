package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"jira_tracker/internal/tracker"
)

// S3API is the part of *s3.Client the store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3OptionsStore implements OptionsStore using AWS S3
type S3OptionsStore struct {
	client     S3API
	bucketName string
}

// NewS3OptionsStore creates a new S3OptionsStore instance
func NewS3OptionsStore(client S3API, bucketName string) *S3OptionsStore {
	return &S3OptionsStore{
		client:     client,
		bucketName: bucketName,
	}
}

// Load reads the options of the named tracker
func (s *S3OptionsStore) Load(ctx context.Context, name string) (tracker.Options, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.getKey(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to get options from S3: %w", err)
	}
	defer result.Body.Close()

	var options tracker.Options
	if err := json.NewDecoder(result.Body).Decode(&options); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	if options == nil {
		options = tracker.Options{}
	}
	return options, nil
}

// Save writes the options of the named tracker
func (s *S3OptionsStore) Save(ctx context.Context, name string, options tracker.Options) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.getKey(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to store options in S3: %w", err)
	}

	return nil
}

// getKey generates the S3 key for a tracker's options
func (s *S3OptionsStore) getKey(name string) string {
	return fmt.Sprintf("trackers/%s.json", name)
}
