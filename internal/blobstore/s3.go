// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

const defaultRegion = "us-east-1"

// S3Store implements [Store] on a single S3 bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	transfers *transfers
	logger    *logger.Logger
}

// NewS3Store builds an S3 client from cfg. A custom endpoint together with
// path style addressing targets MinIO and similar services. Static
// credentials are used when both key parts are set; otherwise the default
// AWS credential chain applies. optFns are applied to the S3 client options
// last.
func NewS3Store(ctx context.Context, cfg config.ClientBlobStore, log *logger.Logger, optFns ...func(*s3.Options)) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket required", models.ErrInvalidConfig)
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// some S3-compatible services reject aws-chunked request bodies
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		for _, fn := range optFns {
			fn(o)
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    region,
		transfers: newTransfers(),
		logger:    log,
	}, nil
}

// Bucket implements [Store].
func (s *S3Store) Bucket() string { return s.bucket }

// Region implements [Store].
func (s *S3Store) Region() string { return s.region }

// Upload implements [Store].
func (s *S3Store) Upload(ctx context.Context, data []byte, contentType, key string) error {
	ctx, finish := s.transfers.start(ctx)
	defer finish()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Err(err).Str("func", "*S3Store.Upload").Str("key", key).Msg("error uploading object")
		return mapS3Error(err)
	}

	s.logger.Debug().Str("func", "*S3Store.Upload").Str("key", key).Int("size", len(data)).Msg("uploaded object")
	return nil
}

// Download implements [Store].
func (s *S3Store) Download(ctx context.Context, key string) ([]byte, error) {
	ctx, finish := s.transfers.start(ctx)
	defer finish()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		mapped := mapS3Error(err)
		if !errors.Is(mapped, models.ErrNotFound) {
			s.logger.Err(err).Str("func", "*S3Store.Download").Str("key", key).Msg("error downloading object")
		}
		return nil, mapped
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.Err(err).Str("func", "*S3Store.Download").Str("key", key).Msg("error reading object body")
		return nil, mapS3Error(err)
	}

	return data, nil
}

// Delete implements [Store].
func (s *S3Store) Delete(ctx context.Context, key string) error {
	ctx, finish := s.transfers.start(ctx)
	defer finish()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		mapped := mapS3Error(err)
		if errors.Is(mapped, models.ErrNotFound) {
			return nil
		}
		s.logger.Err(err).Str("func", "*S3Store.Delete").Str("key", key).Msg("error deleting object")
		return mapped
	}

	return nil
}

// Reset implements [Store].
func (s *S3Store) Reset() {
	if n := s.transfers.cancelAll(); n > 0 {
		s.logger.Info().Str("func", "*S3Store.Reset").Int("cancelled", n).Msg("cancelled in-flight transfers")
	}
}

// mapS3Error translates an SDK error into the SDK error taxonomy. Context
// errors are kept in the chain so callers can tell a cancellation apart.
func mapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", models.ErrNotFound, err)
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
	}

	return fmt.Errorf("%w: %v", models.ErrRequestFailed, err)
}
