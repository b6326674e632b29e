package modelstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultPresignTTL = 15 * time.Minute

// S3Config configures an S3Resolver. Endpoint and PathStyle allow
// S3-compatible stores such as MinIO.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string // optional, falls back to the default credential chain
	SecretAccessKey string
	PresignTTL      time.Duration
}

// S3Resolver hands out presigned GET URLs for models stored in a bucket.
// The object key is the model path without its leading slash.
type S3Resolver struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewS3Resolver builds an S3Resolver from cfg.
func NewS3Resolver(ctx context.Context, cfg S3Config) (*S3Resolver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &S3Resolver{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

// ResolveURL presigns a GET for the model object.
func (r *S3Resolver) ResolveURL(ctx context.Context, modelPath string) (string, error) {
	if isAbsoluteURL(modelPath) {
		return modelPath, nil
	}
	key := strings.TrimLeft(modelPath, "/")
	out, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) {
		po.Expires = r.ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign model %s: %w", key, err)
	}
	return out.URL, nil
}
