package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Config for the R2 evidence staging bucket
type Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	PublicURL       string
}

// Stager parks evidence files whose delivery to the crime API failed, so
// a police status change is never silently lossy. Staged objects are
// re-delivered out of band.
type Stager struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewStager creates the staging client.
// Returns nil if config is incomplete (staging disabled).
func NewStager(cfg Config) *Stager {
	if cfg.AccountID == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.BucketName == "" {
		log.Warn().Msg("R2 config incomplete, evidence staging disabled")
		return nil
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: endpoint,
		}, nil
	})

	r2Config, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.AccessKeySecret,
			"",
		)),
		config.WithRegion("auto"),
		config.WithEndpointResolverWithOptions(r2Resolver),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create R2 client config")
		return nil
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://pub-%s.r2.dev", cfg.AccountID)
	}

	log.Info().Str("bucket", cfg.BucketName).Msg("Evidence staging initialized")

	return &Stager{
		client:    s3.NewFromConfig(r2Config),
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// StageProof stores one evidence file in the staging bucket and returns
// its object key.
func (s *Stager) StageProof(ctx context.Context, reportID, filename string, data []byte) (string, error) {
	if s == nil {
		return "", fmt.Errorf("evidence staging not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("staging/%s/%s/%s%s",
		time.Now().Format("2006/01"),
		reportID,
		uuid.New().String(),
		ext,
	)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("stage proof: %w", err)
	}

	log.Info().Str("report_id", reportID).Str("key", key).Msg("Evidence staged for re-delivery")
	return key, nil
}

// ObjectURL returns the public URL of a staged object
func (s *Stager) ObjectURL(key string) string {
	if s == nil {
		return ""
	}
	return s.publicURL + "/" + key
}
