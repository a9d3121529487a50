package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"

	"github.com/sahilchouksey/unimatch-api/config"
)

var ErrNotConfigured = errors.New("document storage is not configured")

// SpacesClient stores offer documents in an S3-compatible bucket
type SpacesClient struct {
	s3       s3iface.S3API
	bucket   string
	endpoint string
}

type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

// ConfigFromEnv reads the SPACES_* settings. The endpoint defaults to the
// region's DigitalOcean host.
func ConfigFromEnv(env *config.EnviornmentVariable) SpacesConfig {
	cfg := SpacesConfig{
		AccessKey: env.SPACES_ACCESS_KEY,
		SecretKey: env.SPACES_SECRET_KEY,
		Bucket:    env.SPACES_BUCKET,
		Region:    env.SPACES_REGION,
		Endpoint:  env.SPACES_ENDPOINT,
	}
	if cfg.Endpoint == "" && cfg.Region != "" {
		cfg.Endpoint = fmt.Sprintf("%s.digitaloceanspaces.com", cfg.Region)
	}
	return cfg
}

func NewSpacesClient(cfg SpacesConfig) (*SpacesClient, error) {
	if cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String("https://" + strings.TrimPrefix(cfg.Endpoint, "https://")),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create spaces session")
	}
	return newSpacesClient(s3.New(sess), cfg), nil
}

func newSpacesClient(api s3iface.S3API, cfg SpacesConfig) *SpacesClient {
	return &SpacesClient{
		s3:       api,
		bucket:   cfg.Bucket,
		endpoint: strings.TrimPrefix(cfg.Endpoint, "https://"),
	}
}

// Upload stores data privately under key and returns its object URL
func (s *SpacesClient) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ACL:         aws.String(s3.ObjectCannedACLPrivate),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", key)
	}
	return s.URL(key), nil
}

func (s *SpacesClient) Delete(ctx context.Context, key string) error {
	_, err := s.s3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return errors.Wrapf(err, "delete %s", key)
}

func (s *SpacesClient) URL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
}

// OfferDocumentKey namespaces uploads by student and offer
func OfferDocumentKey(studentID, offerID uint, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("offers/%d/%d/%d_%s%s", studentID, offerID, now.Unix(), base, ext)
}
