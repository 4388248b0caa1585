package helperOSS

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSService is a thin wrapper over one bucket.
type OSSService struct {
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	prefix     string
}

// NewOSSServiceFromEnv builds a client from OSS_ENDPOINT,
// OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET and OSS_BUCKET.
// prefix (optional) is prepended to every object key.
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: missing OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: client init: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: bucket %s: %w", bucketName, err)
	}
	return &OSSService{
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) key(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	return s.bucket.PutObject(s.key(key), r, oss.ContentType(contentType))
}

// PublicURL assumes a public-read bucket on the standard vhost layout.
func (s *OSSService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, s.endpoint, s.key(key))
}

// KeyFromPublicURL reverses PublicURL.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	base := fmt.Sprintf("https://%s.%s/", s.bucketName, s.endpoint)
	if !strings.HasPrefix(publicURL, base) {
		return "", fmt.Errorf("oss: url %q is not in bucket %s", publicURL, s.bucketName)
	}
	return strings.TrimPrefix(publicURL, base), nil
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.bucket.DeleteObject(key)
}
