package helperOSS

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "civicdata_backend/internals/helpers"
)

const maxUploadSize = int64(5 * 1024 * 1024)

// BlobService is the upload/delete facade controllers and services
// talk to; tests substitute a fake.
type BlobService interface {
	// UploadImage re-encodes to WebP and stores under dir, returning
	// the public URL to persist.
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image must be at most 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file")
	}

	buf, err := EncodeImageToWebP(raw, fh.Filename)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(fh.Filename)
	baseName := helper.GenerateSlug(strings.TrimSuffix(fh.Filename, ext))
	if baseName == "" {
		baseName = "image"
	}
	key := strings.Trim(dir, "/") + "/" + baseName + "_" + time.Now().Format("20060102_150405") + ".webp"

	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(buf.Bytes()), "image/webp"); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload image to OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}
