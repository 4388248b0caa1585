package helperOSS

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

const (
	maxImageDim = 1600
	webpQuality = 85
)

// EncodeImageToWebP converts an uploaded jpg/png into a bounded-size
// WebP buffer; WebP input passes through untouched.
func EncodeImageToWebP(raw []byte, filename string) (*bytes.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".webp":
		return bytes.NewBuffer(raw), nil
	case ".jpg", ".jpeg", ".png":
		img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "Invalid image file")
		}
		if img.Bounds().Dx() > maxImageDim || img.Bounds().Dy() > maxImageDim {
			img = imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
		}
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to encode image")
		}
		return buf, nil
	default:
		return nil, fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (jpg, jpeg, png, webp)")
	}
}
