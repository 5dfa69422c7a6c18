package ioutils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// String returns e.g. "jpeg 1920x1080".
func (i ImageInfo) String() string {
	return fmt.Sprintf("%s %dx%d", i.Format, i.Width, i.Height)
}

// ImageService inspects downloaded image payloads.
//
// The archive does not promise a content type, so the payload is only
// inspected for logging. A payload that cannot be decoded is still written.
//
// Example usage:
//
//	svc := NewImageService()
//	info, err := svc.Inspect(imageData)
//	if err != nil {
//	    // not an image we know how to decode
//	}
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Inspect decodes only the header of data and reports its format and size.
//
// JPEG, PNG, GIF, BMP and WebP are recognized.
func (s *ImageService) Inspect(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, err
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
