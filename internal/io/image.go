package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	// ServerIconFileName is the icon file the server loads from its directory.
	ServerIconFileName = "server-icon.png"

	// ServerIconSize is the required icon edge length in pixels.
	ServerIconSize = 64
)

// ImageService provides image processing operations for the server icon.
//
// Example usage:
//
//	svc := NewImageService()
//
//	data, _ := os.ReadFile("logo.jpg")
//	icon, _ := svc.ServerIcon(ctx, data)
//	_ = os.WriteFile("server-icon.png", icon, 0644)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ServerIcon converts an image to the 64x64 PNG the server expects.
//
// The aspect ratio is preserved: the image is scaled to fit and centered
// on a transparent canvas. The Catmull-Rom algorithm is used for scaling.
//
// Example:
//
//	// A 128x64 banner becomes a 64x32 strip centered vertically
//	icon, err := svc.ServerIcon(ctx, bannerData)
func (s *ImageService) ServerIcon(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("decode image: empty image")
	}

	// Fit within the icon square
	w, h := ServerIconSize, ServerIconSize
	if width > height {
		h = max(1, height*ServerIconSize/width)
	} else if height > width {
		w = max(1, width*ServerIconSize/height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, ServerIconSize, ServerIconSize))
	offX := (ServerIconSize - w) / 2
	offY := (ServerIconSize - h) / 2
	target := image.Rect(offX, offY, offX+w, offY+h)

	draw.CatmullRom.Scale(dst, target, img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteServerIcon reads the image at src, converts it and writes
// server-icon.png into dir. It returns the written path.
func (s *ImageService) WriteServerIcon(ctx context.Context, src, dir string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	icon, err := s.ServerIcon(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", src, err)
	}

	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ServerIconFileName)
	if err := WriteFile(path, icon); err != nil {
		return "", err
	}
	return path, nil
}
