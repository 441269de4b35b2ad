package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

const (
	logoMaxSize = 240
	logoQuality = 80
)

// LoadLogo reads the logo at path and returns it as an optimized JPEG data URI
func LoadLogo(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read logo: %w", err)
	}
	return OptimizeLogo(data, logoMaxSize)
}

// OptimizeLogo decodes a PNG or JPEG image, shrinks it so neither side exceeds maxDim
// and returns it as a base64 JPEG data URI
func OptimizeLogo(imageData []byte, maxDim int) (string, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > maxDim || height > maxDim {
		// imaging keeps the aspect ratio when one dimension is 0
		if width >= height {
			resized = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			resized = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
		log.Printf("🔄 Resizing logo: %dx%d -> %dx%d", width, height, resized.Bounds().Dx(), resized.Bounds().Dy())
	}

	// JPEG has no alpha channel; flatten onto white so transparent areas do not turn black
	flat := imaging.New(resized.Bounds().Dx(), resized.Bounds().Dy(), image.White)
	flat = imaging.Overlay(flat, resized, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: logoQuality}); err != nil {
		return "", fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Logo optimized: source=%s, output_size=%d bytes", format, buf.Len())
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
