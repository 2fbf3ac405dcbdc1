package imageutil

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"ryulaunch/internal/fileutil"

	goqr "github.com/piglig/go-qr"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// CreateTempQRCode writes the QR code under the launcher's .tmp directory,
// which is removed on exit.
func CreateTempQRCode(content string, size int) (string, error) {
	return CreateQRCode(content, filepath.Join(fileutil.TempDir(), "qr"), size)
}

// CreateQRCode renders content as a PNG in dir and returns its path.
func CreateQRCode(content, dir string, size int) (string, error) {
	qr, err := goqr.EncodeText(content, goqr.Low)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "qrcode-*.png")
	if err != nil {
		return "", err
	}
	tempFile.Close()

	config := goqr.NewQrCodeImgConfig(max(size/10, 1), 0)
	if err := qr.PNG(config, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

// FitSize scales width x height to fit inside maxWidth x maxHeight, keeping the
// aspect ratio. Images that already fit are returned unchanged.
func FitSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || (width <= maxWidth && height <= maxHeight) {
		return width, height
	}

	imgAspect := float64(width) / float64(height)
	boxAspect := float64(maxWidth) / float64(maxHeight)

	if imgAspect > boxAspect {
		return maxWidth, max(1, int(float64(maxWidth)/imgAspect))
	}
	return max(1, int(float64(maxHeight)*imgAspect)), maxHeight
}

// FitImage writes a PNG copy of inputPath scaled to fit the box into outDir and
// returns its path. The output name is derived from the source path and box,
// so repeated calls reuse the earlier result.
func FitImage(inputPath, outDir string, maxWidth, maxHeight int) (string, error) {
	outputPath := filepath.Join(outDir, fittedName(inputPath, maxWidth, maxHeight))
	if src, err := os.Stat(inputPath); err == nil {
		if out, err := os.Stat(outputPath); err == nil && !out.ModTime().Before(src.ModTime()) {
			return outputPath, nil
		}
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer inputFile.Close()

	img, _, err := image.Decode(inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	newWidth, newHeight := FitSize(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	var processedImg = img
	if newWidth != bounds.Dx() || newHeight != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		processedImg = dst
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writePNG(outputPath, processedImg); err != nil {
		return "", err
	}

	return outputPath, nil
}

// writePNG removes a partly written file so it is never served from cache.
func writePNG(path string, img image.Image) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(outputFile, img); err != nil {
		outputFile.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	if err := outputFile.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write PNG: %w", err)
	}

	return nil
}

func fittedName(inputPath string, maxWidth, maxHeight int) string {
	sum := sha1.Sum([]byte(inputPath))
	return fmt.Sprintf("%s_%dx%d.png", hex.EncodeToString(sum[:8]), maxWidth, maxHeight)
}
