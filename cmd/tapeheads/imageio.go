package main

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/cases"
)

const jpegQuality = 95

// readImage decodes the image at path with any registered decoder.
// Palette images (GIF, palette PNG, 8-bit BMP) are expanded to NRGBA,
// since the effects only accept RGB and grayscale frames.
func readImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	if p, ok := img.(*image.Paletted); ok {
		img = expandPalette(p)
	}
	return img, format, nil
}

func expandPalette(p *image.Paletted) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy()))
	draw.Draw(out, out.Rect, p, p.Rect.Min, draw.Src)
	return out
}

// writeImage encodes img to path as JPEG for .jpg and .jpeg, PNG otherwise.
func writeImage(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch cases.Fold().String(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
