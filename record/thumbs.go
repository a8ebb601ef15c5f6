package record

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

const thumbnailQuality = 85

// Thumbnail scales img down so that neither edge exceeds maxEdge,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func Thumbnail(img image.Image, maxEdge uint) image.Image {
	return resize.Thumbnail(maxEdge, maxEdge, img, resize.Bilinear)
}

// thumbPath derives the preview filename from a crop path:
// faces/face_1700000000.jpg -> faces/face_1700000000_thumb.jpg.
func thumbPath(cropPath string) string {
	ext := filepath.Ext(cropPath)
	return strings.TrimSuffix(cropPath, ext) + "_thumb" + ext
}

func writeThumbnail(cropPath string, crop *gocv.Mat, maxEdge uint) error {
	img, err := crop.ToImage()
	if err != nil {
		return errors.Wrapf(err, "could not convert crop %q for thumbnailing", cropPath)
	}

	out := thumbPath(cropPath)
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "could not create thumbnail %q", out)
	}
	defer f.Close()

	if err := jpeg.Encode(f, Thumbnail(img, maxEdge), &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return errors.Wrapf(err, "could not encode thumbnail %q", out)
	}
	return nil
}
