// Package detect - face localization backends. Detection itself is
// delegated entirely to pretrained OpenCV models; this package only
// wraps loading, parameterization, and result extraction.
package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector locates faces in a captured frame. Implementations pick the
// representation they need: the cascade path works on the grayscale
// plane, the DNN path on the full colour frame. Result ordering is
// whatever the underlying model produces; rectangles carry no identity
// across frames.
type Detector interface {
	Detect(frame, gray *gocv.Mat) ([]image.Rectangle, error)

	// Close releases the native resources held by the detector.
	Close() error
}

// Config holds the multi-scale detection parameters.
type Config struct {
	// ScaleFactor is the pyramid step between detection scales.
	ScaleFactor float64

	// MinNeighbors is the number of neighbouring matches required to
	// retain a candidate rectangle.
	MinNeighbors int

	// MinSize is the smallest face the detector will report, in pixels.
	MinSize image.Point
}

// DefaultConfig returns the fixed parameters used by the pipeline.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:  1.1,
		MinNeighbors: 3,
		MinSize:      image.Pt(30, 30),
	}
}
