package detect

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Cascade runs a pretrained Haar cascade classifier over the grayscale
// plane of each frame.
type Cascade struct {
	classifier gocv.CascadeClassifier
	cfg        Config
}

// NewCascade loads a cascade model from disk. A load failure is fatal
// to the pipeline; there is no fallback detector.
func NewCascade(path string, cfg Config) (*Cascade, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, errors.Errorf("could not load face cascade %q", path)
	}
	return &Cascade{classifier: classifier, cfg: cfg}, nil
}

// Detect returns every face match in the grayscale frame, unsorted.
// Cascade classification exposes no confidence scores.
func (c *Cascade) Detect(_, gray *gocv.Mat) ([]image.Rectangle, error) {
	rects := c.classifier.DetectMultiScaleWithParams(
		*gray, c.cfg.ScaleFactor, c.cfg.MinNeighbors, 0, c.cfg.MinSize, image.Pt(0, 0))
	return rects, nil
}

// Close releases the classifier.
func (c *Cascade) Close() error {
	return c.classifier.Close()
}
