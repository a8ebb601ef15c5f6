// Package estimate - first-order pinhole-camera distance estimation.
// The model is distance = realWidth * focalLength / pixelWidth; no lens
// distortion or pose correction is attempted.
package estimate

import "fmt"

// Estimator converts a detected face width in pixels to an estimated
// camera distance using fixed calibration constants.
type Estimator struct {
	// FocalLength is the camera focal length in pixels.
	FocalLength float64

	// RealFaceWidth is the assumed real-world face width in cm.
	RealFaceWidth float64
}

// Distance estimates how far a face of the given pixel width is from
// the camera, in cm. pixelWidth comes from a detector that enforces a
// minimum face size, so it is always positive.
func (e Estimator) Distance(pixelWidth int) float64 {
	return e.RealFaceWidth * e.FocalLength / float64(pixelWidth)
}

// Label renders the per-face overlay text for a 1-based face index.
func (e Estimator) Label(index, pixelWidth int) string {
	return fmt.Sprintf("Face %d Dist: %.2f cm", index, e.Distance(pixelWidth))
}
