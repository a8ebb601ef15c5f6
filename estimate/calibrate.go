package estimate

import "github.com/chewxy/math32"

// FocalFromKnownDistance solves the pinhole model for focal length:
// place a face of known real width at a measured distance, read off the
// detected pixel width, and the focal length follows. This is how the
// default focal constant was obtained.
func FocalFromKnownDistance(pixelWidth int, distanceCM, realWidthCM float32) float32 {
	return float32(pixelWidth) * distanceCM / realWidthCM
}

// HorizontalFOV returns the camera's approximate horizontal field of
// view in degrees for a given frame width and focal length, both in
// pixels. Useful as a sanity check on the calibration constants.
func HorizontalFOV(frameWidth int, focalLength float32) float32 {
	return 2 * math32.Atan(float32(frameWidth)/(2*focalLength)) * 180 / math32.Pi
}
