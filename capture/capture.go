// Package capture - camera acquisition and frame throttling for the
// face detection pipeline.
package capture

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Source owns a single camera handle. There is no buffering and no
// retry: a failed open or read is unrecoverable and the caller is
// expected to tear the pipeline down.
type Source struct {
	cam    *gocv.VideoCapture
	device int
}

// Open acquires the camera at the given device index.
func Open(device int) (*Source, error) {
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open camera device %d", device)
	}
	return &Source{cam: cam, device: device}, nil
}

// Read fills dst with the next available frame. An empty frame is a
// device error (camera disconnected or stream ended), not a condition
// to wait out.
func (s *Source) Read(dst *gocv.Mat) error {
	if ok := s.cam.Read(dst); !ok {
		return errors.Errorf("could not read a frame from camera device %d", s.device)
	}
	if dst.Empty() {
		return errors.Errorf("camera device %d produced an empty frame", s.device)
	}
	return nil
}

// Close releases the camera handle.
func (s *Source) Close() error {
	return s.cam.Close()
}
