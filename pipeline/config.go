package pipeline

import (
	"time"

	"github.com/pkg/errors"

	"github.com/visionlab/facecam/detect"
	"github.com/visionlab/facecam/record"
)

// Config collects every constant the pipeline runs on. Defaults match
// a typical laptop webcam; the focal length wants per-camera
// calibration (see estimate.FocalFromKnownDistance).
type Config struct {
	// CascadePath is the pretrained Haar cascade model file.
	CascadePath string

	// NetModelPath, when set, selects the DNN face detector instead of
	// the cascade. NetConfigPath may stay empty for self-describing
	// model formats.
	NetModelPath  string
	NetConfigPath string
	NetConfidence float32

	// CameraIndex selects the capture device.
	CameraIndex int

	// SpeedUpFactor processes one frame in every SpeedUpFactor
	// captures: 1 processes every frame, 2 every other frame.
	SpeedUpFactor int

	// FocalLength (pixels) and RealFaceWidth (cm) feed the pinhole
	// distance estimate.
	FocalLength   float64
	RealFaceWidth float64

	// WindowTitle names the display window.
	WindowTitle string

	// QuitKey ends the session when pressed in the display window.
	QuitKey rune

	// PollDelayMS is the per-iteration key poll timeout.
	PollDelayMS int

	// ReportInterval spaces the frame-rate log lines.
	ReportInterval time.Duration

	Detect detect.Config
	Record record.Config
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		CascadePath:    "haarcascade_frontalface_default.xml",
		NetConfidence:  0.5,
		CameraIndex:    0,
		SpeedUpFactor:  2,
		FocalLength:    800,
		RealFaceWidth:  14.0,
		WindowTitle:    "Face Detection",
		QuitKey:        'q',
		PollDelayMS:    20,
		ReportInterval: 2 * time.Second,
		Detect:         detect.DefaultConfig(),
		Record:         record.DefaultConfig(),
	}
}

// Validate rejects configurations the pipeline cannot run on before
// any device or file is touched.
func (c Config) Validate() error {
	if c.SpeedUpFactor < 1 {
		return errors.Errorf("speed-up factor must be at least 1, got %d", c.SpeedUpFactor)
	}
	if c.FocalLength <= 0 {
		return errors.Errorf("focal length must be positive, got %v", c.FocalLength)
	}
	if c.RealFaceWidth <= 0 {
		return errors.Errorf("real face width must be positive, got %v", c.RealFaceWidth)
	}
	if c.CascadePath == "" && c.NetModelPath == "" {
		return errors.New("either a cascade model or a DNN model path is required")
	}
	if c.Record.FPS <= 0 {
		return errors.Errorf("output video FPS must be positive, got %v", c.Record.FPS)
	}
	if c.Record.FrameSize.X <= 0 || c.Record.FrameSize.Y <= 0 {
		return errors.Errorf("output video resolution must be positive, got %v", c.Record.FrameSize)
	}
	if c.PollDelayMS < 1 {
		return errors.Errorf("key poll delay must be at least 1ms, got %d", c.PollDelayMS)
	}
	return nil
}
