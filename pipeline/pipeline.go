// Package pipeline - the capture → throttle → detect → record →
// display loop. One concrete component, single-threaded, every error
// fatal.
package pipeline

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/visionlab/facecam/capture"
	"github.com/visionlab/facecam/detect"
	"github.com/visionlab/facecam/estimate"
	"github.com/visionlab/facecam/profiler"
	"github.com/visionlab/facecam/record"
)

// Pipeline owns the camera, the detector, the recorder, and the
// display window for one session. Create it with New, drive it with
// Run, and always Close it, whichever way Run returned.
type Pipeline struct {
	cfg      Config
	source   *capture.Source
	throttle *capture.Throttle
	detector detect.Detector
	recorder *record.Recorder
	window   *gocv.Window
	tracker  *profiler.Tracker

	frame gocv.Mat
	gray  gocv.Mat
}

// New acquires every resource the session needs. The camera is opened
// first so that an unavailable device fails before any output file or
// directory is created.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	throttle, err := capture.NewThrottle(cfg.SpeedUpFactor)
	if err != nil {
		return nil, err
	}

	source, err := capture.Open(cfg.CameraIndex)
	if err != nil {
		return nil, err
	}

	var detector detect.Detector
	if cfg.NetModelPath != "" {
		detector, err = detect.NewNet(cfg.NetModelPath, cfg.NetConfigPath, cfg.NetConfidence, cfg.Detect)
	} else {
		detector, err = detect.NewCascade(cfg.CascadePath, cfg.Detect)
	}
	if err != nil {
		source.Close()
		return nil, err
	}

	recorder, err := record.New(cfg.Record, estimate.Estimator{
		FocalLength:   cfg.FocalLength,
		RealFaceWidth: cfg.RealFaceWidth,
	})
	if err != nil {
		detector.Close()
		source.Close()
		return nil, err
	}

	return &Pipeline{
		cfg:      cfg,
		source:   source,
		throttle: throttle,
		detector: detector,
		recorder: recorder,
		window:   gocv.NewWindow(cfg.WindowTitle),
		tracker:  profiler.New(cfg.ReportInterval),
		frame:    gocv.NewMat(),
		gray:     gocv.NewMat(),
	}, nil
}

// Step runs one loop iteration: read a frame, consult the throttle
// gate, and for admitted frames run detection and recording. It
// reports whether the frame was processed; dropped frames cause no
// side effects at all.
func (p *Pipeline) Step() (bool, error) {
	if err := p.source.Read(&p.frame); err != nil {
		return false, err
	}

	if !p.throttle.Admit() {
		return false, nil
	}

	gocv.CvtColor(p.frame, &p.gray, gocv.ColorBGRToGray)

	faces, err := p.detector.Detect(&p.frame, &p.gray)
	if err != nil {
		return false, err
	}

	if err := p.recorder.Process(&p.frame, faces); err != nil {
		return false, err
	}
	return true, nil
}

// Run loops until the quit key is pressed or an operation fails.
// The key poll runs every iteration; the display only refreshes for
// processed frames.
func (p *Pipeline) Run() error {
	fov := estimate.HorizontalFOV(p.cfg.Record.FrameSize.X, float32(p.cfg.FocalLength))
	log.Printf("face detection started: camera %d, speed-up %dx, horizontal FOV ~%.1f deg",
		p.cfg.CameraIndex, p.cfg.SpeedUpFactor, fov)

	if crops, err := record.ListCrops(p.cfg.Record.OutputDir); err == nil && len(crops) > 0 {
		log.Printf("output directory %q already holds %d face crop(s)", p.cfg.Record.OutputDir, len(crops))
	}

	for {
		start := time.Now()

		processed, err := p.Step()
		if err != nil {
			return err
		}
		if report, ok := p.tracker.Observe(processed, time.Since(start)); ok {
			log.Print(report)
		}

		if processed {
			p.window.IMShow(p.frame)
		}
		if p.window.WaitKey(p.cfg.PollDelayMS) == int(p.cfg.QuitKey) {
			log.Print("quit key pressed, shutting down")
			return nil
		}
	}
}

// Close releases the camera, the detector, the video writer, the
// window, and the working Mats. Safe to call after a failed Run; the
// first error is reported, but every resource is still released.
func (p *Pipeline) Close() error {
	var first error
	keep := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}

	keep(p.window.Close())
	keep(p.recorder.Close())
	keep(p.detector.Close())
	keep(p.source.Close())
	keep(p.frame.Close())
	keep(p.gray.Close())
	return first
}
