// facecam captures live camera frames, detects faces with a pretrained
// classifier, annotates each detection with a bounding box and an
// estimated distance, saves first-seen face crops, and records the
// annotated stream to a video file. Press 'q' in the display window to
// quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/visionlab/facecam/pipeline"
)

func main() {
	cfg := pipeline.DefaultConfig()

	flag.StringVar(&cfg.CascadePath, "cascade", cfg.CascadePath, "Path to the Haar cascade model file")
	flag.StringVar(&cfg.NetModelPath, "dnn-model", cfg.NetModelPath, "Path to an SSD face model; selects the DNN detector when set")
	flag.StringVar(&cfg.NetConfigPath, "dnn-config", cfg.NetConfigPath, "Optional topology file for the DNN model")
	flag.IntVar(&cfg.CameraIndex, "camera", cfg.CameraIndex, "Capture device index")
	flag.IntVar(&cfg.SpeedUpFactor, "speedup", cfg.SpeedUpFactor, "Process one frame in every N captures")
	flag.Float64Var(&cfg.FocalLength, "focal", cfg.FocalLength, "Camera focal length in pixels")
	flag.Float64Var(&cfg.RealFaceWidth, "face-width", cfg.RealFaceWidth, "Assumed real face width in cm")
	flag.StringVar(&cfg.Record.OutputDir, "output-dir", cfg.Record.OutputDir, "Directory for saved face crops")
	flag.StringVar(&cfg.Record.VideoPath, "video", cfg.Record.VideoPath, "Annotated output video file")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg pipeline.Config) error {
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Run()
}
