// Package record - frame annotation and persistence: bounding boxes,
// distance labels, first-seen face crops, and the output video stream.
package record

import (
	"image"
	"image/color"
	"os"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/visionlab/facecam/estimate"
)

// Config holds the recorder's output and overlay settings.
type Config struct {
	// OutputDir receives the saved face crops; created if absent.
	OutputDir string
	// VideoPath is the annotated output video file.
	VideoPath string
	// Codec is the four-character code of the video container.
	Codec string
	// FPS is the output video frame rate.
	FPS float64
	// FrameSize is the fixed output video resolution.
	FrameSize image.Point
	// BoxColor is the detection outline colour.
	BoxColor color.RGBA
	// TextColor is the label and summary text colour.
	TextColor color.RGBA
	// BoxThickness is the detection outline stroke width.
	BoxThickness int
	// ThumbnailEdge bounds the preview thumbnail written next to each
	// crop; 0 disables thumbnails.
	ThumbnailEdge uint
}

// DefaultConfig returns the recorder settings used by the pipeline.
func DefaultConfig() Config {
	return Config{
		OutputDir:     "faces",
		VideoPath:     "faces/output_video.avi",
		Codec:         "MJPG",
		FPS:           30,
		FrameSize:     image.Pt(640, 480),
		BoxColor:      color.RGBA{R: 255, G: 50, B: 50},
		TextColor:     color.RGBA{R: 255, G: 255, B: 255},
		BoxThickness:  3,
		ThumbnailEdge: 96,
	}
}

// summaryAnchor is the fixed screen position of the face-count summary.
var summaryAnchor = image.Pt(10, 40)

// Recorder annotates processed frames, exports first-seen face crops,
// and appends every processed frame to the output video. It is not
// safe for concurrent use; the pipeline is single-threaded.
type Recorder struct {
	cfg    Config
	est    estimate.Estimator
	writer *gocv.VideoWriter

	// saved marks detection indexes whose crop has already been
	// exported. The set is resized when the detection count changes
	// and is otherwise left alone, so a flag set for index i stays set
	// even when a different face later occupies that index.
	saved []bool

	now func() int64
}

// New creates the output directory and opens the video writer. Either
// failure is fatal to the pipeline.
func New(cfg Config, est estimate.Estimator) (*Recorder, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create output directory %q", cfg.OutputDir)
	}
	writer, err := gocv.VideoWriterFile(
		cfg.VideoPath, cfg.Codec, cfg.FPS, cfg.FrameSize.X, cfg.FrameSize.Y, true)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the video writer %q", cfg.VideoPath)
	}
	if !writer.IsOpened() {
		writer.Close()
		return nil, errors.Errorf("could not open the video writer %q", cfg.VideoPath)
	}
	return &Recorder{
		cfg:    cfg,
		est:    est,
		writer: writer,
		now:    func() int64 { return time.Now().Unix() },
	}, nil
}

// Process annotates the frame in place with the current detections,
// exports crops for indexes not yet flagged as saved, and appends the
// annotated frame to the output video. Any write failure is returned
// as fatal; there is no degraded mode.
func (r *Recorder) Process(frame *gocv.Mat, faces []image.Rectangle) error {
	r.syncFlags(len(faces))

	for i, face := range faces {
		gocv.Rectangle(frame, face, r.cfg.BoxColor, r.cfg.BoxThickness)

		// The crop is taken after the outline is drawn, so exported
		// faces carry the box edges. Matches the recorded video.
		if !r.saved[i] {
			if err := r.saveCrop(frame, face); err != nil {
				return err
			}
			r.saved[i] = true
		}

		gocv.PutText(frame, r.est.Label(i+1, face.Dx()), face.Min,
			gocv.FontHersheyDuplex, 1, r.cfg.TextColor, 1)
	}

	gocv.PutText(frame, Summary(len(faces)), summaryAnchor,
		gocv.FontHersheyDuplex, 1, r.cfg.TextColor, 1)

	return errors.Wrapf(r.writer.Write(*frame),
		"could not append a frame to %q", r.cfg.VideoPath)
}

// syncFlags resizes the saved-flag set to the current detection count.
// Surviving entries keep their values; new entries start unsaved.
func (r *Recorder) syncFlags(n int) {
	switch {
	case len(r.saved) == n:
	case n < len(r.saved):
		r.saved = r.saved[:n]
	default:
		r.saved = append(r.saved, make([]bool, n-len(r.saved))...)
	}
}

func (r *Recorder) saveCrop(frame *gocv.Mat, face image.Rectangle) error {
	name, err := UniquePath(r.cfg.OutputDir, r.now())
	if err != nil {
		return err
	}
	region := frame.Region(face)
	defer region.Close()

	if ok := gocv.IMWrite(name, region); !ok {
		return errors.Errorf("could not write face crop %q", name)
	}
	if r.cfg.ThumbnailEdge > 0 {
		if err := writeThumbnail(name, &region, r.cfg.ThumbnailEdge); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the video writer.
func (r *Recorder) Close() error {
	return errors.Wrapf(r.writer.Close(), "could not close %q", r.cfg.VideoPath)
}
