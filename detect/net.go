package detect

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// res10 SSD face detectors take a 300x300 BGR blob with fixed channel
// means subtracted.
var (
	netInputSize = image.Pt(300, 300)
	netMean      = gocv.NewScalar(104.0, 177.0, 123.0, 0)
)

// Net runs a pretrained SSD face detection network through OpenCV's
// DNN module. It is the alternative backend to Cascade for cameras
// where the Haar model misses too many faces.
type Net struct {
	net        gocv.Net
	cfg        Config
	confidence float32
}

// NewNet loads an SSD face model (for example the res10 Caffe model).
// configPath may be empty for formats that carry their own topology.
func NewNet(modelPath, configPath string, confidence float32, cfg Config) (*Net, error) {
	net := gocv.ReadNet(modelPath, configPath)
	if net.Empty() {
		return nil, errors.Errorf("could not load face detection network %q", modelPath)
	}
	net.SetPreferableBackend(gocv.NetBackendOpenCV)
	net.SetPreferableTarget(gocv.NetTargetCPU)
	return &Net{net: net, cfg: cfg, confidence: confidence}, nil
}

// Detect runs inference on the full colour frame and maps the network
// output back to frame coordinates. Matches smaller than cfg.MinSize
// or below the confidence threshold are discarded.
func (n *Net) Detect(frame, _ *gocv.Mat) ([]image.Rectangle, error) {
	blob := gocv.BlobFromImage(*frame, 1.0, netInputSize, netMean, false, false)
	defer blob.Close()

	n.net.SetInput(blob, "")
	out := n.net.Forward("")
	defer out.Close()

	size := frame.Size()
	bounds := image.Rect(0, 0, size[1], size[0])

	// Output shape is [1 1 N 7]; each row holds
	// (batch, class, confidence, left, top, right, bottom) with the
	// box coordinates normalized to [0, 1].
	detections := gocv.GetBlobChannel(out, 0, 0)
	defer detections.Close()

	var faces []image.Rectangle
	for r := 0; r < detections.Rows(); r++ {
		score := detections.GetFloatAt(r, 2)
		if score < n.confidence {
			continue
		}
		rect := image.Rect(
			int(detections.GetFloatAt(r, 3)*float32(bounds.Dx())),
			int(detections.GetFloatAt(r, 4)*float32(bounds.Dy())),
			int(detections.GetFloatAt(r, 5)*float32(bounds.Dx())),
			int(detections.GetFloatAt(r, 6)*float32(bounds.Dy())),
		).Intersect(bounds)
		if rect.Dx() < n.cfg.MinSize.X || rect.Dy() < n.cfg.MinSize.Y {
			continue
		}
		faces = append(faces, rect)
	}
	return faces, nil
}

// Close releases the network.
func (n *Net) Close() error {
	return n.net.Close()
}
