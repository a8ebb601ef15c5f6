package record

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnail_BoundsLongestEdge(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxEdge       uint
		wantW, wantH  int
	}{
		{name: "landscape crop", width: 200, height: 100, maxEdge: 96, wantW: 96, wantH: 48},
		{name: "portrait crop", width: 100, height: 200, maxEdge: 96, wantW: 48, wantH: 96},
		{name: "square crop", width: 300, height: 300, maxEdge: 96, wantW: 96, wantH: 96},
		{name: "already small", width: 40, height: 60, maxEdge: 96, wantW: 40, wantH: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			thumb := Thumbnail(src, tt.maxEdge)

			bounds := thumb.Bounds()
			assert.Equal(t, tt.wantW, bounds.Dx())
			assert.Equal(t, tt.wantH, bounds.Dy())
		})
	}
}

func TestThumbPath(t *testing.T) {
	assert.Equal(t, "faces/face_1700000000_thumb.jpg", thumbPath("faces/face_1700000000.jpg"))
	assert.Equal(t, "faces/face_1700000000_2_thumb.jpg", thumbPath("faces/face_1700000000_2.jpg"))
}
