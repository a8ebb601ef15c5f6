package record

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCrops_OrdersAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"face_1700000005.jpg",
		"face_1700000000.jpg",
		"face_1700000000_2.jpg",
		"face_1700000000_1.jpg",
		"face_1700000000_thumb.jpg", // thumbnail, skipped
		"face_1700000000_1_thumb.jpg",
		"output_video.avi", // not a crop
		"face_notatimestamp.jpg",
	} {
		touch(t, filepath.Join(dir, name))
	}

	crops, err := ListCrops(dir)
	require.NoError(t, err)

	var names []string
	for _, crop := range crops {
		names = append(names, filepath.Base(crop.Path))
	}
	assert.Equal(t, []string{
		"face_1700000000.jpg",
		"face_1700000000_1.jpg",
		"face_1700000000_2.jpg",
		"face_1700000005.jpg",
	}, names)

	assert.Equal(t, int64(1700000000), crops[0].Timestamp)
	assert.Equal(t, 0, crops[0].Seq)
	assert.Equal(t, 2, crops[2].Seq)
}

func TestListCrops_MissingDirectory(t *testing.T) {
	_, err := ListCrops(filepath.Join(t.TempDir(), "no-such-dir"))
	assert.Error(t, err)
}
