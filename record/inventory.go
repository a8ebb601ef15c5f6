package record

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Crop describes one saved face image in the output directory.
type Crop struct {
	// Path is the path to the crop file.
	Path string
	// Timestamp is the unix timestamp embedded in the filename.
	Timestamp int64
	// Seq is the collision suffix, 0 for the first crop of a second.
	Seq int
}

// ListCrops scans dir for previously saved face crops and returns them
// ordered by timestamp then collision suffix. Thumbnails and unrelated
// files are skipped.
func ListCrops(dir string) ([]Crop, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var crops []Crop
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		crop, ok := parseCropName(file.Name())
		if !ok {
			continue
		}
		crop.Path = filepath.Join(dir, file.Name())
		crops = append(crops, crop)
	}

	sort.Slice(crops, func(i, j int) bool {
		if crops[i].Timestamp != crops[j].Timestamp {
			return crops[i].Timestamp < crops[j].Timestamp
		}
		return crops[i].Seq < crops[j].Seq
	})

	return crops, nil
}

func parseCropName(name string) (Crop, bool) {
	ext := filepath.Ext(name)
	if ext != ".jpg" {
		return Crop{}, false
	}
	base := strings.TrimSuffix(name, ext)
	if !strings.HasPrefix(base, "face_") || strings.HasSuffix(base, "_thumb") {
		return Crop{}, false
	}

	parts := strings.SplitN(strings.TrimPrefix(base, "face_"), "_", 2)
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Crop{}, false
	}

	crop := Crop{Timestamp: ts}
	if len(parts) == 2 {
		seq, err := strconv.Atoi(parts[1])
		if err != nil {
			return Crop{}, false
		}
		crop.Seq = seq
	}
	return crop, true
}
