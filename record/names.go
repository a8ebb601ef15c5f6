package record

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// UniquePath returns an unused crop path under dir for the given unix
// timestamp: face_<ts>.jpg, then face_<ts>_1.jpg, face_<ts>_2.jpg and
// so on until a free name is found. Uniqueness holds only within a
// single process; there is no cross-process locking.
func UniquePath(dir string, ts int64) (string, error) {
	name := filepath.Join(dir, fmt.Sprintf("face_%d.jpg", ts))
	for n := 1; ; n++ {
		_, err := os.Stat(name)
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, "could not probe crop path %q", name)
		}
		name = filepath.Join(dir, fmt.Sprintf("face_%d_%d.jpg", ts, n))
	}
}

// Summary renders the face-count overlay, pluralized for any count
// other than one.
func Summary(n int) string {
	if n == 1 {
		return "1 face found"
	}
	return fmt.Sprintf("%d faces found", n)
}
