package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// Snapshot copies the tree rooted at src into dst, leaving out everything the
// filter excludes. Timestamps and permissions are preserved so the copied
// tree stays independently re-runnable without confusing mtime-based tooling
// downstream. An existing destination is merged into, so re-launching
// against the same experiment directory never errors on pre-existing paths.
func Snapshot(src, dst string, filter *Filter) error {
	opts := cp.Options{
		PreserveTimes: true,
		OnDirExists: func(src, dest string) cp.DirExistsAction {
			return cp.Merge
		},
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		Skip: func(info os.FileInfo, srcPath, destPath string) (bool, error) {
			rel, err := filepath.Rel(src, srcPath)
			if err != nil {
				return false, err
			}
			return filter.Excluded(rel), nil
		},
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
