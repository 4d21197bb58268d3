// Package walker implements the depth-first traversal that feeds eligible
// files to the rewriter. Directories on the ignore list are pruned by name;
// the first error aborts the whole walk.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/annofix/pkg/errors"
	"github.com/arthur-debert/annofix/pkg/logging"
)

// ProcessFunc handles one eligible file. A non-nil error aborts the walk.
type ProcessFunc func(path string) error

// Walker visits every entry under a root, pruning ignored directories and
// dispatching files that carry the eligible extension.
type Walker struct {
	fs         afero.Fs
	extension  string
	ignoreDirs map[string]bool
	process    ProcessFunc
}

// New creates a Walker dispatching files with the given extension to process.
// Directories whose base name appears in ignoreDirs are never descended into.
func New(fs afero.Fs, extension string, ignoreDirs []string, process ProcessFunc) *Walker {
	ignore := make(map[string]bool, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignore[dir] = true
	}
	return &Walker{
		fs:         fs,
		extension:  extension,
		ignoreDirs: ignore,
		process:    process,
	}
}

// Walk traverses root depth-first. Listing errors propagate immediately;
// files already processed stay processed.
func (w *Walker) Walk(root string) error {
	logger := logging.GetLogger("walker")

	return afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrWalk, "cannot list %s", path)
		}
		if info.IsDir() {
			// The root is walked even if its own name is on the ignore
			// list; only subdirectories are pruned.
			if path != root && w.ignoreDirs[info.Name()] {
				logger.Trace().Str("dir", path).Msg("skipping ignored directory")
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(info.Name(), w.extension) {
			return nil
		}
		return w.process(path)
	})
}
