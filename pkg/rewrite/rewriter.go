// Package rewrite performs the per-file import substitution. Each file is
// rewritten through a scratch file in the same directory, promoted over the
// original with an atomic rename only when at least one line changed. The
// original is never partially overwritten.
package rewrite

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/arthur-debert/annofix/pkg/errors"
	"github.com/arthur-debert/annofix/pkg/logging"
)

// Rewriter applies a Rule to individual files on an abstract filesystem.
type Rewriter struct {
	fs   afero.Fs
	rule Rule
}

// New creates a Rewriter using the given filesystem and rule
func New(fs afero.Fs, rule Rule) *Rewriter {
	return &Rewriter{fs: fs, rule: rule}
}

// RewriteFile rewrites matching import lines in the file at path.
// It reports whether the file was changed. On any error the scratch file
// is removed and the original is left untouched.
func (r *Rewriter) RewriteFile(path string) (bool, error) {
	logger := logging.GetLogger("rewrite")

	src, err := r.fs.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileOpen, "cannot open %s", path)
	}
	defer func() { _ = src.Close() }()

	scratch, err := afero.TempFile(r.fs, filepath.Dir(path), filepath.Base(path)+".")
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrScratchCreate, "cannot create scratch file for %s", path)
	}
	scratchPath := scratch.Name()
	promoted := false
	defer func() {
		_ = scratch.Close()
		if !promoted {
			_ = r.fs.Remove(scratchPath)
		}
	}()

	changed, err := r.copyLines(src, scratch, path)
	if err != nil {
		return false, err
	}
	if !changed {
		// Scratch is discarded by the deferred cleanup; the original keeps
		// its content and mtime.
		return false, nil
	}

	if err := scratch.Close(); err != nil {
		return false, errors.Wrapf(err, errors.ErrScratchWrite, "cannot finish scratch file for %s", path)
	}
	// Carry the original permissions over before promoting.
	if info, statErr := r.fs.Stat(path); statErr == nil {
		_ = r.fs.Chmod(scratchPath, info.Mode().Perm())
	}
	if err := r.fs.Rename(scratchPath, path); err != nil {
		return false, errors.Wrapf(err, errors.ErrReplace, "cannot replace %s", path)
	}
	promoted = true

	logger.Debug().Str("path", path).Msg("rewrote annotation imports")
	return true, nil
}

// copyLines streams src to dst line by line, substituting the rule's prefix
// on matching lines. Line endings are preserved verbatim, including a
// missing newline on the last line.
func (r *Rewriter) copyLines(src io.Reader, dst io.Writer, path string) (bool, error) {
	reader := bufio.NewReader(src)
	writer := bufio.NewWriter(dst)
	changed := false

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return false, errors.Wrapf(readErr, errors.ErrFileRead, "cannot read %s", path)
		}
		if line != "" {
			if strings.IndexByte(line, 0) >= 0 || !utf8.ValidString(line) {
				return false, errors.Newf(errors.ErrEncoding, "non-text content in %s", path)
			}
			if loc := r.rule.Pattern.FindStringIndex(line); loc != nil {
				line = r.rule.Replacement + line[loc[1]:]
				changed = true
			}
			if _, err := writer.WriteString(line); err != nil {
				return false, errors.Wrapf(err, errors.ErrScratchWrite, "cannot write scratch file for %s", path)
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return false, errors.Wrapf(err, errors.ErrScratchWrite, "cannot write scratch file for %s", path)
	}
	return changed, nil
}
