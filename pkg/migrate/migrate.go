// Package migrate wires the walker and rewriter together into the one-shot
// annotation-import migration.
package migrate

import (
	"time"

	"github.com/spf13/afero"

	"github.com/arthur-debert/annofix/pkg/logging"
	"github.com/arthur-debert/annofix/pkg/rewrite"
	"github.com/arthur-debert/annofix/pkg/walker"
)

// SourceExtension selects the files eligible for rewriting.
const SourceExtension = ".java"

// IgnoreDirs lists directory names that are never descended into:
// version-control metadata and build output.
var IgnoreDirs = []string{".git", ".svn", "target"}

// Result summarizes a single run.
type Result struct {
	FilesScanned   int
	FilesRewritten int
}

// Run rewrites annotation imports in every eligible file under root.
// The first error aborts the run; files rewritten before the error stay
// rewritten.
func Run(fsys afero.Fs, root string) (Result, error) {
	logger := logging.GetLogger("migrate")
	defer logging.LogDuration(time.Now(), "migrate")

	rewriter := rewrite.New(fsys, rewrite.DefaultRule())

	var result Result
	w := walker.New(fsys, SourceExtension, IgnoreDirs, func(path string) error {
		result.FilesScanned++
		changed, err := rewriter.RewriteFile(path)
		if err != nil {
			return err
		}
		if changed {
			result.FilesRewritten++
		}
		return nil
	})

	if err := w.Walk(root); err != nil {
		return result, err
	}

	logger.Debug().
		Int("scanned", result.FilesScanned).
		Int("rewritten", result.FilesRewritten).
		Msg("migration completed")
	return result, nil
}
