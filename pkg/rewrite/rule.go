package rewrite

import "regexp"

// The annotation classes moved wholesale from org.apache.http.annotation
// to net.jcip.annotations; only the package prefix of the import changes,
// the class name after the prefix is preserved verbatim.
var (
	importPattern     = regexp.MustCompile(`^import org\.apache\.http\.annotation\.`)
	importReplacement = "import net.jcip.annotations."
)

// Rule pairs a line-anchored pattern with the literal that replaces the
// matched prefix. The remainder of the line is kept as-is.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRule returns the fixed annotation-import rule. The pattern is
// compiled once at package init and is read-only afterwards.
func DefaultRule() Rule {
	return Rule{
		Pattern:     importPattern,
		Replacement: importReplacement,
	}
}
