package domain

import (
	"path"
	"strings"
)

// Pattern namespaces. A filter pattern must carry one of these prefixes to
// select which program attribute it matches against.
const (
	PatternTarget  = "target:"
	PatternPackage = "package:"
	PatternPath    = "path:"
)

// globSeparatorStandIn substitutes '/' in both text and pattern before
// delegating to path.Match, so that '*' spans path separators the way the
// historical glob semantics require.
const globSeparatorStandIn = "\x1f"

// SplitPattern splits a filter pattern into its namespace prefix and glob
// expression. ok is false when the pattern carries no recognized prefix; such
// patterns never match anything.
func SplitPattern(pattern string) (namespace, glob string, ok bool) {
	for _, ns := range []string{PatternTarget, PatternPackage, PatternPath} {
		if rest, found := strings.CutPrefix(pattern, ns); found {
			return ns, rest, true
		}
	}
	return "", "", false
}

// MatchesPattern reports whether the pattern matches the program under the
// pattern's namespace. Patterns without a recognized prefix and unparsable
// glob expressions match nothing.
func (p Program) MatchesPattern(pattern string) bool {
	ns, glob, ok := SplitPattern(pattern)
	if !ok {
		return false
	}
	switch ns {
	case PatternTarget:
		return matchGlob(p.TargetName, glob)
	case PatternPackage:
		return matchGlob(p.PackageName, glob)
	case PatternPath:
		return matchGlob(p.ManifestPath, glob)
	default:
		return false
	}
}

// MatchesAny reports whether any of the given patterns matches the program.
func (p Program) MatchesAny(patterns []string) bool {
	for _, pattern := range patterns {
		if p.MatchesPattern(pattern) {
			return true
		}
	}
	return false
}

// matchGlob evaluates a single glob expression against text using path.Match
// semantics ('*' any run, '?' one character, '[...]' classes). A malformed
// pattern matches nothing rather than failing the run.
func matchGlob(text, pattern string) bool {
	text = strings.ReplaceAll(text, "/", globSeparatorStandIn)
	pattern = strings.ReplaceAll(pattern, "/", globSeparatorStandIn)
	matched, err := path.Match(pattern, text)
	if err != nil {
		return false
	}
	return matched
}
