package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// CatalogEntry is one (package, target) pair reported by the metadata
// collaborator for a workspace. IsArtifact is true only for targets whose
// declared crate kind marks them as loadable programs (cdylib).
type CatalogEntry struct {
	PackageName  string
	TargetName   string
	ManifestPath string
	IsArtifact   bool
}

// Catalog is the in-memory package/target listing of a single workspace.
type Catalog struct {
	WorkspaceRoot string
	Entries       []CatalogEntry
}

// Program is a confirmed loadable program discovered in a workspace. Its
// identity for deduplication purposes is the manifest path.
type Program struct {
	PackageName  string
	TargetName   string
	ManifestPath string
}

// Dir returns the program's directory, i.e. the directory holding its manifest.
func (p Program) Dir() string {
	return filepath.Dir(p.ManifestPath)
}

// ConstantName derives the generated constant name for the program:
// the target name uppercased with every non-alphanumeric run collapsed to an
// underscore, plus the "_ELF" suffix. "token-manager" becomes "TOKEN_MANAGER_ELF".
func (p Program) ConstantName() string {
	return normalizeIdent(p.TargetName) + "_ELF"
}

// EnvVarName derives the environment variable name that reports the built
// artifact's path. "token-manager" becomes "TOKEN_MANAGER_ELF_PATH".
func (p Program) EnvVarName() string {
	return normalizeIdent(p.TargetName) + "_ELF_PATH"
}

// ArtifactFileName returns the file name the build collaborator deposits in
// the output directory.
func (p Program) ArtifactFileName() string {
	return p.TargetName + ".so"
}

// String implements fmt.Stringer for log and report lines.
func (p Program) String() string {
	return fmt.Sprintf("%s (%s)", p.TargetName, p.ManifestPath)
}

func normalizeIdent(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// DiscoveredSet is the classification outcome for one workspace. Both lists
// are sorted by target name; a program appears in exactly one of them.
type DiscoveredSet struct {
	Workspace string
	Included  []Program
	Excluded  []Program
}

// Dedupe collapses programs sharing a manifest path to their first occurrence
// and re-sorts the result by target name, giving a total order independent of
// workspace enumeration order.
func Dedupe(programs []Program) []Program {
	seen := make(map[string]struct{}, len(programs))
	out := make([]Program, 0, len(programs))
	for _, p := range programs {
		if _, ok := seen[p.ManifestPath]; ok {
			continue
		}
		seen[p.ManifestPath] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetName < out[j].TargetName })
	return out
}
