// Package codegen renders the generated bindings source from build outcomes.
package codegen

import (
	"fmt"
	"strings"

	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const header = "// @generated by elfgen - do not edit"

// Render produces the bindings source embedding every successful build, in
// the order given: one constant per artifact plus an accessor listing them
// all. Rendering is deterministic; identical inputs produce identical bytes.
func Render(successes []domain.BuildSuccess, overrides domain.Overrides) ([]byte, error) {
	names := make([]string, 0, len(successes))
	seen := make(map[string]domain.Program, len(successes))

	var b strings.Builder
	b.WriteString(header + "\n\n")

	for _, s := range successes {
		name := constantName(s.Program, overrides)
		if prev, ok := seen[name]; ok {
			return nil, zerr.With(zerr.With(zerr.With(
				domain.ErrConstantCollision,
				"constant", name),
				"first", prev.String()),
				"second", s.Program.String())
		}
		seen[name] = s.Program
		names = append(names, name)
		fmt.Fprintf(&b, "pub const %s: &[u8] = include_bytes!(%q);\n", name, s.ArtifactPath)
	}

	if len(successes) == 0 {
		b.WriteString("pub fn elves() -> Vec<(&'static str, &'static [u8])> {\n    vec![]\n}\n")
		return []byte(b.String()), nil
	}

	b.WriteString("\npub fn elves() -> Vec<(&'static str, &'static [u8])> {\n    vec![\n")
	for i, s := range successes {
		fmt.Fprintf(&b, "        (%q, %s),\n", s.Program.TargetName, names[i])
	}
	b.WriteString("    ]\n}\n")

	return []byte(b.String()), nil
}

// constantName resolves the constant for a program, honoring a
// per-program-directory override.
func constantName(p domain.Program, overrides domain.Overrides) string {
	if name, ok := overrides.Constants[p.Dir()]; ok {
		return name
	}
	return p.ConstantName()
}
