package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/elfgen/internal/core/domain"
)

func sampleProgram(target, pkg string) domain.Program {
	return domain.Program{
		PackageName:  pkg,
		TargetName:   target,
		ManifestPath: "/workspace/Cargo.toml",
	}
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern string
		ns      string
		glob    string
		ok      bool
	}{
		{"target:test*", domain.PatternTarget, "test*", true},
		{"package:apl-*", domain.PatternPackage, "apl-*", true},
		{"path:*/examples/*", domain.PatternPath, "*/examples/*", true},
		{"test*", "", "", false},
		{"invalid:test*", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		ns, glob, ok := domain.SplitPattern(tt.pattern)
		assert.Equal(t, tt.ok, ok, "pattern %q", tt.pattern)
		assert.Equal(t, tt.ns, ns, "pattern %q", tt.pattern)
		assert.Equal(t, tt.glob, glob, "pattern %q", tt.pattern)
	}
}

func TestProgram_MatchesPattern_Target(t *testing.T) {
	p := sampleProgram("test_program", "my_package")

	assert.True(t, p.MatchesPattern("target:test*"))
	assert.True(t, p.MatchesPattern("target:test_program"))
	assert.False(t, p.MatchesPattern("target:main*"))
}

func TestProgram_MatchesPattern_Package(t *testing.T) {
	p := sampleProgram("my_target", "dev_package")

	assert.True(t, p.MatchesPattern("package:dev*"))
	assert.True(t, p.MatchesPattern("package:dev_package"))
	assert.False(t, p.MatchesPattern("package:main*"))
}

func TestProgram_MatchesPattern_Path(t *testing.T) {
	p := domain.Program{
		PackageName:  "my_package",
		TargetName:   "my_target",
		ManifestPath: "/workspace/examples/basic/Cargo.toml",
	}

	assert.True(t, p.MatchesPattern("path:*/examples/*"))
	assert.True(t, p.MatchesPattern("path:*/basic/*"))
	assert.False(t, p.MatchesPattern("path:*/src/*"))
}

// Patterns without a recognized namespace prefix never match any program.
func TestProgram_MatchesPattern_UnrecognizedPrefix(t *testing.T) {
	p := sampleProgram("test_program", "my_package")

	assert.False(t, p.MatchesPattern("invalid:test*"))
	assert.False(t, p.MatchesPattern("test*"))
	assert.False(t, p.MatchesPattern("random_pattern"))
}

func TestProgram_MatchesPattern_MalformedGlob(t *testing.T) {
	p := sampleProgram("test", "pkg")

	// Unbalanced character class degrades to non-matching, never panics.
	assert.False(t, p.MatchesPattern("target:[invalid"))
}

func TestProgram_MatchesPattern_QuestionMark(t *testing.T) {
	p := sampleProgram("test", "pkg")

	assert.True(t, p.MatchesPattern("target:tes?"))
	assert.True(t, p.MatchesPattern("target:t?st"))
	assert.False(t, p.MatchesPattern("target:tes??"))
}

func TestProgram_MatchesAny(t *testing.T) {
	p := sampleProgram("token_manager", "my_package")

	assert.True(t, p.MatchesAny([]string{"target:other", "target:token*"}))
	assert.False(t, p.MatchesAny([]string{"target:other", "package:nope*"}))
	assert.False(t, p.MatchesAny(nil))
}
