// Package domain contains the pure core model of elfgen: discovery
// configuration, program identity, filter policies, and build reporting.
package domain

// Mode identifies one of the three discovery modes.
type Mode string

const (
	// ModeMagic discovers everything in the single workspace rooted at the invoking project.
	ModeMagic Mode = "magic"
	// ModePermissive discovers across explicit workspaces, excluding programs matched by deny patterns.
	ModePermissive Mode = "permissive"
	// ModeExclusive discovers across explicit workspaces, including only programs matched by only patterns.
	ModeExclusive Mode = "laser-eyes"
)

// Config is the discovery configuration, a closed sum over the three modes.
// Exactly one concrete type implements each mode.
type Config interface {
	Mode() Mode
	// Overrides returns the constant/target name overrides carried by the config.
	Overrides() Overrides

	sealed()
}

// MagicConfig is the implicit single-workspace configuration. It has no fields:
// the workspace is the invoking project and nothing is filtered.
type MagicConfig struct{}

// PermissiveConfig lists explicit workspaces with deny patterns. A program is
// included unless a global or workspace-local deny pattern matches it.
type PermissiveConfig struct {
	Workspaces []PermissiveWorkspace
	GlobalDeny []string
	Names      Overrides
}

// ExclusiveConfig lists explicit workspaces with mandatory only patterns. A
// program is included only if at least one pattern matches it.
type ExclusiveConfig struct {
	Workspaces []ExclusiveWorkspace
	Names      Overrides
}

// PermissiveWorkspace is one workspace rule under permissive mode.
type PermissiveWorkspace struct {
	ManifestPath string
	Deny         []string
}

// ExclusiveWorkspace is one workspace rule under laser-eyes mode.
type ExclusiveWorkspace struct {
	ManifestPath string
	Only         []string
}

// Overrides maps a program directory (absolute, cleaned) to an explicit
// constant name or artifact stem, replacing the derived one.
type Overrides struct {
	Constants map[string]string
	Targets   map[string]string
}

// Mode returns ModeMagic.
func (MagicConfig) Mode() Mode { return ModeMagic }

// Mode returns ModePermissive.
func (PermissiveConfig) Mode() Mode { return ModePermissive }

// Mode returns ModeExclusive.
func (ExclusiveConfig) Mode() Mode { return ModeExclusive }

// Overrides returns empty overrides; magic mode carries none.
func (MagicConfig) Overrides() Overrides { return Overrides{} }

// Overrides returns the configured name overrides.
func (c PermissiveConfig) Overrides() Overrides { return c.Names }

// Overrides returns the configured name overrides.
func (c ExclusiveConfig) Overrides() Overrides { return c.Names }

func (MagicConfig) sealed()      {}
func (PermissiveConfig) sealed() {}
func (ExclusiveConfig) sealed()  {}
