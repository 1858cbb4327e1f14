package config

// manifestFile models the slice of Cargo.toml we care about: the
// tool metadata subsection under [package.metadata.elfgen].
type manifestFile struct {
	Package struct {
		Metadata struct {
			Elfgen *settingsDTO `toml:"elfgen"`
		} `toml:"metadata"`
	} `toml:"package"`
}

// settingsDTO is the raw settings shape shared by the manifest section and
// the standalone override file, before mode validation.
type settingsDTO struct {
	Mode       *string           `toml:"mode" yaml:"mode"`
	Workspaces []workspaceDTO    `toml:"workspaces" yaml:"workspaces"`
	GlobalDeny []string          `toml:"global_deny" yaml:"global_deny"`
	Constants  map[string]string `toml:"constants" yaml:"constants"`
	Targets    map[string]string `toml:"targets" yaml:"targets"`
}

type workspaceDTO struct {
	ManifestPath *string  `toml:"manifest_path" yaml:"manifest_path"`
	Deny         []string `toml:"deny" yaml:"deny"`
	// Exclude is the historical spelling of Deny. Both populate the same
	// field; Deny wins when both are present.
	Exclude []string  `toml:"exclude" yaml:"exclude"`
	Only    *[]string `toml:"only" yaml:"only"`
}

func (w workspaceDTO) denyPatterns() []string {
	if len(w.Deny) > 0 {
		return w.Deny
	}
	return w.Exclude
}
