package cargo

// metadataOutput models the slice of `cargo metadata --format-version 1`
// output we consume.
type metadataOutput struct {
	Packages      []packageDTO `json:"packages"`
	WorkspaceRoot string       `json:"workspace_root"`
}

type packageDTO struct {
	Name         string      `json:"name"`
	ManifestPath string      `json:"manifest_path"`
	Targets      []targetDTO `json:"targets"`
}

type targetDTO struct {
	Name       string   `json:"name"`
	Kind       []string `json:"kind"`
	CrateTypes []string `json:"crate_types"`
}
