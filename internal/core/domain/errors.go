package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestUnreadable is returned when the invoking project's manifest cannot be read.
	ErrManifestUnreadable = zerr.New("failed to read manifest")

	// ErrManifestSyntax is returned when the manifest is not valid TOML.
	ErrManifestSyntax = zerr.New("invalid manifest syntax")

	// ErrUnknownMode is returned when the metadata section names a mode that does not exist.
	ErrUnknownMode = zerr.New("unknown discovery mode")

	// ErrMissingModeField is returned when a selected mode is missing one of its required fields.
	ErrMissingModeField = zerr.New("missing required field for selected mode")

	// ErrWorkspaceMetadata is returned when the metadata collaborator fails or produces unparsable output.
	ErrWorkspaceMetadata = zerr.New("failed to load workspace metadata")

	// ErrConstantCollision is returned when two distinct targets normalize to the same constant name.
	ErrConstantCollision = zerr.New("constant name collision")

	// ErrBuildFailed is returned by the generate command when at least one program failed to build.
	ErrBuildFailed = zerr.New("one or more programs failed to build")

	// ErrGeneratedWrite is returned when the generated source cannot be placed on disk.
	// The previously generated file, if any, is left untouched.
	ErrGeneratedWrite = zerr.New("failed to write generated source")
)
