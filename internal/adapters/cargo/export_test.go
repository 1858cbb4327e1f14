// export_test.go exports private hooks for white-box testing.
package cargo

import "go.trai.ch/elfgen/internal/core/ports"

var ParseCatalog = parseCatalog

// NewReaderWithCommand creates a Reader invoking command instead of cargo.
func NewReaderWithCommand(log ports.Logger, command string) *Reader {
	return &Reader{log: log, cargo: command}
}

// NewBuilderWithCommand creates a Builder invoking command instead of cargo.
func NewBuilderWithCommand(log ports.Logger, command string) *Builder {
	return &Builder{log: log, cargo: command}
}

// NewFormatterWithCommand creates a Formatter invoking command instead of cargo.
func NewFormatterWithCommand(log ports.Logger, command string) *Formatter {
	return &Formatter{log: log, cargo: command}
}
