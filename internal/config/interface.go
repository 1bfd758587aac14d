package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the build configuration from a project path (a config file
	// or a directory containing one) and translates it into the
	// format-agnostic Options model.
	Load(ctx context.Context, path string) (*Options, error)
}
