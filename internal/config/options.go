package config

import (
	"errors"
	"path/filepath"
)

// DefaultBuildDirName is the build directory created under the project root
// when the configuration does not name one.
const DefaultBuildDirName = ".webforge"

// NewOptions validates and normalizes a raw Options value. RootDir is
// required; BuildDir is defaulted and made absolute relative to RootDir; nil
// collections are initialized so the container can mutate them freely.
func NewOptions(opts Options) (*Options, error) {
	if opts.RootDir == "" {
		return nil, errors.New("RootDir is a required configuration field and cannot be empty")
	}

	if opts.BuildDir == "" {
		opts.BuildDir = DefaultBuildDirName
	}
	if !filepath.IsAbs(opts.BuildDir) {
		opts.BuildDir = filepath.Join(opts.RootDir, opts.BuildDir)
	}

	if opts.Layouts == nil {
		opts.Layouts = make(map[string]string)
	}

	return &opts, nil
}
