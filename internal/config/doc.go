// Package config defines the format-agnostic build configuration model for
// the application, along with the Loader interface for reading it from a
// project directory.
//
// The `config.Options` value is the single mutable build configuration shared
// by the module container and every registered module. Concrete loaders, such
// as the HCL one, live in separate packages.
package config
