// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the `config` package. It parses webforge.hcl
// files and translates them, including declared module blocks, into the
// format-agnostic Options model.
package hcl
