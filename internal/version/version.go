// Package version exposes the webforge release version. Module compatibility
// constraints are checked against this value.
package version

// Version is the current webforge release.
const Version = "0.4.0"
