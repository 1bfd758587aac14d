// Package resolver provides the central registry mapping module specifier
// strings to their compiled-in handlers.
//
// The Registry is responsible for storing mappings between the string
// identifiers used in build configurations (e.g., "sitemap") and the actual
// compiled Go handlers that implement the module's logic. During application
// startup the registry is populated from the compiled-in module list; the
// container then resolves declared specifiers against it.
package resolver
