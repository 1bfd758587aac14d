// Package container implements the module container: the registration surface
// that build-time modules use to add templates, plugins, layouts, server
// middleware, and extension hooks to the shared build configuration.
//
// A module arrives as a specifier in one of four shapes (path string, handler,
// path+options pair, or explicit descriptor). The container normalizes every
// shape to a single (key, src, options, handler) record, deduplicates by key
// when asked to, and invokes the handler against itself. Handlers may call
// back into the container while they run, so registry bookkeeping happens
// before the handler body executes.
package container
