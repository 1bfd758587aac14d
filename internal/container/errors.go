package container

import "fmt"

// InvalidModuleError reports a module specifier that did not resolve to a
// callable handler.
type InvalidModuleError struct {
	Spec any
}

// Error implements the error interface.
func (e *InvalidModuleError) Error() string {
	return fmt.Sprintf("invalid module specifier %+v: no callable handler", e.Spec)
}

// IncompatibleModuleError reports a module whose declared host version
// constraint does not match the running version.
type IncompatibleModuleError struct {
	Name     string
	Requires string
	Version  string
	Err      error
}

// Error implements the error interface.
func (e *IncompatibleModuleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("module %q compatibility check failed (requires %q, host %s): %v", e.Name, e.Requires, e.Version, e.Err)
	}
	return fmt.Sprintf("module %q requires webforge %q but host is %s", e.Name, e.Requires, e.Version)
}

// Unwrap exposes an underlying constraint parse error, when any.
func (e *IncompatibleModuleError) Unwrap() error { return e.Err }

// InvalidOptionsError reports module options rejected by the module's
// declared options schema.
type InvalidOptionsError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid options for module %q: %v", e.Name, e.Err)
}

// Unwrap exposes the schema validation error.
func (e *InvalidOptionsError) Unwrap() error { return e.Err }

// InvalidTemplateError reports template input with no usable source.
type InvalidTemplateError struct {
	Input any
}

// Error implements the error interface.
func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid template input %+v: no src", e.Input)
}

// TemplateNotFoundError reports a template source path that failed the
// existence check.
type TemplateNotFoundError struct {
	Src string
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template src not found: %s", e.Src)
}
