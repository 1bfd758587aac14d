// Package chainfn composes configuration callbacks into ordered chains.
// Configuration slots such as build.extend hold a single function; every new
// registration wraps the previous value so that callbacks run oldest first.
package chainfn

import "context"

// Chain returns a function that invokes prev (when non-nil) and then next on
// the same arguments. The first error aborts the chain. The result is always
// a new composed function, even when prev is nil.
func Chain[T any](prev, next func(ctx context.Context, v T) error) func(ctx context.Context, v T) error {
	return func(ctx context.Context, v T) error {
		if prev != nil {
			if err := prev(ctx, v); err != nil {
				return err
			}
		}
		if next == nil {
			return nil
		}
		return next(ctx, v)
	}
}
